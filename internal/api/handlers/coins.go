package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/talx-hub/gopher-coins/internal/api/dto"
	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/ledger"
)

type CoinsHandler struct {
	logger     *slog.Logger
	users      UserRepository
	events     EventEngine
	redemption RedemptionEngine
	wallets    WalletReader
	history    HistoryProjector
}

func NewCoinsHandler(
	users UserRepository,
	events EventEngine,
	redemption RedemptionEngine,
	wallets WalletReader,
	history HistoryProjector,
	log *slog.Logger,
) *CoinsHandler {
	return &CoinsHandler{
		logger:     log,
		users:      users,
		events:     events,
		redemption: redemption,
		wallets:    wallets,
		history:    history,
	}
}

func (h *CoinsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to get balance", err)
		return
	}

	ctx := r.Context()
	if _, err = h.redemption.ExpireDue(ctx, userID); err != nil {
		handleError(w, r, h.logger, "failed to expire coins", err)
		return
	}
	wl, err := h.wallets.GetWallet(ctx, userID)
	if err != nil {
		handleError(w, r, h.logger, "failed to get balance", err)
		return
	}

	writeJSON(w, r, h.logger, http.StatusOK, dto.BalanceResponse{
		Balance: wl.Balance,
		Earned:  wl.Earned,
		Spent:   wl.Spent,
		Expired: wl.Expired,
	})
}

func (h *CoinsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to get history", err)
		return
	}

	entries, err := h.history.History(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, "failed to get history", err)
		return
	}
	if len(entries) == 0 {
		entries = []ledger.Entry{}
	}
	writeJSON(w, r, h.logger, http.StatusOK, entries)
}

func (h *CoinsHandler) GetMissions(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to get missions", err)
		return
	}

	missions, err := h.events.Missions(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, "failed to get missions", err)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, missions)
}

func (h *CoinsHandler) GetCheckin(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to get check-in status", err)
		return
	}

	status, err := h.events.CheckinStatus(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, "failed to get check-in status", err)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, status)
}

func (h *CoinsHandler) PostCheckin(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to check in", err)
		return
	}

	var req dto.CheckinRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "failed to decode request", http.StatusBadRequest)
		return
	}

	ev, err := h.events.Checkin(r.Context(), userID, req.Day, req.Reward)
	if err != nil {
		handleError(w, r, h.logger, "failed to check in", err)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, dto.EarningResponse{Event: &ev, Granted: true})
}

// TriggerEvent reports a user action that may earn coins.
func (h *CoinsHandler) TriggerEvent(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to record event", err)
		return
	}

	kind, err := coin.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ev, granted, err := h.events.Trigger(r.Context(), userID, kind)
	if err != nil {
		handleError(w, r, h.logger, "failed to record event", err)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, earning(ev, granted))
}

func (h *CoinsHandler) SelectCollectionPoint(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to select collection point", err)
		return
	}

	var req dto.CollectionPointRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		http.Error(w, "collection point id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err = h.users.SetCollectionPoint(ctx, userID, req.ID); err != nil {
		handleError(w, r, h.logger, "failed to select collection point", err)
		return
	}
	ev, granted, err := h.events.OnCollectionPointSelected(ctx, userID)
	if err != nil {
		h.logger.LogAttrs(ctx, slog.LevelError,
			"failed to grant collection point coins",
			slog.String("user_id", userID),
			slog.Any(model.KeyLoggerError, err),
		)
	}
	writeJSON(w, r, h.logger, http.StatusOK, earning(ev, granted))
}

func earning(ev coin.Event, granted bool) dto.EarningResponse {
	if !granted {
		return dto.EarningResponse{}
	}
	return dto.EarningResponse{Event: &ev, Granted: true}
}
