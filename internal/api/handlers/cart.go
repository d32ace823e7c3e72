package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-coins/internal/api/dto"
	"github.com/talx-hub/gopher-coins/internal/model"
)

type CartHandler struct {
	logger     *slog.Logger
	redemption RedemptionEngine
}

func NewCartHandler(redemption RedemptionEngine, log *slog.Logger) *CartHandler {
	return &CartHandler{
		logger:     log,
		redemption: redemption,
	}
}

// Redeem stages or reverts a redemption in the caller's session.
func (h *CartHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to redeem coins", err)
		return
	}

	var req dto.RedeemRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "failed to decode request", http.StatusBadRequest)
		return
	}
	if err = req.IsValid(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	sess := sessionFromRequest(r)
	if req.Operation == dto.OperationRevert {
		if err = h.redemption.Revert(ctx, sess, userID); err != nil {
			handleError(w, r, h.logger, "failed to revert redemption", err)
			return
		}
		writeJSON(w, r, h.logger, http.StatusOK, dto.RedemptionResponse{})
		return
	}

	p, err := h.redemption.Stage(ctx, sess, userID, req.Points)
	if err != nil {
		handleError(w, r, h.logger, "failed to redeem coins", err)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, dto.RedemptionResponse{
		Discount: p.Amount.Neg(),
		Points:   p.Points,
	})
}

func (h *CartHandler) GetDiscount(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to compute discount", err)
		return
	}

	discount, err := h.redemption.ComputeCartDiscount(r.Context(), sessionFromRequest(r), userID)
	if err != nil {
		handleError(w, r, h.logger, "failed to compute discount", err)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, dto.RedemptionResponse{
		Discount: discount,
		Points:   discount.Neg().Points(),
	})
}

func (h *CartHandler) GetLimit(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to compute limit", err)
		return
	}

	subtotal, err := decimal.NewFromString(r.URL.Query().Get("subtotal"))
	if err != nil || subtotal.IsNegative() {
		http.Error(w, "subtotal must be a non-negative number", http.StatusBadRequest)
		return
	}

	points, err := h.redemption.MaxRedeemable(r.Context(), userID, model.FromDecimal(subtotal))
	if err != nil {
		handleError(w, r, h.logger, "failed to compute limit", err)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, dto.LimitResponse{Points: points})
}

// CartChanged drops the staged redemption after the cart contents changed.
func (h *CartHandler) CartChanged(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to handle cart change", err)
		return
	}

	if err = h.redemption.OnCartMutated(r.Context(), sessionFromRequest(r), userID); err != nil {
		handleError(w, r, h.logger, "failed to handle cart change", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *CartHandler) SpendOnGame(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to spend coins", err)
		return
	}

	var req dto.GameSpendRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value <= 0 {
		http.Error(w, "value must be a positive number of coins", http.StatusBadRequest)
		return
	}

	drains, err := h.redemption.SpendOnGame(r.Context(), userID, req.Type, req.Value)
	if err != nil {
		handleError(w, r, h.logger, "failed to spend coins", err)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, dto.GameSpendResponse{
		Drains: drains,
		Spent:  req.Value,
	})
}
