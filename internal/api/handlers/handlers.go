package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/ledger"
	"github.com/talx-hub/gopher-coins/internal/model/order"
	rdm "github.com/talx-hub/gopher-coins/internal/model/redemption"
	"github.com/talx-hub/gopher-coins/internal/model/user"
	"github.com/talx-hub/gopher-coins/internal/model/wallet"
	"github.com/talx-hub/gopher-coins/internal/service/events"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Exists(ctx context.Context, loginHash string) bool
	FindByLogin(ctx context.Context, loginHash string) (user.User, error)
	SetCollectionPoint(ctx context.Context, userID string, point string) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, o *order.Order) error
	FindUserIDByOrderID(ctx context.Context, orderID string) (string, error)
}

type EventEngine interface {
	OnRegister(ctx context.Context, userID string) (coin.Event, bool, error)
	OnLogin(ctx context.Context, u user.User) ([]coin.Event, error)
	OnCollectionPointSelected(ctx context.Context, userID string) (coin.Event, bool, error)
	OnPurchase(ctx context.Context, userID string, orderID string) (coin.Event, bool, error)
	Trigger(ctx context.Context, userID string, kind coin.EventKind) (coin.Event, bool, error)
	Checkin(ctx context.Context, userID string, day int, reward int64) (coin.Event, error)
	CheckinStatus(ctx context.Context, userID string) (events.CheckinSchedule, error)
	Missions(ctx context.Context, userID string) ([]events.MissionStatus, error)
}

type RedemptionEngine interface {
	Stage(ctx context.Context, sess rdm.Session, userID string, requested int64) (rdm.Pending, error)
	Revert(ctx context.Context, sess rdm.Session, userID string) error
	ComputeCartDiscount(ctx context.Context, sess rdm.Session, userID string) (model.Amount, error)
	OnCartMutated(ctx context.Context, sess rdm.Session, userID string) error
	Apply(ctx context.Context, sess rdm.Session, orderID string) (int64, error)
	MaxRedeemable(ctx context.Context, userID string, subtotal model.Amount) (int64, error)
	SpendOnGame(ctx context.Context, userID string, markType string, value int64) ([]coin.Drain, error)
	ExpireDue(ctx context.Context, userID string) (int64, error)
}

type WalletReader interface {
	GetWallet(ctx context.Context, userID string) (wallet.Wallet, error)
}

type HistoryProjector interface {
	History(ctx context.Context, userID string) ([]ledger.Entry, error)
}

type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

var errNoUserInContext = errors.New("user ID is not found in request context")

func userIDFromRequest(r *http.Request) (string, error) {
	userID, ok := r.Context().Value(model.KeyContextUserID).(string)
	if !ok || userID == "" {
		return "", errNoUserInContext
	}
	return userID, nil
}

func sessionFromRequest(r *http.Request) rdm.Session {
	id, _ := r.Context().Value(model.KeyContextSession).(string)
	return rdm.Session{ID: id}
}

// statusFromError maps service errors onto HTTP codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, serviceerrs.ErrInvalidCheckin),
		errors.Is(err, serviceerrs.ErrUnknownEventKind),
		errors.Is(err, serviceerrs.ErrNoSession):
		return http.StatusBadRequest
	case errors.Is(err, serviceerrs.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, serviceerrs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serviceerrs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func handleError(w http.ResponseWriter, r *http.Request,
	log *slog.Logger, msg string, err error,
) {
	code := statusFromError(err)
	level := slog.LevelWarn
	if code == http.StatusInternalServerError {
		level = slog.LevelError
	}
	log.LogAttrs(r.Context(), level, msg,
		slog.Any(model.KeyLoggerError, err),
	)
	http.Error(w, msg, code)
}

func writeJSON(w http.ResponseWriter, r *http.Request,
	log *slog.Logger, code int, v any,
) {
	w.Header().Set(model.HeaderContentType, "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.LogAttrs(r.Context(), slog.LevelError,
			"failed to encode response",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}
