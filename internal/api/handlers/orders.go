package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"

	"github.com/talx-hub/gopher-coins/internal/api/dto"
	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/order"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
)

type OrderHandler struct {
	logger     *slog.Logger
	orderRepo  OrderRepository
	redemption RedemptionEngine
	events     EventEngine
	now        func() time.Time
}

func NewOrderHandler(orderRepo OrderRepository,
	redemption RedemptionEngine,
	events EventEngine,
	log *slog.Logger,
) *OrderHandler {
	return &OrderHandler{
		logger:     log,
		orderRepo:  orderRepo,
		redemption: redemption,
		events:     events,
		now:        time.Now,
	}
}

// PostOrder checks out the cart: the order is recorded with the staged
// discount as a fee line, the redemption is charged and the purchase
// reward granted.
func (h *OrderHandler) PostOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		handleError(w, r, h.logger, "failed to place order", err)
		return
	}

	var req dto.CheckoutRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "failed to decode request", http.StatusBadRequest)
		return
	}
	if err = goluhn.Validate(req.OrderID); err != nil {
		http.Error(w, "invalid order number", http.StatusUnprocessableEntity)
		return
	}

	ctx := r.Context()
	log := h.logger.With(
		slog.String("user_id", userID),
		slog.String("order_no", req.OrderID),
	)

	owner, err := h.orderRepo.FindUserIDByOrderID(ctx, req.OrderID)
	switch {
	case err == nil && owner == userID:
		writeJSON(w, r, log, http.StatusOK, dto.CheckoutResponse{OrderID: req.OrderID})
		return
	case err == nil:
		http.Error(w, "order belongs to another user", http.StatusConflict)
		return
	case !errors.Is(err, serviceerrs.ErrNotFound):
		handleError(w, r, log, "failed to place order", err)
		return
	}

	sess := sessionFromRequest(r)
	discount, err := h.redemption.ComputeCartDiscount(ctx, sess, userID)
	if err != nil {
		handleError(w, r, log, "failed to compute discount", err)
		return
	}

	o := order.Order{
		PlacedAt: h.now().UTC(),
		ID:       req.OrderID,
		UserID:   userID,
		Subtotal: req.Subtotal,
	}
	if !discount.IsZero() {
		o.Fees = []order.Fee{{Name: model.FeeRedeemedTokens, Total: discount}}
	}
	if err = h.orderRepo.CreateOrder(ctx, &o); err != nil {
		handleError(w, r, log, "failed to place order", err)
		return
	}

	redeemed, err := h.redemption.Apply(ctx, sess, o.ID)
	if err != nil {
		handleError(w, r, log, "failed to charge redeemed coins", err)
		return
	}

	resp := dto.CheckoutResponse{
		OrderID:  o.ID,
		Discount: discount,
		Redeemed: redeemed,
	}
	ev, granted, err := h.events.OnPurchase(ctx, userID, o.ID)
	if err != nil {
		log.LogAttrs(ctx, slog.LevelError,
			"failed to grant purchase coins",
			slog.Any(model.KeyLoggerError, err),
		)
	}
	if granted {
		resp.Earned = ev.Value
	}
	writeJSON(w, r, log, http.StatusOK, resp)
}
