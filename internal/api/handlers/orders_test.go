package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/talx-hub/gopher-coins/internal/api/handlers/mocks"
	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/order"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
)

const validOrder = "12345678903"

type orderMocks struct {
	orders     *mocks.MockOrderRepository
	redemption *mocks.MockRedemptionEngine
	events     *mocks.MockEventEngine
}

func newOrderHandler(t *testing.T) (*OrderHandler, orderMocks) {
	t.Helper()
	m := orderMocks{
		orders:     mocks.NewMockOrderRepository(t),
		redemption: mocks.NewMockRedemptionEngine(t),
		events:     mocks.NewMockEventEngine(t),
	}
	h := NewOrderHandler(m.orders, m.redemption, m.events, slog.Default())
	h.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return h, m
}

func checkout(t *testing.T, h *OrderHandler, userID, body string) (int, string) {
	t.Helper()
	return serve(t, h.PostOrder, testRequest{
		method: http.MethodPost, target: "/api/user/orders",
		body: body, userID: userID, session: testSession,
	})
}

func TestOrderHandler_PostOrder_withRedemption(t *testing.T) {
	h, m := newOrderHandler(t)
	m.orders.EXPECT().FindUserIDByOrderID(mock.Anything, validOrder).
		Return("", serviceerrs.ErrNotFound)
	m.redemption.EXPECT().ComputeCartDiscount(mock.Anything, sess, "user-1").
		Return(model.NewAmount(-30, 0), nil)
	m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o *order.Order) error {
			assert.Equal(t, "user-1", o.UserID)
			assert.Equal(t, model.NewAmount(120, 0), o.Subtotal)
			assert.Equal(t, []order.Fee{{Name: "Redeemed tokens", Total: model.NewAmount(-30, 0)}}, o.Fees)
			return nil
		})
	m.redemption.EXPECT().Apply(mock.Anything, sess, validOrder).Return(30, nil)
	m.events.EXPECT().OnPurchase(mock.Anything, "user-1", validOrder).
		Return(coin.Event{Kind: coin.KindPurchase, Value: 10}, true, nil)

	code, body := checkout(t, h, "user-1", `{"order":"`+validOrder+`","subtotal":120}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"order":"12345678903","discount":-30.00,"redeemed":30,"earned":10}`, body)
}

func TestOrderHandler_PostOrder_withoutRedemption(t *testing.T) {
	h, m := newOrderHandler(t)
	m.orders.EXPECT().FindUserIDByOrderID(mock.Anything, validOrder).
		Return("", serviceerrs.ErrNotFound)
	m.redemption.EXPECT().ComputeCartDiscount(mock.Anything, sess, "user-1").
		Return(model.Amount{}, nil)
	m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o *order.Order) error {
			assert.Empty(t, o.Fees)
			return nil
		})
	m.redemption.EXPECT().Apply(mock.Anything, sess, validOrder).Return(0, nil)
	m.events.EXPECT().OnPurchase(mock.Anything, "user-1", validOrder).
		Return(coin.Event{}, false, nil)

	code, body := checkout(t, h, "user-1", `{"order":"`+validOrder+`","subtotal":10}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"order":"12345678903","discount":0.00,"redeemed":0,"earned":0}`, body)
}

func TestOrderHandler_PostOrder_errors(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		body     string
		setup    func(m orderMocks)
		wantCode int
	}{
		{
			name:     "bad json",
			userID:   "user-1",
			body:     `{"order":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad order number",
			userID:   "user-1",
			body:     `{"order":"12345678900","subtotal":1}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "already placed by the user",
			userID: "user-1",
			body:   `{"order":"` + validOrder + `","subtotal":1}`,
			setup: func(m orderMocks) {
				m.orders.EXPECT().FindUserIDByOrderID(mock.Anything, validOrder).Return("user-1", nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "placed by another user",
			userID: "user-1",
			body:   `{"order":"` + validOrder + `","subtotal":1}`,
			setup: func(m orderMocks) {
				m.orders.EXPECT().FindUserIDByOrderID(mock.Anything, validOrder).Return("user-2", nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "order lookup failure",
			userID: "user-1",
			body:   `{"order":"` + validOrder + `","subtotal":1}`,
			setup: func(m orderMocks) {
				m.orders.EXPECT().FindUserIDByOrderID(mock.Anything, validOrder).
					Return("", serviceerrs.ErrUnexpected)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "concurrent duplicate",
			userID: "user-1",
			body:   `{"order":"` + validOrder + `","subtotal":1}`,
			setup: func(m orderMocks) {
				m.orders.EXPECT().FindUserIDByOrderID(mock.Anything, validOrder).
					Return("", serviceerrs.ErrNotFound)
				m.redemption.EXPECT().ComputeCartDiscount(mock.Anything, sess, "user-1").
					Return(model.Amount{}, nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(serviceerrs.ErrConflict)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "charge failure",
			userID: "user-1",
			body:   `{"order":"` + validOrder + `","subtotal":1}`,
			setup: func(m orderMocks) {
				m.orders.EXPECT().FindUserIDByOrderID(mock.Anything, validOrder).
					Return("", serviceerrs.ErrNotFound)
				m.redemption.EXPECT().ComputeCartDiscount(mock.Anything, sess, "user-1").
					Return(model.NewAmount(-1, 0), nil)
				m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				m.redemption.EXPECT().Apply(mock.Anything, sess, validOrder).
					Return(0, serviceerrs.ErrUnexpected)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "middleware failure: no user in ctx",
			userID:   noUser,
			body:     `{"order":"` + validOrder + `","subtotal":1}`,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newOrderHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}
			code, _ := checkout(t, h, tt.userID, tt.body)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
