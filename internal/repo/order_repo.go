package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/order"
	"github.com/talx-hub/gopher-coins/internal/repo/internal/db"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
)

type OrderRepository struct {
	DB
}

func NewOrderRepository(pool connectionPool, log *slog.Logger) *OrderRepository {
	return &OrderRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// CreateOrder stores o with its fee lines. A reused order number yields
// ErrConflict.
func (r *OrderRepository) CreateOrder(ctx context.Context, o *order.Order) error {
	createLogic := func(ctx context.Context, tx connectionPool) (struct{}, error) {
		queries := db.New(tx)
		n, err := queries.InsertOrder(ctx, db.InsertOrderParams{
			PlacedAt:  o.PlacedAt,
			NameOrder: o.ID,
			IDUser:    o.UserID,
			Subtotal:  o.Subtotal.ToPGNumeric(),
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to insert order %s: %w", o.ID, err)
		}
		if n == 0 {
			return struct{}{}, fmt.Errorf("order %s: %w", o.ID, serviceerrs.ErrConflict)
		}

		for _, f := range o.Fees {
			if err = queries.InsertOrderFee(ctx, o.ID, f.Name, f.Total.ToPGNumeric()); err != nil {
				return struct{}{}, fmt.Errorf("failed to insert fee %q of order %s: %w",
					f.Name, o.ID, err)
			}
		}
		return struct{}{}, nil
	}

	createWithTX := func() (struct{}, error) {
		return WithTX[struct{}](ctx, r.pool, r.log, createLogic)
	}
	_, err := WithRetry[struct{}](ctx, createWithTX)
	return err //nolint: wrapcheck // error from wrapped function
}

func (r *OrderRepository) FindUserIDByOrderID(ctx context.Context, orderID string,
) (string, error) {
	findLogic := func() (string, error) {
		userID, err := db.New(r.pool).FindOrderOwner(ctx, orderID)
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("order %s: %w", orderID, serviceerrs.ErrNotFound)
		}
		if err != nil {
			return "", fmt.Errorf("failed to find userID by orderID %s: %w", orderID, err)
		}
		return userID, nil
	}

	return WithRetry[string](ctx, findLogic) //nolint: wrapcheck // error from wrapped function
}

// ListRedeemedOrders returns the user's orders that carry a non-zero
// redeemed tokens fee. Each order holds only that fee line.
func (r *OrderRepository) ListRedeemedOrders(ctx context.Context, userID string,
) ([]order.Order, error) {
	listLogic := func() ([]order.Order, error) {
		raw, err := db.New(r.pool).ListOrderFees(ctx, userID, model.FeeRedeemedTokens)
		if err != nil {
			return nil, fmt.Errorf("failed to list redeemed orders of %s: %w", userID, err)
		}

		orders := make([]order.Order, 0, len(raw))
		for _, f := range raw {
			subtotal, err := model.FromPGNumeric(f.Subtotal)
			if err != nil {
				return nil, fmt.Errorf("failed to convert subtotal of %s: %w", f.NameOrder, err)
			}
			total, err := model.FromPGNumeric(f.Total)
			if err != nil {
				return nil, fmt.Errorf("failed to convert fee of %s: %w", f.NameOrder, err)
			}
			orders = append(orders, order.Order{
				PlacedAt: f.PlacedAt.UTC(),
				ID:       f.NameOrder,
				UserID:   userID,
				Subtotal: subtotal,
				Fees:     []order.Fee{{Name: f.NameFee, Total: total}},
			})
		}
		return orders, nil
	}

	return WithRetry[[]order.Order](ctx, listLogic) //nolint: wrapcheck // error from wrapped function
}
