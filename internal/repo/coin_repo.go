package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/wallet"
	"github.com/talx-hub/gopher-coins/internal/repo/internal/db"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
)

// CoinRepository stores coin events and the wallet aggregate next to them.
// Every write touching both runs in one TX.
type CoinRepository struct {
	DB
}

func NewCoinRepository(pool connectionPool, log *slog.Logger) *CoinRepository {
	return &CoinRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// CreateEarning inserts ev and credits the wallet. With limit > 0 the
// repeat count is re-checked under an advisory lock, so concurrent
// requests cannot push a kind past its limit. created is false when the
// limit was already reached.
func (r *CoinRepository) CreateEarning(ctx context.Context,
	ev *coin.Event, limit int,
) (bool, error) {
	marks, err := marshalMarks(ev.SpecialMarks)
	if err != nil {
		return false, err
	}

	createLogic := func(ctx context.Context, tx connectionPool) (bool, error) {
		queries := db.New(tx)
		if limit > 0 {
			if err := queries.LockUserKind(ctx, ev.UserID+":"+string(ev.Kind)); err != nil {
				return false, fmt.Errorf("failed to lock %s for %s: %w", ev.Kind, ev.UserID, err)
			}
			n, err := queries.CountEvents(ctx, ev.UserID, string(ev.Kind))
			if err != nil {
				return false, fmt.Errorf("failed to count %s events: %w", ev.Kind, err)
			}
			if n >= int64(limit) {
				return false, nil
			}
		}

		id, err := queries.InsertEvent(ctx, db.InsertEventParams{
			CreatedAt:    ev.CreatedAt,
			ExpiresAt:    ev.ExpiresAt,
			IDUser:       ev.UserID,
			EventKind:    string(ev.Kind),
			Status:       string(ev.Status),
			SpecialMarks: marks,
			Value:        ev.Value,
		})
		if err != nil {
			return false, fmt.Errorf("failed to insert coin event: %w", err)
		}
		if err = addToWallet(ctx, queries, ev.UserID, wallet.Earn(ev.Value)); err != nil {
			return false, err
		}

		ev.ID = id
		return true, nil
	}

	createWithTX := func() (bool, error) {
		return WithTX[bool](ctx, r.pool, r.log, createLogic)
	}
	return WithRetry[bool](ctx, createWithTX) //nolint: wrapcheck // error from wrapped function
}

func (r *CoinRepository) CountEvents(ctx context.Context,
	userID string, kind coin.EventKind,
) (int, error) {
	countLogic := func() (int, error) {
		n, err := db.New(r.pool).CountEvents(ctx, userID, string(kind))
		if err != nil {
			return 0, fmt.Errorf("failed to count %s events of %s: %w", kind, userID, err)
		}
		return int(n), nil
	}
	return WithRetry[int](ctx, countLogic) //nolint: wrapcheck // error from wrapped function
}

func (r *CoinRepository) CountEventsByKind(ctx context.Context, userID string,
) (map[coin.EventKind]int, error) {
	countLogic := func() (map[coin.EventKind]int, error) {
		raw, err := db.New(r.pool).CountEventsByKind(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to count events of %s: %w", userID, err)
		}
		counts := make(map[coin.EventKind]int, len(raw))
		for k, n := range raw {
			counts[coin.EventKind(k)] = int(n)
		}
		return counts, nil
	}
	return WithRetry[map[coin.EventKind]int](ctx, countLogic) //nolint: wrapcheck // error from wrapped function
}

// ListEvents returns every event of the user, oldest first.
func (r *CoinRepository) ListEvents(ctx context.Context, userID string,
) ([]coin.Event, error) {
	listLogic := func() ([]coin.Event, error) {
		raw, err := db.New(r.pool).ListEvents(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list events of %s: %w", userID, err)
		}
		return toEvents(raw)
	}
	return WithRetry[[]coin.Event](ctx, listLogic) //nolint: wrapcheck // error from wrapped function
}

// ListActiveEvents returns active events with a non-zero balance, oldest
// first. Some of them may already be past their expiry date.
func (r *CoinRepository) ListActiveEvents(ctx context.Context, userID string,
) ([]coin.Event, error) {
	listLogic := func() ([]coin.Event, error) {
		raw, err := db.New(r.pool).ListActiveEvents(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list active events of %s: %w", userID, err)
		}
		return toEvents(raw)
	}
	return WithRetry[[]coin.Event](ctx, listLogic) //nolint: wrapcheck // error from wrapped function
}

// Spend applies every drain and debits the wallet atomically. A drain that
// no longer fits its event fails the whole spending with ErrConflict.
func (r *CoinRepository) Spend(ctx context.Context, s *coin.Spending) error {
	if s.Debit() == 0 {
		return nil
	}

	spendLogic := func(ctx context.Context, tx connectionPool) (struct{}, error) {
		queries := db.New(tx)
		for _, d := range s.Drains {
			var marks []coin.SpecialMark
			if m, ok := s.Mark(d); ok {
				marks = append(marks, m)
			}
			rawMarks, err := marshalMarks(marks)
			if err != nil {
				return struct{}{}, err
			}

			n, err := queries.DrainEvent(ctx, db.DrainEventParams{
				SpendDate:    s.At,
				IDUser:       s.UserID,
				SpecialMarks: rawMarks,
				IDCoin:       d.EventID,
				Points:       d.Points,
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("failed to drain event %d: %w", d.EventID, err)
			}
			if n != 1 {
				return struct{}{}, fmt.Errorf("event %d cannot cover %d points: %w",
					d.EventID, d.Points, serviceerrs.ErrConflict)
			}
		}
		if err := addToWallet(ctx, queries, s.UserID, wallet.Spend(s.Debit())); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	}

	spendWithTX := func() (struct{}, error) {
		return WithTX[struct{}](ctx, r.pool, r.log, spendLogic)
	}
	_, err := WithRetry[struct{}](ctx, spendWithTX)
	return err //nolint: wrapcheck // error from wrapped function
}

// ExpireEvents marks the given events expired and moves their remaining
// balance to the wallet's expired counter. Events expired earlier are
// skipped, so a repeated sweep is a no-op.
func (r *CoinRepository) ExpireEvents(ctx context.Context,
	userID string, ids []int64,
) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	expireLogic := func(ctx context.Context, tx connectionPool) (int64, error) {
		queries := db.New(tx)
		var total int64
		for _, id := range ids {
			expired, err := queries.ExpireEvent(ctx, id, userID)
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			if err != nil {
				return int64(0), fmt.Errorf("failed to expire event %d: %w", id, err)
			}
			total += expired
		}
		if total == 0 {
			return int64(0), nil
		}
		if err := addToWallet(ctx, queries, userID, wallet.Expire(total)); err != nil {
			return int64(0), err
		}
		return total, nil
	}

	expireWithTX := func() (int64, error) {
		return WithTX[int64](ctx, r.pool, r.log, expireLogic)
	}
	return WithRetry[int64](ctx, expireWithTX) //nolint: wrapcheck // error from wrapped function
}

// GetWallet returns a zero wallet for users that never earned.
func (r *CoinRepository) GetWallet(ctx context.Context, userID string,
) (wallet.Wallet, error) {
	getLogic := func() (wallet.Wallet, error) {
		w, err := db.New(r.pool).GetWallet(ctx, userID)
		if errors.Is(err, pgx.ErrNoRows) {
			return wallet.Wallet{UserID: userID}, nil
		}
		if err != nil {
			return wallet.Wallet{}, fmt.Errorf("failed to get wallet of %s: %w", userID, err)
		}
		return wallet.Wallet{
			UserID:  w.IDUser,
			Balance: w.Balance,
			Earned:  w.Earned,
			Spent:   w.Spent,
			Expired: w.Expired,
		}, nil
	}
	return WithRetry[wallet.Wallet](ctx, getLogic) //nolint: wrapcheck // error from wrapped function
}

func (r *CoinRepository) ListWalletUsers(ctx context.Context) ([]string, error) {
	listLogic := func() ([]string, error) {
		users, err := db.New(r.pool).ListWalletUsers(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list wallets: %w", err)
		}
		return users, nil
	}
	return WithRetry[[]string](ctx, listLogic) //nolint: wrapcheck // error from wrapped function
}

func addToWallet(ctx context.Context, queries *db.Queries, userID string, d wallet.Delta) error {
	err := queries.AddToWallet(ctx, db.Wallet{
		IDUser:  userID,
		Balance: d.Balance,
		Earned:  d.Earned,
		Spent:   d.Spent,
		Expired: d.Expired,
	})
	if err != nil {
		return fmt.Errorf("failed to update wallet of %s: %w", userID, err)
	}
	return nil
}

func marshalMarks(marks []coin.SpecialMark) (string, error) {
	if len(marks) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(marks)
	if err != nil {
		return "", fmt.Errorf("failed to marshal special marks: %w", err)
	}
	return string(raw), nil
}

func toEvents(raw []db.CoinEvent) ([]coin.Event, error) {
	events := make([]coin.Event, 0, len(raw))
	for _, e := range raw {
		ev := coin.Event{
			CreatedAt: e.CreatedAt.UTC(),
			ExpiresAt: e.ExpiresAt.UTC(),
			SpendAt:   timestamptzPtr(e.SpendDate),
			UserID:    e.IDUser,
			Kind:      coin.EventKind(e.EventKind),
			Status:    coin.Status(e.Status),
			ID:        e.IDCoin,
			Value:     e.Value,
			Balance:   e.Balance,
			Spend:     e.Spend,
			Expired:   e.Expired,
		}
		if len(e.SpecialMarks) > 0 {
			if err := json.Unmarshal(e.SpecialMarks, &ev.SpecialMarks); err != nil {
				return nil, fmt.Errorf("failed to unmarshal special marks of %d: %w", e.IDCoin, err)
			}
			if len(ev.SpecialMarks) == 0 {
				ev.SpecialMarks = nil
			}
		}
		events = append(events, ev)
	}
	return events, nil
}

func timestamptzPtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time.UTC()
	return &t
}
