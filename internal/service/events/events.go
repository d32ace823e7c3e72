// Package events grants coins for qualifying user actions.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/user"
	"github.com/talx-hub/gopher-coins/internal/service/coinsconfig"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
	"github.com/talx-hub/gopher-coins/internal/utils/logger"
)

type coinStore interface {
	CreateEarning(ctx context.Context, ev *coin.Event, limit int) (bool, error)
	CountEvents(ctx context.Context, userID string, kind coin.EventKind) (int, error)
	CountEventsByKind(ctx context.Context, userID string) (map[coin.EventKind]int, error)
	ListEvents(ctx context.Context, userID string) ([]coin.Event, error)
}

type configProvider interface {
	Event(kind coin.EventKind) (coinsconfig.EventConfig, bool)
	Global() coinsconfig.GlobalConfig
}

type userLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type Engine struct {
	store coinStore
	cfg   configProvider
	locks userLocker
	now   func() time.Time
}

func New(store coinStore, cfg configProvider, locks userLocker) *Engine {
	return &Engine{
		store: store,
		cfg:   cfg,
		locks: locks,
		now:   time.Now,
	}
}

// WithClock replaces the wall clock, mostly for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// CanEarn reports whether userID may still earn kind. A kind without
// configuration or with a zero repeat limit is never earnable.
func (e *Engine) CanEarn(ctx context.Context, userID string, kind coin.EventKind) (bool, error) {
	ec, ok := e.cfg.Event(kind)
	if !ok || ec.Repeat <= 0 {
		return false, nil
	}

	n, err := e.store.CountEvents(ctx, userID, kind)
	if err != nil {
		return false, fmt.Errorf("failed to check eligibility for %s: %w", kind, err)
	}
	return n < ec.Repeat, nil
}

// RecordEarning grants the configured reward for kind. The returned flag is
// false when the user is not eligible, which is not an error.
func (e *Engine) RecordEarning(ctx context.Context,
	userID string, kind coin.EventKind,
) (coin.Event, bool, error) {
	log := logger.FromContext(ctx).With(
		slog.String("service", "events"),
		slog.String("user_id", userID),
		slog.String("kind", string(kind)),
	)

	unlock, err := e.locks.Lock(ctx, userID)
	if err != nil {
		return coin.Event{}, false, fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	defer unlock()

	eligible, err := e.CanEarn(ctx, userID, kind)
	if err != nil {
		return coin.Event{}, false, err
	}
	if !eligible {
		log.LogAttrs(ctx, slog.LevelDebug, "not eligible, skipping")
		return coin.Event{}, false, nil
	}

	ec, _ := e.cfg.Event(kind)
	ev := coin.New(userID, kind, ec.Reward, e.now().UTC(), ec.ExpiryDays)
	created, err := e.store.CreateEarning(ctx, &ev, ec.Repeat)
	if err != nil {
		return coin.Event{}, false, fmt.Errorf("failed to record %s earning: %w", kind, err)
	}
	if !created {
		log.LogAttrs(ctx, slog.LevelDebug, "repeat limit reached concurrently")
		return coin.Event{}, false, nil
	}

	log.LogAttrs(ctx, slog.LevelInfo, "coins earned",
		slog.Int64("coin_id", ev.ID),
		slog.Int64("value", ev.Value),
	)
	return ev, true, nil
}

// Checkin grants a daily check-in. Day and reward come from the caller and
// bypass the per-kind configuration.
func (e *Engine) Checkin(ctx context.Context,
	userID string, day int, reward int64,
) (coin.Event, error) {
	if day < 1 || day > coin.CheckinDays || reward <= 0 {
		return coin.Event{}, fmt.Errorf("day %d, reward %d: %w",
			day, reward, serviceerrs.ErrInvalidCheckin)
	}

	unlock, err := e.locks.Lock(ctx, userID)
	if err != nil {
		return coin.Event{}, fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	defer unlock()

	kind := coin.CheckinKind(day)
	ev := coin.New(userID, kind, reward, e.now().UTC(), e.cfg.Global().CheckinExpiryDays)
	if _, err = e.store.CreateEarning(ctx, &ev, 0); err != nil {
		return coin.Event{}, fmt.Errorf("failed to record %s: %w", kind, err)
	}

	logger.FromContext(ctx).LogAttrs(ctx, slog.LevelInfo, "checked in",
		slog.String("user_id", userID),
		slog.Int("day", day),
		slog.Int64("value", reward),
	)
	return ev, nil
}

func (e *Engine) OnRegister(ctx context.Context, userID string) (coin.Event, bool, error) {
	return e.RecordEarning(ctx, userID, coin.KindRegister)
}

// OnLogin grants the registration bonus to accounts that missed it, and the
// collection point bonus to users who already picked one.
func (e *Engine) OnLogin(ctx context.Context, u user.User) ([]coin.Event, error) {
	kinds := []coin.EventKind{coin.KindRegister}
	if u.CollectionPointID != "" {
		kinds = append(kinds, coin.KindSelectCollectionPoint)
	}

	var granted []coin.Event
	for _, kind := range kinds {
		ev, ok, err := e.RecordEarning(ctx, u.ID, kind)
		if err != nil {
			return granted, err
		}
		if ok {
			granted = append(granted, ev)
		}
	}
	return granted, nil
}

func (e *Engine) OnCollectionPointSelected(ctx context.Context, userID string,
) (coin.Event, bool, error) {
	return e.RecordEarning(ctx, userID, coin.KindSelectCollectionPoint)
}

func (e *Engine) OnReviewApproved(ctx context.Context, userID string) (coin.Event, bool, error) {
	return e.RecordEarning(ctx, userID, coin.KindReview)
}

func (e *Engine) OnChat(ctx context.Context, userID string) (coin.Event, bool, error) {
	return e.RecordEarning(ctx, userID, coin.KindChat)
}

// OnNotificationToggle grants coins only for switching notifications on.
func (e *Engine) OnNotificationToggle(ctx context.Context,
	userID string, enabled bool,
) (coin.Event, bool, error) {
	if !enabled {
		return coin.Event{}, false, nil
	}
	return e.RecordEarning(ctx, userID, coin.KindNotify)
}

// OnPurchase grants the purchase reward once for a finalized order,
// whatever the number of items in it.
func (e *Engine) OnPurchase(ctx context.Context,
	userID, orderID string,
) (coin.Event, bool, error) {
	ctx = logger.With(ctx, slog.String("order_no", orderID))
	return e.RecordEarning(ctx, userID, coin.KindPurchase)
}

// Trigger dispatches a user-initiated action to its adapter.
func (e *Engine) Trigger(ctx context.Context,
	userID string, kind coin.EventKind,
) (coin.Event, bool, error) {
	switch kind {
	case coin.KindSelectCollectionPoint:
		return e.OnCollectionPointSelected(ctx, userID)
	case coin.KindChat:
		return e.OnChat(ctx, userID)
	case coin.KindReview:
		return e.OnReviewApproved(ctx, userID)
	case coin.KindNotify:
		return e.OnNotificationToggle(ctx, userID, true)
	default:
		return coin.Event{}, false, fmt.Errorf("%q cannot be triggered directly: %w",
			kind, serviceerrs.ErrUnknownEventKind)
	}
}
