// Package redemption turns coins into a cart discount in two phases: a
// redemption is staged for a user and applied once the order is placed.
package redemption

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/coin"
	rdm "github.com/talx-hub/gopher-coins/internal/model/redemption"
	"github.com/talx-hub/gopher-coins/internal/model/wallet"
	"github.com/talx-hub/gopher-coins/internal/service/coinsconfig"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
	"github.com/talx-hub/gopher-coins/internal/utils/logger"
)

type coinStore interface {
	ListActiveEvents(ctx context.Context, userID string) ([]coin.Event, error)
	ExpireEvents(ctx context.Context, userID string, ids []int64) (int64, error)
	Spend(ctx context.Context, s *coin.Spending) error
	GetWallet(ctx context.Context, userID string) (wallet.Wallet, error)
}

// pendingStore holds at most one staged redemption per user.
type pendingStore interface {
	Get(ctx context.Context, userID string) (rdm.Pending, bool, error)
	Set(ctx context.Context, userID string, p rdm.Pending) error
	Delete(ctx context.Context, userID string) error
}

type orderSource interface {
	FindUserIDByOrderID(ctx context.Context, orderID string) (string, error)
}

type configProvider interface {
	Global() coinsconfig.GlobalConfig
}

type userLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type Engine struct {
	store   coinStore
	pending pendingStore
	orders  orderSource
	cfg     configProvider
	locks   userLocker
	now     func() time.Time
	ttl     time.Duration
}

func New(
	store coinStore,
	pending pendingStore,
	orders orderSource,
	cfg configProvider,
	locks userLocker,
	ttl time.Duration,
) *Engine {
	if ttl <= 0 {
		ttl = model.DefaultPendingTTL
	}
	return &Engine{
		store:   store,
		pending: pending,
		orders:  orders,
		cfg:     cfg,
		locks:   locks,
		now:     time.Now,
		ttl:     ttl,
	}
}

func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Stage records the user's wish to redeem requested points from this
// session. A user has at most one staged redemption: a new stage from any
// session replaces the previous one. The request is clamped to the wallet
// balance; nothing left to redeem clears any earlier staging.
func (e *Engine) Stage(ctx context.Context,
	sess rdm.Session, userID string, requested int64,
) (rdm.Pending, error) {
	if sess.ID == "" {
		return rdm.Pending{}, serviceerrs.ErrNoSession
	}
	log := logger.FromContext(ctx).With(
		slog.String("service", "redemption"),
		slog.String("user_id", userID),
	)

	unlock, err := e.locks.Lock(ctx, userID)
	if err != nil {
		return rdm.Pending{}, fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	defer unlock()

	now := e.now().UTC()
	if _, _, err = e.sweepLocked(ctx, userID, now); err != nil {
		return rdm.Pending{}, err
	}
	w, err := e.store.GetWallet(ctx, userID)
	if err != nil {
		return rdm.Pending{}, fmt.Errorf("failed to get wallet of %s: %w", userID, err)
	}

	points := min(requested, w.Balance)
	if points <= 0 {
		log.LogAttrs(ctx, slog.LevelDebug, "nothing to redeem",
			slog.Int64("requested", requested),
			slog.Int64("balance", w.Balance),
		)
		return rdm.Pending{}, e.dropLocked(ctx, userID)
	}

	p := rdm.Pending{
		CreatedAt: now,
		ExpiresAt: now.Add(e.ttl),
		Owner:     userID,
		SessionID: sess.ID,
		Amount:    model.FromPoints(points, e.cfg.Global().ConversionRate),
		Points:    points,
	}
	if err = e.pending.Set(ctx, userID, p); err != nil {
		return rdm.Pending{}, fmt.Errorf("failed to stage redemption: %w", err)
	}

	log.LogAttrs(ctx, slog.LevelInfo, "redemption staged",
		slog.Int64("points", points),
		slog.String("discount", p.Amount.String()),
	)
	return p, nil
}

// Revert drops the user's redemption if it was staged from sess. A stage
// made later from another session is left alone.
func (e *Engine) Revert(ctx context.Context, sess rdm.Session, userID string) error {
	if sess.ID == "" {
		return nil
	}
	unlock, err := e.locks.Lock(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	defer unlock()

	return e.revertLocked(ctx, sess, userID)
}

func (e *Engine) revertLocked(ctx context.Context, sess rdm.Session, userID string) error {
	p, ok, err := e.lookup(ctx, userID)
	if err != nil || !ok || !p.StagedIn(userID, sess) {
		return err
	}
	return e.dropLocked(ctx, userID)
}

func (e *Engine) dropLocked(ctx context.Context, userID string) error {
	if err := e.pending.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to revert redemption: %w", err)
	}
	return nil
}

// ComputeCartDiscount returns the negative fee to add to the cart of sess.
// It only reads, so repeated recalculations never stack the discount.
func (e *Engine) ComputeCartDiscount(ctx context.Context,
	sess rdm.Session, userID string,
) (model.Amount, error) {
	p, ok, err := e.lookup(ctx, userID)
	if err != nil {
		return model.Amount{}, err
	}
	if !ok || !p.Matches(userID, sess, e.now().UTC()) {
		return model.Amount{}, nil
	}
	return p.Amount.Neg(), nil
}

// OnCartMutated invalidates the redemption staged from sess: cart totals
// changed, so the user has to request it again.
func (e *Engine) OnCartMutated(ctx context.Context, sess rdm.Session, userID string) error {
	return e.Revert(ctx, sess, userID)
}

// Apply consumes the redemption staged from sess for a placed order and
// returns the points charged. Points are drained from the oldest events
// first. When drift leaves the events short, the wallet is still charged in
// full and the gap is logged.
func (e *Engine) Apply(ctx context.Context, sess rdm.Session, orderID string) (int64, error) {
	userID, err := e.orders.FindUserIDByOrderID(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve owner of order %s: %w", orderID, err)
	}
	log := logger.FromContext(ctx).With(
		slog.String("service", "redemption"),
		slog.String("user_id", userID),
		slog.String("order_no", orderID),
	)

	unlock, err := e.locks.Lock(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	defer unlock()

	p, ok, err := e.lookup(ctx, userID)
	if err != nil {
		return 0, err
	}
	now := e.now().UTC()
	if !ok || !p.Matches(userID, sess, now) {
		log.LogAttrs(ctx, slog.LevelDebug, "no staged redemption for order")
		return 0, nil
	}

	charge := p.Amount.Points()
	if charge <= 0 {
		return 0, e.dropLocked(ctx, userID)
	}

	spendable, _, err := e.sweepLocked(ctx, userID, now)
	if err != nil {
		return 0, err
	}
	drains, shortfall := coin.PlanDrain(spendable, charge)
	if shortfall > 0 {
		log.LogAttrs(ctx, slog.LevelWarn, "coin events cannot cover the redemption",
			slog.Int64("charge", charge),
			slog.Int64("shortfall", shortfall),
		)
	}

	err = e.store.Spend(ctx, &coin.Spending{
		At:     now,
		UserID: userID,
		Drains: drains,
		Charge: charge,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to apply redemption: %w", err)
	}
	if err = e.dropLocked(ctx, userID); err != nil {
		return charge, err
	}

	log.LogAttrs(ctx, slog.LevelInfo, "redemption applied",
		slog.Int64("points", charge),
		slog.Int("events", len(drains)),
	)
	return charge, nil
}

// MaxRedeemable caps a redemption at a fraction of the cart subtotal and at
// the wallet balance.
func (e *Engine) MaxRedeemable(ctx context.Context,
	userID string, subtotal model.Amount,
) (int64, error) {
	unlock, err := e.locks.Lock(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	defer unlock()

	if _, _, err = e.sweepLocked(ctx, userID, e.now().UTC()); err != nil {
		return 0, err
	}
	w, err := e.store.GetWallet(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get wallet of %s: %w", userID, err)
	}

	limit := subtotal.Decimal().Mul(e.cfg.Global().RedeemLimit).Floor().IntPart()
	return max(min(limit, w.Balance), 0), nil
}

// SpendOnGame spends value points outside the cart flow and marks every
// drained event with markType.
func (e *Engine) SpendOnGame(ctx context.Context,
	userID, markType string, value int64,
) ([]coin.Drain, error) {
	if value <= 0 {
		return nil, nil
	}
	if markType == "" {
		markType = coin.MarkSpinWheel
	}

	unlock, err := e.locks.Lock(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	defer unlock()

	now := e.now().UTC()
	spendable, _, err := e.sweepLocked(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	drains, shortfall := coin.PlanDrain(spendable, value)
	if shortfall > 0 {
		return nil, fmt.Errorf("%d points short: %w", shortfall, serviceerrs.ErrInsufficientBalance)
	}

	err = e.store.Spend(ctx, &coin.Spending{
		At:       now,
		UserID:   userID,
		MarkType: markType,
		Drains:   drains,
		Charge:   value,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to spend %d points: %w", value, err)
	}

	logger.FromContext(ctx).LogAttrs(ctx, slog.LevelInfo, "coins spent",
		slog.String("user_id", userID),
		slog.String("mark", markType),
		slog.Int64("points", value),
	)
	return drains, nil
}

// ExpireDue writes off the balance of every event that is past its expiry.
func (e *Engine) ExpireDue(ctx context.Context, userID string) (int64, error) {
	unlock, err := e.locks.Lock(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	defer unlock()

	_, expired, err := e.sweepLocked(ctx, userID, e.now().UTC())
	return expired, err
}

// sweepLocked expires due events and returns the ones still spendable,
// oldest first. The caller holds the user's lock.
func (e *Engine) sweepLocked(ctx context.Context,
	userID string, now time.Time,
) ([]coin.Event, int64, error) {
	active, err := e.store.ListActiveEvents(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list active events of %s: %w", userID, err)
	}

	var (
		due       []int64
		spendable = make([]coin.Event, 0, len(active))
	)
	for i := range active {
		ev := &active[i]
		switch {
		case coin.IsExpired(ev, now):
			if ev.Balance > 0 {
				due = append(due, ev.ID)
			}
		case coin.Spendable(ev, now):
			spendable = append(spendable, *ev)
		}
	}
	if len(due) == 0 {
		return spendable, 0, nil
	}

	expired, err := e.store.ExpireEvents(ctx, userID, due)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to expire events of %s: %w", userID, err)
	}
	if expired > 0 {
		logger.FromContext(ctx).LogAttrs(ctx, slog.LevelInfo, "coins expired",
			slog.String("user_id", userID),
			slog.Int64("points", expired),
		)
	}
	return spendable, expired, nil
}

func (e *Engine) lookup(ctx context.Context, userID string) (rdm.Pending, bool, error) {
	p, ok, err := e.pending.Get(ctx, userID)
	if err != nil {
		return rdm.Pending{}, false, fmt.Errorf("failed to read staged redemption: %w", err)
	}
	return p, ok, nil
}
