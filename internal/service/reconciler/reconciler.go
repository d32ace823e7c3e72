// Package reconciler periodically compares every wallet with the events it
// is derived from. Drift is reported, never repaired.
package reconciler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/wallet"
	"github.com/talx-hub/gopher-coins/internal/utils/logger"
	"github.com/talx-hub/gopher-coins/internal/utils/semaphore"
)

type store interface {
	ListWalletUsers(ctx context.Context) ([]string, error)
	ListActiveEvents(ctx context.Context, userID string) ([]coin.Event, error)
	GetWallet(ctx context.Context, userID string) (wallet.Wallet, error)
}

type sweeper interface {
	ExpireDue(ctx context.Context, userID string) (int64, error)
}

type userLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// Report is the outcome of one wallet check.
type Report struct {
	Wallet        wallet.Wallet
	UserID        string
	EventsBalance int64
	Expired       int64
}

// Drift is the wallet balance minus what the live events still hold.
func (r *Report) Drift() int64 {
	return r.Wallet.Balance - r.EventsBalance
}

func (r *Report) OK() bool {
	return r.Drift() == 0 && r.Wallet.Consistent()
}

type Reconciler struct {
	store    store
	sweeper  sweeper
	locks    userLocker
	now      func() time.Time
	interval time.Duration
	workers  uint64
}

func New(store store, sweeper sweeper, locks userLocker,
	interval time.Duration, workers int,
) *Reconciler {
	if workers <= 0 {
		workers = model.DefaultReconcileConcurrency
	}
	return &Reconciler{
		store:    store,
		sweeper:  sweeper,
		locks:    locks,
		now:      time.Now,
		interval: interval,
		workers:  uint64(workers),
	}
}

func (r *Reconciler) WithClock(now func() time.Time) *Reconciler {
	r.now = now
	return r
}

// Run checks all wallets every interval until ctx is done. A non-positive
// interval disables it.
func (r *Reconciler) Run(ctx context.Context) {
	log := logger.FromContext(ctx).With("service", "reconciler")
	if r.interval <= 0 {
		log.LogAttrs(ctx, slog.LevelInfo, "disabled")
		return
	}
	log.LogAttrs(ctx, slog.LevelInfo, "running",
		slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.LogAttrs(ctx, slog.LevelInfo, "stop signal received, exiting...")
			return
		case <-ticker.C:
			reports, err := r.CheckAll(ctx)
			if err != nil {
				log.LogAttrs(ctx, slog.LevelError,
					"failed to reconcile wallets",
					slog.Any(model.KeyLoggerError, err),
				)
				continue
			}
			log.LogAttrs(ctx, slog.LevelDebug, "wallets reconciled",
				slog.Int("users", len(reports)))
		}
	}
}

// CheckAll runs CheckUser for every user owning a wallet. Per-user failures
// are logged and skipped.
func (r *Reconciler) CheckAll(ctx context.Context) ([]Report, error) {
	log := logger.FromContext(ctx)
	users, err := r.store.ListWalletUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet users: %w", err)
	}

	var (
		reports = make([]Report, 0, len(users))
		mu      sync.Mutex
		wg      sync.WaitGroup
		sema    = semaphore.New(r.workers)
	)
	for _, userID := range users {
		if err = sema.Acquire(ctx); err != nil {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sema.Release()

			report, checkErr := r.CheckUser(ctx, userID)
			if checkErr != nil {
				log.LogAttrs(ctx, slog.LevelError,
					"failed to check wallet",
					slog.String("user_id", userID),
					slog.Any(model.KeyLoggerError, checkErr),
				)
				return
			}
			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
		}()
	}
	wg.Wait()

	if err != nil {
		return reports, fmt.Errorf("reconciliation interrupted: %w", err)
	}
	return reports, nil
}

// CheckUser sweeps due expiry of the user and compares the wallet with the
// balances of the live events. Drift is logged at WARN.
func (r *Reconciler) CheckUser(ctx context.Context, userID string) (Report, error) {
	expired, err := r.sweeper.ExpireDue(ctx, userID)
	if err != nil {
		return Report{}, fmt.Errorf("failed to sweep expiry of %s: %w", userID, err)
	}

	unlock, err := r.locks.Lock(ctx, userID)
	if err != nil {
		return Report{}, fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	defer unlock()

	events, err := r.store.ListActiveEvents(ctx, userID)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list active events of %s: %w", userID, err)
	}
	w, err := r.store.GetWallet(ctx, userID)
	if err != nil {
		return Report{}, fmt.Errorf("failed to get wallet of %s: %w", userID, err)
	}

	report := Report{Wallet: w, UserID: userID, Expired: expired}
	now := r.now().UTC()
	for i := range events {
		if !coin.IsExpired(&events[i], now) {
			report.EventsBalance += events[i].Balance
		}
	}

	if !report.OK() {
		logger.FromContext(ctx).LogAttrs(ctx, slog.LevelWarn,
			"wallet drift detected",
			slog.String("user_id", userID),
			slog.Int64("wallet_balance", w.Balance),
			slog.Int64("events_balance", report.EventsBalance),
			slog.Int64("earned", w.Earned),
			slog.Int64("spent", w.Spent),
			slog.Int64("expired", w.Expired),
		)
	}
	return report, nil
}
