package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/wallet"
	"github.com/talx-hub/gopher-coins/internal/repo/memstore"
	"github.com/talx-hub/gopher-coins/internal/repo/pending"
	"github.com/talx-hub/gopher-coins/internal/service/coinsconfig"
	"github.com/talx-hub/gopher-coins/internal/service/redemption"
	"github.com/talx-hub/gopher-coins/internal/utils/keylock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newReconciler(t *testing.T, store *memstore.MemoryStore, interval time.Duration) *Reconciler {
	t.Helper()

	cfg, err := coinsconfig.New(nil, coinsconfig.GlobalConfig{
		ConversionRate: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	clock := func() time.Time { return testNow }
	locks := keylock.New()
	sweeper := redemption.New(store, pending.NewMemoryStore(clock), store, cfg, locks, time.Hour).
		WithClock(clock)
	return New(store, sweeper, locks, interval, 2).WithClock(clock)
}

func earn(t *testing.T, store *memstore.MemoryStore, userID string, value int64, createdAt time.Time) coin.Event {
	t.Helper()
	ev := coin.New(userID, coin.KindReview, value, createdAt, 30)
	_, err := store.CreateEarning(context.Background(), &ev, 0)
	require.NoError(t, err)
	return ev
}

func TestReconciler_CheckUser(t *testing.T) {
	ctx := context.Background()

	t.Run("consistent wallet", func(t *testing.T) {
		store := memstore.New()
		ev := earn(t, store, "u1", 10, testNow.AddDate(0, 0, -1))
		require.NoError(t, store.Spend(ctx, &coin.Spending{
			At:     testNow,
			UserID: "u1",
			Drains: []coin.Drain{{EventID: ev.ID, Points: 4}},
		}))

		report, err := newReconciler(t, store, 0).CheckUser(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.Equal(t, int64(6), report.EventsBalance)
		assert.Equal(t, int64(0), report.Drift())
	})

	t.Run("sweeps due expiry first", func(t *testing.T) {
		store := memstore.New()
		earn(t, store, "u1", 4, testNow.AddDate(0, 0, -40))
		earn(t, store, "u1", 10, testNow.AddDate(0, 0, -1))

		report, err := newReconciler(t, store, 0).CheckUser(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.Equal(t, int64(4), report.Expired)
		assert.Equal(t, int64(10), report.EventsBalance)
		assert.Equal(t, wallet.Wallet{UserID: "u1", Balance: 10, Earned: 14, Expired: 4}, report.Wallet)
	})

	t.Run("reports out of band drift", func(t *testing.T) {
		store := memstore.New()
		earn(t, store, "u1", 10, testNow.AddDate(0, 0, -1))
		require.NoError(t, store.Spend(ctx, &coin.Spending{
			At:     testNow,
			UserID: "u1",
			Charge: 3,
		}))

		report, err := newReconciler(t, store, 0).CheckUser(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, report.OK())
		assert.Equal(t, int64(-3), report.Drift())
		assert.True(t, report.Wallet.Consistent())
	})
}

func TestReconciler_CheckAll(t *testing.T) {
	store := memstore.New()
	earn(t, store, "u1", 10, testNow.AddDate(0, 0, -1))
	earn(t, store, "u2", 5, testNow.AddDate(0, 0, -1))
	earn(t, store, "u3", 7, testNow.AddDate(0, 0, -60))
	require.NoError(t, store.Spend(context.Background(), &coin.Spending{
		At: testNow, UserID: "u2", Charge: 1,
	}))

	reports, err := newReconciler(t, store, 0).CheckAll(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 3)

	drifted := make(map[string]bool)
	for _, r := range reports {
		drifted[r.UserID] = !r.OK()
	}
	assert.Equal(t, map[string]bool{"u1": false, "u2": true, "u3": false}, drifted)
}

type brokenSweeper struct{}

func (brokenSweeper) ExpireDue(context.Context, string) (int64, error) {
	return 0, errors.New("store is down")
}

func TestReconciler_CheckUser_sweepError(t *testing.T) {
	r := New(memstore.New(), brokenSweeper{}, keylock.New(), 0, 1)
	_, err := r.CheckUser(context.Background(), "u1")
	require.Error(t, err)
}

func TestReconciler_CheckAll_skipsFailedUsers(t *testing.T) {
	store := memstore.New()
	earn(t, store, "u1", 10, testNow)

	reports, err := New(store, brokenSweeper{}, keylock.New(), 0, 1).CheckAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestReconciler_Run(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		r := newReconciler(t, memstore.New(), 0)
		done := make(chan struct{})
		go func() {
			r.Run(context.Background())
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("disabled reconciler did not return")
		}
	})

	t.Run("expires on tick and stops with context", func(t *testing.T) {
		store := memstore.New()
		earn(t, store, "u1", 4, testNow.AddDate(0, 0, -40))

		r := newReconciler(t, store, 5*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			r.Run(ctx)
			close(done)
		}()

		require.Eventually(t, func() bool {
			w, err := store.GetWallet(context.Background(), "u1")
			return err == nil && w.Expired == 4
		}, time.Second, 5*time.Millisecond)

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("reconciler did not stop")
		}
	})
}
