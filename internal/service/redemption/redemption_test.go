package redemption

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/order"
	rdm "github.com/talx-hub/gopher-coins/internal/model/redemption"
	"github.com/talx-hub/gopher-coins/internal/model/wallet"
	"github.com/talx-hub/gopher-coins/internal/repo/memstore"
	"github.com/talx-hub/gopher-coins/internal/repo/pending"
	"github.com/talx-hub/gopher-coins/internal/service/coinsconfig"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
	"github.com/talx-hub/gopher-coins/internal/utils/keylock"
)

var (
	testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sess    = rdm.Session{ID: "sess-1"}
)

type fixture struct {
	engine  *Engine
	store   *memstore.MemoryStore
	pending *pending.MemoryStore
}

func newFixture(t *testing.T, rate string) *fixture {
	t.Helper()

	cfg, err := coinsconfig.New(nil, coinsconfig.GlobalConfig{
		ConversionRate: decimal.RequireFromString(rate),
		RedeemLimit:    decimal.RequireFromString("0.25"),
	})
	require.NoError(t, err)

	clock := func() time.Time { return testNow }
	store := memstore.New()
	ps := pending.NewMemoryStore(clock)
	e := New(store, ps, store, cfg, keylock.New(), time.Hour).WithClock(clock)
	return &fixture{engine: e, store: store, pending: ps}
}

func (f *fixture) earn(t *testing.T, userID string, value int64, createdAt time.Time, days int) coin.Event {
	t.Helper()
	ev := coin.New(userID, coin.KindReview, value, createdAt, days)
	_, err := f.store.CreateEarning(context.Background(), &ev, 0)
	require.NoError(t, err)
	return ev
}

func (f *fixture) placeOrder(t *testing.T, userID, orderID string) {
	t.Helper()
	require.NoError(t, f.store.CreateOrder(context.Background(), &order.Order{
		PlacedAt: testNow,
		ID:       orderID,
		UserID:   userID,
	}))
}

func (f *fixture) wallet(t *testing.T, userID string) wallet.Wallet {
	t.Helper()
	w, err := f.store.GetWallet(context.Background(), userID)
	require.NoError(t, err)
	return w
}

func TestEngine_Stage_clamps(t *testing.T) {
	tests := []struct {
		name       string
		rate       string
		balance    int64
		requested  int64
		wantPoints int64
		wantAmount model.Amount
	}{
		{"request within balance", "1", 10, 8, 8, model.NewAmount(8, 0)},
		{"request above balance", "1", 3, 10, 3, model.NewAmount(3, 0)},
		{"conversion rate applied", "2", 3, 10, 3, model.NewAmount(6, 0)},
		{"zero request", "1", 3, 0, 0, model.Amount{}},
		{"negative request", "1", 3, -4, 0, model.Amount{}},
		{"empty wallet", "1", 0, 5, 0, model.Amount{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.rate)
			ctx := context.Background()
			if tt.balance > 0 {
				f.earn(t, "u1", tt.balance, testNow.Add(-time.Hour), 30)
			}

			p, err := f.engine.Stage(ctx, sess, "u1", tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPoints, p.Points)
			assert.Equal(t, tt.wantAmount, p.Amount)

			stored, ok, err := f.pending.Get(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantPoints > 0, ok)
			if ok {
				assert.Equal(t, "u1", stored.Owner)
				assert.Equal(t, sess.ID, stored.SessionID)
				assert.Equal(t, testNow.Add(time.Hour), stored.ExpiresAt)
			}
		})
	}
}

func TestEngine_Stage_lastStageWins(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	f.earn(t, "u1", 10, testNow.Add(-time.Hour), 30)

	_, err := f.engine.Stage(ctx, sess, "u1", 8)
	require.NoError(t, err)
	_, err = f.engine.Stage(ctx, sess, "u1", 2)
	require.NoError(t, err)

	got, err := f.engine.ComputeCartDiscount(ctx, sess, "u1")
	require.NoError(t, err)
	assert.Equal(t, model.NewAmount(-2, 0), got)

	_, err = f.engine.Stage(ctx, rdm.Session{}, "u1", 2)
	require.ErrorIs(t, err, serviceerrs.ErrNoSession)
}

func TestEngine_Stage_onePerUser(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	f.earn(t, "u1", 10, testNow.Add(-time.Hour), 30)
	f.placeOrder(t, "u1", "order-1")
	f.placeOrder(t, "u1", "order-2")
	phone, laptop := rdm.Session{ID: "phone"}, rdm.Session{ID: "laptop"}

	_, err := f.engine.Stage(ctx, phone, "u1", 10)
	require.NoError(t, err)
	_, err = f.engine.Stage(ctx, laptop, "u1", 10)
	require.NoError(t, err)

	got, err := f.engine.ComputeCartDiscount(ctx, phone, "u1")
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "replaced stage must not show in the first session")

	require.NoError(t, f.engine.Revert(ctx, phone, "u1"))
	got, err = f.engine.ComputeCartDiscount(ctx, laptop, "u1")
	require.NoError(t, err)
	assert.Equal(t, model.NewAmount(-10, 0), got, "revert from the first session keeps the last stage")

	charged, err := f.engine.Apply(ctx, phone, "order-1")
	require.NoError(t, err)
	assert.Zero(t, charged)
	charged, err = f.engine.Apply(ctx, laptop, "order-2")
	require.NoError(t, err)
	assert.Equal(t, int64(10), charged)

	w := f.wallet(t, "u1")
	assert.Equal(t, int64(0), w.Balance)
	assert.Equal(t, int64(10), w.Spent)
}

func TestEngine_Apply_concurrentCheckouts(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	f.earn(t, "u1", 10, testNow.Add(-time.Hour), 30)
	_, err := f.engine.Stage(ctx, sess, "u1", 8)
	require.NoError(t, err)

	const checkouts = 8
	orders := make([]string, checkouts)
	for i := range orders {
		orders[i] = fmt.Sprintf("order-%d", i)
		f.placeOrder(t, "u1", orders[i])
	}

	var (
		wg    sync.WaitGroup
		total atomic.Int64
	)
	for _, id := range orders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			charged, err := f.engine.Apply(ctx, sess, id)
			assert.NoError(t, err)
			total.Add(charged)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(8), total.Load())
	assert.Equal(t, int64(2), f.wallet(t, "u1").Balance)
}

func TestEngine_ComputeCartDiscount(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	f.earn(t, "u1", 10, testNow.Add(-time.Hour), 30)

	got, err := f.engine.ComputeCartDiscount(ctx, sess, "u1")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = f.engine.Stage(ctx, sess, "u1", 8)
	require.NoError(t, err)

	for range 2 {
		got, err = f.engine.ComputeCartDiscount(ctx, sess, "u1")
		require.NoError(t, err)
		assert.Equal(t, model.NewAmount(-8, 0), got)
	}

	got, err = f.engine.ComputeCartDiscount(ctx, sess, "u2")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = f.engine.ComputeCartDiscount(ctx, rdm.Session{ID: "other"}, "u1")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestEngine_Revert(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	f.earn(t, "u1", 10, testNow.Add(-time.Hour), 30)

	_, err := f.engine.Stage(ctx, sess, "u1", 8)
	require.NoError(t, err)
	require.NoError(t, f.engine.Revert(ctx, sess, "u1"))
	require.NoError(t, f.engine.Revert(ctx, sess, "u1"))

	got, err := f.engine.ComputeCartDiscount(ctx, sess, "u1")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestEngine_OnCartMutated(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	f.earn(t, "u1", 10, testNow.Add(-time.Hour), 30)

	_, err := f.engine.Stage(ctx, sess, "u1", 8)
	require.NoError(t, err)

	require.NoError(t, f.engine.OnCartMutated(ctx, sess, "u2"))
	_, ok, err := f.pending.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok, "foreign user must not clear the redemption")

	require.NoError(t, f.engine.OnCartMutated(ctx, sess, "u1"))
	_, ok, err = f.pending.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_Apply_fifo(t *testing.T) {
	tests := []struct {
		name         string
		redeem       int64
		wantBalances []int64
		wantSpends   []int64
	}{
		{"redeem 8 drains E1 and part of E2", 8, []int64{0, 7}, []int64{5, 3}},
		{"redeem 5 drains only E1", 5, []int64{0, 10}, []int64{5, 0}},
		{"redeem 15 drains both", 15, []int64{0, 0}, []int64{5, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "1")
			ctx := context.Background()
			f.earn(t, "u1", 5, testNow.Add(-2*time.Hour), 30)
			f.earn(t, "u1", 10, testNow.Add(-time.Hour), 30)
			f.placeOrder(t, "u1", "order-1")

			_, err := f.engine.Stage(ctx, sess, "u1", tt.redeem)
			require.NoError(t, err)
			charged, err := f.engine.Apply(ctx, sess, "order-1")
			require.NoError(t, err)
			assert.Equal(t, tt.redeem, charged)

			events, err := f.store.ListEvents(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, events, 2)
			for i, ev := range events {
				assert.Equal(t, tt.wantBalances[i], ev.Balance, "balance of E%d", i+1)
				assert.Equal(t, tt.wantSpends[i], ev.Spend, "spend of E%d", i+1)
				assert.Equal(t, ev.Value, ev.Spend+ev.Balance)
			}

			w := f.wallet(t, "u1")
			assert.Equal(t, 15-tt.redeem, w.Balance)
			assert.Equal(t, tt.redeem, w.Spent)
			assert.True(t, w.Consistent())
		})
	}
}

func TestEngine_Apply_scenario(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	ev := f.earn(t, "u1", 10, testNow.Add(-time.Hour), 30)
	f.placeOrder(t, "u1", "order-1")

	p, err := f.engine.Stage(ctx, sess, "u1", 8)
	require.NoError(t, err)
	assert.Equal(t, model.NewAmount(8, 0), p.Amount)

	fee, err := f.engine.ComputeCartDiscount(ctx, sess, "u1")
	require.NoError(t, err)
	assert.Equal(t, model.NewAmount(-8, 0), fee)

	_, err = f.engine.Apply(ctx, sess, "order-1")
	require.NoError(t, err)

	events, err := f.store.ListEvents(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0].ID)
	assert.Equal(t, int64(2), events[0].Balance)
	assert.Equal(t, int64(8), events[0].Spend)
	require.NotNil(t, events[0].SpendAt)
	assert.Equal(t, testNow, *events[0].SpendAt)

	w := f.wallet(t, "u1")
	assert.Equal(t, int64(2), w.Balance)
	assert.Equal(t, int64(8), w.Spent)

	_, ok, err := f.pending.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	charged, err := f.engine.Apply(ctx, sess, "order-1")
	require.NoError(t, err)
	assert.Zero(t, charged, "a consumed redemption cannot be applied twice")
}

func TestEngine_Apply_noop(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	f.earn(t, "u1", 10, testNow.Add(-time.Hour), 30)
	f.placeOrder(t, "u1", "order-1")
	f.placeOrder(t, "u2", "order-2")

	charged, err := f.engine.Apply(ctx, sess, "order-1")
	require.NoError(t, err)
	assert.Zero(t, charged)

	_, err = f.engine.Stage(ctx, sess, "u1", 4)
	require.NoError(t, err)
	charged, err = f.engine.Apply(ctx, sess, "order-2")
	require.NoError(t, err)
	assert.Zero(t, charged, "staged for another user")

	_, err = f.engine.Apply(ctx, sess, "missing")
	require.ErrorIs(t, err, serviceerrs.ErrNotFound)

	assert.Equal(t, int64(10), f.wallet(t, "u1").Balance)
}

func TestEngine_Apply_shortfallStillCharges(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	f.earn(t, "u1", 5, testNow.Add(-time.Hour), 30)
	f.placeOrder(t, "u1", "order-1")

	require.NoError(t, f.pending.Set(ctx, "u1", rdm.Pending{
		Owner:     "u1",
		SessionID: sess.ID,
		Amount:    model.NewAmount(8, 0),
		Points:    8,
	}))

	charged, err := f.engine.Apply(ctx, sess, "order-1")
	require.NoError(t, err)
	assert.Equal(t, int64(8), charged)

	w := f.wallet(t, "u1")
	assert.Equal(t, int64(-3), w.Balance)
	assert.Equal(t, int64(8), w.Spent)

	events, err := f.store.ListEvents(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), events[0].Balance)
	assert.Equal(t, int64(5), events[0].Spend)
}

func TestEngine_expiredExcluded(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	expired := f.earn(t, "u1", 4, testNow.AddDate(0, 0, -40), 30)
	f.earn(t, "u1", 6, testNow.Add(-time.Hour), 30)
	f.placeOrder(t, "u1", "order-1")

	p, err := f.engine.Stage(ctx, sess, "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Points)

	w := f.wallet(t, "u1")
	assert.Equal(t, int64(6), w.Balance)
	assert.Equal(t, int64(4), w.Expired)
	assert.True(t, w.Consistent())

	_, err = f.engine.Apply(ctx, sess, "order-1")
	require.NoError(t, err)

	events, err := f.store.ListEvents(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, expired.ID, events[0].ID)
	assert.Equal(t, coin.StatusExpired, events[0].Status)
	assert.Equal(t, int64(4), events[0].Balance)
	assert.Equal(t, int64(4), events[0].Expired)
	assert.Zero(t, events[0].Spend)
	assert.Equal(t, int64(0), events[1].Balance)

	w = f.wallet(t, "u1")
	assert.Zero(t, w.Balance)
	assert.True(t, w.Consistent())
}

func TestEngine_ExpireDue(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	f.earn(t, "u1", 4, testNow.AddDate(0, 0, -40), 30)
	f.earn(t, "u1", 3, testNow.AddDate(0, 0, -30), 30)
	f.earn(t, "u1", 6, testNow, 30)

	n, err := f.engine.ExpireDue(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n, "expiry is inclusive of the expiry instant")

	n, err = f.engine.ExpireDue(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, n)

	w := f.wallet(t, "u1")
	assert.Equal(t, wallet.Wallet{UserID: "u1", Balance: 6, Earned: 13, Expired: 7}, w)
}

func TestEngine_MaxRedeemable(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		subtotal model.Amount
		want     int64
	}{
		{"limited by subtotal", 100, model.NewAmount(40, 0), 10},
		{"floor of the fraction", 100, model.NewAmount(41, 99), 10},
		{"limited by balance", 3, model.NewAmount(40, 0), 3},
		{"empty cart", 3, model.Amount{}, 0},
		{"empty wallet", 0, model.NewAmount(40, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "1")
			if tt.balance > 0 {
				f.earn(t, "u1", tt.balance, testNow.Add(-time.Hour), 30)
			}
			got, err := f.engine.MaxRedeemable(context.Background(), "u1", tt.subtotal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_SpendOnGame(t *testing.T) {
	f := newFixture(t, "1")
	ctx := context.Background()
	f.earn(t, "u1", 5, testNow.Add(-2*time.Hour), 30)
	f.earn(t, "u1", 10, testNow.Add(-time.Hour), 30)

	drains, err := f.engine.SpendOnGame(ctx, "u1", "", 7)
	require.NoError(t, err)
	require.Len(t, drains, 2)

	events, err := f.store.ListEvents(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []coin.SpecialMark{{Date: testNow, Type: coin.MarkSpinWheel, Value: 5}},
		events[0].SpecialMarks)
	assert.Equal(t, []coin.SpecialMark{{Date: testNow, Type: coin.MarkSpinWheel, Value: 2}},
		events[1].SpecialMarks)

	w := f.wallet(t, "u1")
	assert.Equal(t, int64(8), w.Balance)
	assert.Equal(t, int64(7), w.Spent)

	_, err = f.engine.SpendOnGame(ctx, "u1", coin.MarkSpinWheel, 9)
	require.ErrorIs(t, err, serviceerrs.ErrInsufficientBalance)
	assert.Equal(t, int64(8), f.wallet(t, "u1").Balance)

	drains, err = f.engine.SpendOnGame(ctx, "u1", coin.MarkSpinWheel, 0)
	require.NoError(t, err)
	assert.Empty(t, drains)
}
