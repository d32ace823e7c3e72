package repo

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/wallet"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
)

var repoNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func TestCoinRepository_CreateEarning(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewCoinRepository)

	userID := newUserID()

	tests := []struct {
		name        string
		kind        coin.EventKind
		value       int64
		limit       int
		wantCreated bool
	}{
		{"first register", coin.KindRegister, 5, 1, true},
		{"second register hits the limit", coin.KindRegister, 5, 1, false},
		{"first review", coin.KindReview, 3, 2, true},
		{"second review", coin.KindReview, 3, 2, true},
		{"third review hits the limit", coin.KindReview, 3, 2, false},
		{"unlimited check-in", coin.CheckinKind(1), 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := coin.New(userID, tt.kind, tt.value, repoNow, 30)
			created, err := repo.CreateEarning(ctx, &ev, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			if tt.wantCreated {
				assert.NotZero(t, ev.ID)
			}
		})
	}

	w, err := repo.GetWallet(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wallet.Wallet{UserID: userID, Balance: 12, Earned: 12}, w)

	counts, err := repo.CountEventsByKind(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, map[coin.EventKind]int{
		coin.KindRegister:   1,
		coin.KindReview:     2,
		coin.CheckinKind(1): 1,
	}, counts)
}

func TestCoinRepository_CreateEarning_concurrentLimit(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewCoinRepository)

	userID := newUserID()
	const attempts = 10

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev := coin.New(userID, coin.KindNotify, 2, repoNow, 30)
			ok, err := repo.CreateEarning(ctx, &ev, 1)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	n, err := repo.CountEvents(ctx, userID, coin.KindNotify)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCoinRepository_Spend(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewCoinRepository)

	userID := newUserID()
	first := coin.New(userID, coin.KindRegister, 5, repoNow, 30)
	second := coin.New(userID, coin.KindReview, 10, repoNow.Add(time.Minute), 30)
	_, err := repo.CreateEarning(ctx, &first, 0)
	require.NoError(t, err)
	_, err = repo.CreateEarning(ctx, &second, 0)
	require.NoError(t, err)

	spendAt := repoNow.Add(time.Hour)
	err = repo.Spend(ctx, &coin.Spending{
		At:       spendAt,
		UserID:   userID,
		MarkType: coin.MarkSpinWheel,
		Drains: []coin.Drain{
			{EventID: first.ID, Points: 5},
			{EventID: second.ID, Points: 3},
		},
	})
	require.NoError(t, err)

	events, err := repo.ListEvents(ctx, userID)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, int64(0), events[0].Balance)
	assert.Equal(t, int64(5), events[0].Spend)
	require.NotNil(t, events[0].SpendAt)
	assert.True(t, spendAt.Equal(*events[0].SpendAt))
	require.Len(t, events[0].SpecialMarks, 1)
	assert.Equal(t, coin.MarkSpinWheel, events[0].SpecialMarks[0].Type)
	assert.Equal(t, int64(5), events[0].SpecialMarks[0].Value)

	assert.Equal(t, int64(7), events[1].Balance)
	assert.Equal(t, int64(3), events[1].Spend)

	w, err := repo.GetWallet(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), w.Balance)
	assert.Equal(t, int64(8), w.Spent)
	assert.True(t, w.Consistent())

	active, err := repo.ListActiveEvents(ctx, userID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}

func TestCoinRepository_Spend_overdraw(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewCoinRepository)

	userID := newUserID()
	ev := coin.New(userID, coin.KindRegister, 5, repoNow, 30)
	_, err := repo.CreateEarning(ctx, &ev, 0)
	require.NoError(t, err)

	err = repo.Spend(ctx, &coin.Spending{
		At:     repoNow,
		UserID: userID,
		Drains: []coin.Drain{{EventID: ev.ID, Points: 6}},
	})
	require.ErrorIs(t, err, serviceerrs.ErrConflict)

	w, err := repo.GetWallet(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), w.Balance)
	assert.Zero(t, w.Spent)
}

func TestCoinRepository_ExpireEvents(t *testing.T) {
	repo, ctx, pool := setupRepo(t, NewCoinRepository)
	loadFixture(ctx, t, pool, "coin_events.sql")

	const userID = "fixture-user"
	active, err := repo.ListActiveEvents(ctx, userID)
	require.NoError(t, err)
	require.Len(t, active, 2)

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	var due []int64
	for i := range active {
		if coin.IsExpired(&active[i], now) {
			due = append(due, active[i].ID)
		}
	}
	require.Len(t, due, 1)

	expired, err := repo.ExpireEvents(ctx, userID, due)
	require.NoError(t, err)
	assert.Equal(t, int64(5), expired)

	again, err := repo.ExpireEvents(ctx, userID, due)
	require.NoError(t, err)
	assert.Zero(t, again)

	events, err := repo.ListEvents(ctx, userID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, coin.StatusExpired, events[0].Status)
	assert.Equal(t, int64(5), events[0].Expired)
	assert.Equal(t, int64(5), events[0].Balance)

	w, err := repo.GetWallet(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wallet.Wallet{
		UserID: userID, Balance: 10, Earned: 15, Expired: 5,
	}, w)
	assert.True(t, w.Consistent())

	users, err := repo.ListWalletUsers(ctx)
	require.NoError(t, err)
	assert.Contains(t, users, userID)
}

func TestCoinRepository_GetWallet_unknownUser(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewCoinRepository)

	userID := newUserID()
	w, err := repo.GetWallet(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wallet.Wallet{UserID: userID}, w)
}
