// Package memstore keeps users, coin events, wallets and orders in memory.
// It serves the same contracts as the Postgres repositories and backs the
// service when no database is configured.
package memstore

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/order"
	"github.com/talx-hub/gopher-coins/internal/model/user"
	"github.com/talx-hub/gopher-coins/internal/model/wallet"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
)

type MemoryStore struct {
	events  map[int64]*coin.Event
	wallets map[string]*wallet.Wallet
	users   map[string]*user.User
	logins  map[string]string
	orders  map[string]*order.Order

	eventCounter atomic.Int64
	userCounter  atomic.Int64

	mu sync.RWMutex
}

func New() *MemoryStore {
	return &MemoryStore{
		events:  make(map[int64]*coin.Event),
		wallets: make(map[string]*wallet.Wallet),
		users:   make(map[string]*user.User),
		logins:  make(map[string]string),
		orders:  make(map[string]*order.Order),
	}
}

func (s *MemoryStore) CreateEarning(_ context.Context, ev *coin.Event, limit int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit > 0 && s.countLocked(ev.UserID, ev.Kind) >= limit {
		return false, nil
	}

	ev.ID = s.eventCounter.Add(1)
	stored := cloneEvent(ev)
	s.events[ev.ID] = &stored
	s.walletLocked(ev.UserID).Apply(wallet.Earn(ev.Value))
	return true, nil
}

func (s *MemoryStore) CountEvents(_ context.Context, userID string, kind coin.EventKind) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countLocked(userID, kind), nil
}

func (s *MemoryStore) CountEventsByKind(_ context.Context, userID string,
) (map[coin.EventKind]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[coin.EventKind]int)
	for _, ev := range s.events {
		if ev.UserID == userID {
			counts[ev.Kind]++
		}
	}
	return counts, nil
}

func (s *MemoryStore) ListEvents(_ context.Context, userID string) ([]coin.Event, error) {
	return s.filterEvents(func(ev *coin.Event) bool {
		return ev.UserID == userID
	}), nil
}

func (s *MemoryStore) ListActiveEvents(_ context.Context, userID string) ([]coin.Event, error) {
	return s.filterEvents(func(ev *coin.Event) bool {
		return ev.UserID == userID && ev.Status == coin.StatusActive && ev.Balance != 0
	}), nil
}

// Spend validates every drain before touching any event, so a failed
// spending leaves the store unchanged.
func (s *MemoryStore) Spend(_ context.Context, sp *coin.Spending) error {
	if sp.Debit() == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	need := make(map[int64]int64, len(sp.Drains))
	for _, d := range sp.Drains {
		need[d.EventID] += d.Points
	}
	for id, points := range need {
		ev, ok := s.events[id]
		if !ok || ev.UserID != sp.UserID || ev.Status != coin.StatusActive || ev.Balance < points {
			return fmt.Errorf("event %d cannot cover %d points: %w",
				id, points, serviceerrs.ErrConflict)
		}
	}

	for _, d := range sp.Drains {
		ev := s.events[d.EventID]
		d.Apply(ev, sp.At)
		if m, ok := sp.Mark(d); ok {
			ev.SpecialMarks = append(ev.SpecialMarks, m)
		}
	}
	s.walletLocked(sp.UserID).Apply(wallet.Spend(sp.Debit()))
	return nil
}

func (s *MemoryStore) ExpireEvents(_ context.Context, userID string, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, id := range ids {
		ev, ok := s.events[id]
		if !ok || ev.UserID != userID || ev.Status != coin.StatusActive {
			continue
		}
		total += ev.Expire()
	}
	if total > 0 {
		s.walletLocked(userID).Apply(wallet.Expire(total))
	}
	return total, nil
}

func (s *MemoryStore) GetWallet(_ context.Context, userID string) (wallet.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if w, ok := s.wallets[userID]; ok {
		return *w, nil
	}
	return wallet.Wallet{UserID: userID}, nil
}

func (s *MemoryStore) ListWalletUsers(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]string, 0, len(s.wallets))
	for id := range s.wallets {
		users = append(users, id)
	}
	sort.Strings(users)
	return users, nil
}

func (s *MemoryStore) Create(_ context.Context, u *user.User) error {
	if u.LoginHash == "" || u.PasswordHash == "" {
		return errors.New("failed to create user: login and password hashes must be set")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.logins[u.LoginHash]; taken {
		return fmt.Errorf("login is taken: %w", serviceerrs.ErrConflict)
	}
	u.ID = strconv.FormatInt(s.userCounter.Add(1), 10)
	stored := *u
	s.users[u.ID] = &stored
	s.logins[u.LoginHash] = u.ID
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, loginHash string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.logins[loginHash]
	return ok
}

func (s *MemoryStore) FindByLogin(_ context.Context, loginHash string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.logins[loginHash]
	if !ok {
		return user.User{}, fmt.Errorf("user: %w", serviceerrs.ErrNotFound)
	}
	return *s.users[id], nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, fmt.Errorf("user: %w", serviceerrs.ErrNotFound)
	}
	return *u, nil
}

func (s *MemoryStore) SetCollectionPoint(_ context.Context, userID, point string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, serviceerrs.ErrNotFound)
	}
	u.CollectionPointID = point
	return nil
}

func (s *MemoryStore) CreateOrder(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID]; ok {
		return fmt.Errorf("order %s: %w", o.ID, serviceerrs.ErrConflict)
	}
	stored := *o
	stored.Fees = slices.Clone(o.Fees)
	s.orders[o.ID] = &stored
	return nil
}

func (s *MemoryStore) FindUserIDByOrderID(_ context.Context, orderID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[orderID]
	if !ok {
		return "", fmt.Errorf("order %s: %w", orderID, serviceerrs.ErrNotFound)
	}
	return o.UserID, nil
}

func (s *MemoryStore) ListRedeemedOrders(_ context.Context, userID string) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []order.Order
	for _, o := range s.orders {
		if o.UserID != userID {
			continue
		}
		fee, ok := o.RedeemedFee()
		if !ok {
			continue
		}
		redeemed := *o
		redeemed.Fees = []order.Fee{{Name: model.FeeRedeemedTokens, Total: fee}}
		orders = append(orders, redeemed)
	}
	slices.SortFunc(orders, func(a, b order.Order) int {
		if c := a.PlacedAt.Compare(b.PlacedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return orders, nil
}

func (s *MemoryStore) countLocked(userID string, kind coin.EventKind) int {
	n := 0
	for _, ev := range s.events {
		if ev.UserID == userID && ev.Kind == kind {
			n++
		}
	}
	return n
}

func (s *MemoryStore) walletLocked(userID string) *wallet.Wallet {
	w, ok := s.wallets[userID]
	if !ok {
		w = &wallet.Wallet{UserID: userID}
		s.wallets[userID] = w
	}
	return w
}

func (s *MemoryStore) filterEvents(keep func(*coin.Event) bool) []coin.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []coin.Event
	for _, ev := range s.events {
		if keep(ev) {
			events = append(events, cloneEvent(ev))
		}
	}
	coin.SortOldestFirst(events)
	return events
}

func cloneEvent(ev *coin.Event) coin.Event {
	c := *ev
	c.SpecialMarks = slices.Clone(ev.SpecialMarks)
	if ev.SpendAt != nil {
		at := *ev.SpendAt
		c.SpendAt = &at
	}
	return c
}
