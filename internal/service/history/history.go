// Package history merges coin events, their side spends and redeemed orders
// into one ledger, newest first.
package history

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/ledger"
	"github.com/talx-hub/gopher-coins/internal/model/order"
)

const (
	subnameReward     = "Tokens reward"
	subnameGame       = "Price of the game"
	subnameSpent      = "Tokens spent"
	subnamePurchase   = "Completed purchase"
	nameExpiration    = "Tokens expiration"
	nameSpinTheWheel  = "Spin The Wheel"
	earnedDateLayout  = "2006-01-02 15:04:05"
	expiredSubnameFmt = "Tokens earned on %s expired"
)

type coinStore interface {
	ListEvents(ctx context.Context, userID string) ([]coin.Event, error)
}

type orderSource interface {
	ListRedeemedOrders(ctx context.Context, userID string) ([]order.Order, error)
}

type Projector struct {
	store  coinStore
	orders orderSource
	now    func() time.Time
}

func New(store coinStore, orders orderSource) *Projector {
	return &Projector{
		store:  store,
		orders: orders,
		now:    time.Now,
	}
}

func (p *Projector) WithClock(now func() time.Time) *Projector {
	p.now = now
	return p
}

type sequenced struct {
	entry ledger.Entry
	seq   int
}

// History returns the user's ledger. Entries sharing a timestamp are all
// kept; the later-registered one comes first.
func (p *Projector) History(ctx context.Context, userID string) ([]ledger.Entry, error) {
	events, err := p.store.ListEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events of %s: %w", userID, err)
	}
	orders, err := p.orders.ListRedeemedOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list redeemed orders of %s: %w", userID, err)
	}

	now := p.now().UTC()
	var merged []sequenced
	add := func(e ledger.Entry) {
		merged = append(merged, sequenced{entry: e, seq: len(merged)})
	}

	for i := range events {
		ev := &events[i]
		add(ledger.Entry{
			Date:    ev.CreatedAt,
			Type:    ledger.TypeEarn,
			Name:    ev.Kind.Label(),
			Subname: subnameReward,
			CoinID:  ev.ID,
			Value:   ev.Value,
		})
		for _, m := range ev.SpecialMarks {
			add(markEntry(ev.ID, m))
		}
		// a fully spent event has nothing left to expire
		if coin.IsExpired(ev, now) && ev.Balance > 0 {
			add(ledger.Entry{
				Date:    ev.ExpiresAt,
				Type:    ledger.TypeSpend,
				Name:    nameExpiration,
				Subname: fmt.Sprintf(expiredSubnameFmt, ev.CreatedAt.Format(earnedDateLayout)),
				CoinID:  ev.ID,
				Value:   -ev.Balance,
			})
		}
	}

	for i := range orders {
		o := &orders[i]
		fee, ok := o.RedeemedFee()
		if !ok {
			continue
		}
		add(ledger.Entry{
			Date:    o.PlacedAt,
			Type:    ledger.TypeSpend,
			Name:    "Order #" + o.ID,
			Subname: subnamePurchase,
			OrderID: o.ID,
			Value:   fee.Points(),
		})
	}

	slices.SortFunc(merged, func(a, b sequenced) int {
		if c := b.entry.Date.Compare(a.entry.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})

	entries := make([]ledger.Entry, 0, len(merged))
	for _, s := range merged {
		entries = append(entries, s.entry)
	}
	return entries, nil
}

func markEntry(coinID int64, m coin.SpecialMark) ledger.Entry {
	e := ledger.Entry{
		Date:    m.Date,
		Type:    ledger.TypeSpend,
		Name:    m.Type,
		Subname: subnameSpent,
		CoinID:  coinID,
		Value:   -m.Value,
	}
	if m.Type == coin.MarkSpinWheel {
		e.Name = nameSpinTheWheel
		e.Subname = subnameGame
	}
	return e
}
