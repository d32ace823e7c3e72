package coin

import (
	"cmp"
	"slices"
	"time"
)

type Drain struct {
	EventID int64 `json:"event_id"`
	Points  int64 `json:"points"`
}

// SortOldestFirst orders events by creation time, then by store id.
func SortOldestFirst(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// PlanDrain spends points from the oldest events first. The returned
// shortfall is the part of points no event could cover.
func PlanDrain(events []Event, points int64) ([]Drain, int64) {
	ordered := slices.Clone(events)
	SortOldestFirst(ordered)

	var drains []Drain
	left := points
	for i := range ordered {
		if left <= 0 {
			break
		}
		ev := &ordered[i]
		if ev.Balance <= 0 {
			continue
		}
		take := min(left, ev.Balance)
		drains = append(drains, Drain{EventID: ev.ID, Points: take})
		left -= take
	}
	return drains, max(left, 0)
}

// Apply moves points from balance to spend.
func (d Drain) Apply(ev *Event, at time.Time) {
	ev.Balance -= d.Points
	ev.Spend += d.Points
	ev.SpendAt = &at
}

func (ev *Event) Expire() int64 {
	ev.Status = StatusExpired
	ev.Expired = ev.Balance
	return ev.Expired
}

// Spending is one atomic charge: every drain plus the wallet spend.
// A non-empty MarkType stamps each drained event with a special mark.
// Charge is debited from the wallet even when the drains cover less.
type Spending struct {
	At       time.Time
	UserID   string
	MarkType string
	Drains   []Drain
	Charge   int64
}

func (s *Spending) Total() int64 {
	var total int64
	for _, d := range s.Drains {
		total += d.Points
	}
	return total
}

// Debit is what the wallet loses: the charge, or the drained total when the
// charge is smaller.
func (s *Spending) Debit() int64 {
	return max(s.Charge, s.Total())
}

// Mark returns the special mark recorded for d, if the spending carries one.
func (s *Spending) Mark(d Drain) (SpecialMark, bool) {
	if s.MarkType == "" {
		return SpecialMark{}, false
	}
	return SpecialMark{Date: s.At, Type: s.MarkType, Value: d.Points}, true
}
