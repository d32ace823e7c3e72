package events

import (
	"context"
	"fmt"
	"time"

	"github.com/talx-hub/gopher-coins/internal/model/coin"
)

type MissionStatus struct {
	Kind      coin.EventKind `json:"kind"`
	Label     string         `json:"label"`
	Link      string         `json:"link,omitempty"`
	Reward    int64          `json:"reward"`
	Repeat    int            `json:"repeat"`
	Count     int            `json:"count"`
	Completed bool           `json:"completed"`
}

// Missions lists the configured earning actions with the user's progress.
func (e *Engine) Missions(ctx context.Context, userID string) ([]MissionStatus, error) {
	counts, err := e.store.CountEventsByKind(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count events of %s: %w", userID, err)
	}

	missions := make([]MissionStatus, 0, len(coin.ConfigurableKinds))
	for _, kind := range coin.ConfigurableKinds {
		ec, ok := e.cfg.Event(kind)
		if !ok {
			continue
		}
		label := ec.Label
		if label == "" {
			label = kind.Label()
		}
		n := counts[kind]
		missions = append(missions, MissionStatus{
			Kind:      kind,
			Label:     label,
			Link:      ec.Link,
			Reward:    ec.Reward,
			Repeat:    ec.Repeat,
			Count:     n,
			Completed: n >= ec.Repeat,
		})
	}
	return missions, nil
}

type CheckinDay struct {
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Day         int        `json:"day"`
	Reward      int64      `json:"reward"`
	Completed   bool       `json:"completed"`
	Active      bool       `json:"active"`
}

type CheckinSchedule struct {
	LastCheckin   *time.Time   `json:"last_checkin,omitempty"`
	Days          []CheckinDay `json:"days"`
	CurrentStep   int          `json:"current_step"`
	CurrentReward int64        `json:"current_reward"`
	NextReward    int64        `json:"next_reward"`
	CanCheckIn    bool         `json:"can_check_in"`
	Complete      bool         `json:"complete"`
}

// CheckinStatus renders the 7-day check-in streak. A day counts as done when
// its latest check-in, or the following day's, happened since the start of
// yesterday; a streak broken for longer starts over from day 1.
func (e *Engine) CheckinStatus(ctx context.Context, userID string) (CheckinSchedule, error) {
	events, err := e.store.ListEvents(ctx, userID)
	if err != nil {
		return CheckinSchedule{}, fmt.Errorf("failed to list events of %s: %w", userID, err)
	}

	latest := make(map[int]time.Time, coin.CheckinDays)
	for _, ev := range events {
		day, ok := ev.Kind.CheckinDay()
		if !ok {
			continue
		}
		if t, seen := latest[day]; !seen || ev.CreatedAt.After(t) {
			latest[day] = ev.CreatedAt
		}
	}

	now := e.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	recent := func(day int) bool {
		t, ok := latest[day]
		return ok && t.After(yesterday)
	}

	global := e.cfg.Global()
	schedule := CheckinSchedule{Days: make([]CheckinDay, 0, coin.CheckinDays)}
	for day := 1; day <= coin.CheckinDays; day++ {
		d := CheckinDay{
			Day:       day,
			Reward:    global.CheckinReward(day),
			Completed: recent(day) || (day < coin.CheckinDays && recent(day+1)),
		}
		if recent(day) {
			t := latest[day]
			d.CompletedAt = &t
		}
		if !d.Completed {
			d.Active = day == 1 || recent(day-1)
		}
		if d.Active {
			schedule.CurrentStep = day
			schedule.CurrentReward = d.Reward
			schedule.NextReward = global.CheckinReward(day + 1)
		}
		schedule.Days = append(schedule.Days, d)
	}

	schedule.Complete = recent(coin.CheckinDays)
	if prev := schedule.CurrentStep - 1; prev >= 1 {
		if t, ok := latest[prev]; ok {
			schedule.LastCheckin = &t
		}
	}
	schedule.CanCheckIn = !schedule.Complete && schedule.CurrentStep > 0 &&
		(schedule.LastCheckin == nil || schedule.LastCheckin.Before(today))
	return schedule, nil
}
