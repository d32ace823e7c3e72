package coin

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type EventKind string

const (
	KindSelectCollectionPoint EventKind = "select_cp"
	KindRegister              EventKind = "register"
	KindChat                  EventKind = "chat_cp"
	KindReview                EventKind = "review"
	KindNotify                EventKind = "notify"
	KindPurchase              EventKind = "purchase"

	checkinPrefix = "checkin_day_"
)

const (
	CheckinDays   = 7
	MarkSpinWheel = "stw"
)

// ConfigurableKinds are the kinds whose reward comes from the
// configuration provider. Check-in days carry their reward in the request.
var ConfigurableKinds = []EventKind{
	KindRegister,
	KindSelectCollectionPoint,
	KindPurchase,
	KindChat,
	KindReview,
	KindNotify,
}

var labels = map[EventKind]string{
	KindSelectCollectionPoint: "Select Collection Point",
	KindRegister:              "Register",
	KindPurchase:              "Purchase Products",
	KindChat:                  "Chat with Collection Point Host",
	KindReview:                "Leave a Review",
	KindNotify:                "Turn On Notification",
}

func CheckinKind(day int) EventKind {
	return EventKind(checkinPrefix + strconv.Itoa(day))
}

func (k EventKind) IsCheckin() bool {
	_, ok := k.CheckinDay()
	return ok
}

func (k EventKind) CheckinDay() (int, bool) {
	s, found := strings.CutPrefix(string(k), checkinPrefix)
	if !found {
		return 0, false
	}
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > CheckinDays {
		return 0, false
	}
	return day, true
}

func (k EventKind) IsValid() bool {
	_, ok := labels[k]
	return ok || k.IsCheckin()
}

func (k EventKind) Label() string {
	if l, ok := labels[k]; ok {
		return l
	}
	if day, ok := k.CheckinDay(); ok {
		return fmt.Sprintf("Checkin Day %d", day)
	}
	return string(k)
}

func ParseKind(s string) (EventKind, error) {
	k := EventKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown coin event kind %q", s)
	}
	return k, nil
}

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

type SpecialMark struct {
	Date  time.Time `json:"date"`
	Type  string    `json:"type"`
	Value int64     `json:"value"`
}

type Event struct {
	CreatedAt    time.Time     `json:"created_at"`
	ExpiresAt    time.Time     `json:"expiration_date"`
	SpendAt      *time.Time    `json:"spend_date,omitempty"`
	UserID       string        `json:"user_id"`
	Kind         EventKind     `json:"event_kind"`
	Status       Status        `json:"status"`
	SpecialMarks []SpecialMark `json:"special_marks,omitempty"`
	ID           int64         `json:"id"`
	Value        int64         `json:"value"`
	Balance      int64         `json:"balance"`
	Spend        int64         `json:"spend"`
	Expired      int64         `json:"expired"`
}

// New builds an active event worth value points created at now.
func New(userID string, kind EventKind, value int64, now time.Time, expiryDays int) Event {
	return Event{
		UserID:    userID,
		Kind:      kind,
		Value:     value,
		Balance:   value,
		Status:    StatusActive,
		CreatedAt: now,
		ExpiresAt: now.AddDate(0, 0, expiryDays),
	}
}

// IsExpired is the single expiry predicate for every read and write path.
func IsExpired(ev *Event, now time.Time) bool {
	return ev.Status == StatusExpired || !now.Before(ev.ExpiresAt)
}

// Spendable reports whether the event still holds points that may be drained.
func Spendable(ev *Event, now time.Time) bool {
	return ev.Balance > 0 && !IsExpired(ev, now)
}
