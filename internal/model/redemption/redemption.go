package redemption

import (
	"time"

	"github.com/talx-hub/gopher-coins/internal/model"
)

// Session identifies the browsing session a redemption is staged from.
type Session struct {
	ID string
}

// Pending is the single staged redemption of a user. A new stage from any
// session of the owner replaces it.
type Pending struct {
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
	Owner     string       `json:"owner"`
	SessionID string       `json:"session_id"`
	Amount    model.Amount `json:"amount"`
	Points    int64        `json:"points"`
}

// StagedIn reports whether p was staged by userID from sess.
func (p *Pending) StagedIn(userID string, sess Session) bool {
	return p != nil && p.Owner != "" && p.Owner == userID &&
		sess.ID != "" && p.SessionID == sess.ID
}

// Matches reports whether p is a usable redemption staged by userID from sess.
func (p *Pending) Matches(userID string, sess Session, now time.Time) bool {
	if !p.StagedIn(userID, sess) {
		return false
	}
	if !p.ExpiresAt.IsZero() && !now.Before(p.ExpiresAt) {
		return false
	}
	return p.Amount.TotalMinor() > 0
}
