package order

import (
	"time"

	"github.com/talx-hub/gopher-coins/internal/model"
)

type Fee struct {
	Name  string       `json:"name"`
	Total model.Amount `json:"total"`
}

type Order struct {
	PlacedAt time.Time    `json:"placed_at"`
	ID       string       `json:"id"`
	UserID   string       `json:"user_id"`
	Subtotal model.Amount `json:"subtotal"`
	Fees     []Fee        `json:"fees,omitempty"`
}

// RedeemedFee returns the total of the redeemed tokens fee line, if any.
func (o *Order) RedeemedFee() (model.Amount, bool) {
	for _, f := range o.Fees {
		if f.Name == model.FeeRedeemedTokens && !f.Total.IsZero() {
			return f.Total, true
		}
	}
	return model.Amount{}, false
}
