package ledger

import "time"

type EntryType string

const (
	TypeEarn  EntryType = "earn"
	TypeSpend EntryType = "spend"
)

type Entry struct {
	Date    time.Time `json:"date"`
	Type    EntryType `json:"type"`
	Name    string    `json:"name"`
	Subname string    `json:"subname"`
	OrderID string    `json:"order_id,omitempty"`
	CoinID  int64     `json:"coin_id,omitempty"`
	Value   int64     `json:"value"`
}
