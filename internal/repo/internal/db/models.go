package db

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type CoinEvent struct {
	CreatedAt    time.Time
	ExpiresAt    time.Time
	SpendDate    pgtype.Timestamptz
	IDUser       string
	EventKind    string
	Status       string
	SpecialMarks []byte
	IDCoin       int64
	Value        int64
	Balance      int64
	Spend        int64
	Expired      int64
}

type Wallet struct {
	IDUser  string
	Balance int64
	Earned  int64
	Spent   int64
	Expired int64
}

type User struct {
	IDUser          string
	HashLogin       string
	HashPassword    string
	CollectionPoint string
}

type OrderFee struct {
	PlacedAt  time.Time
	NameOrder string
	NameFee   string
	Subtotal  pgtype.Numeric
	Total     pgtype.Numeric
}
