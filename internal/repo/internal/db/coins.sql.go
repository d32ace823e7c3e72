package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const coinEventColumns = `id_coin, id_user, event_kind, value, balance, spend, expired,
       status, created_at, expires_at, spend_date, special_marks`

const lockUserKind = `-- name: LockUserKind :exec
SELECT pg_advisory_xact_lock(hashtext($1))
`

// LockUserKind serializes earnings of one (user, kind) pair until the TX ends.
func (q *Queries) LockUserKind(ctx context.Context, key string) error {
	_, err := q.db.Exec(ctx, lockUserKind, key)
	return err
}

const countEvents = `-- name: CountEvents :one
SELECT count(*) FROM coin_events
WHERE id_user = $1 AND event_kind = $2
`

func (q *Queries) CountEvents(ctx context.Context, idUser, eventKind string) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countEvents, idUser, eventKind).Scan(&n)
	return n, err
}

const countEventsByKind = `-- name: CountEventsByKind :many
SELECT event_kind, count(*) FROM coin_events
WHERE id_user = $1
GROUP BY event_kind
`

func (q *Queries) CountEventsByKind(ctx context.Context, idUser string) (map[string]int64, error) {
	rows, err := q.db.Query(ctx, countEventsByKind, idUser)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			kind string
			n    int64
		)
		if err = rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

const insertEvent = `-- name: InsertEvent :one
INSERT INTO coin_events (id_user, event_kind, value, balance, spend, expired,
                         status, created_at, expires_at, special_marks)
VALUES ($1, $2, $3, $4, 0, 0, $5, $6, $7, $8::jsonb)
RETURNING id_coin
`

type InsertEventParams struct {
	CreatedAt    time.Time
	ExpiresAt    time.Time
	IDUser       string
	EventKind    string
	Status       string
	SpecialMarks string
	Value        int64
}

func (q *Queries) InsertEvent(ctx context.Context, arg InsertEventParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, insertEvent,
		arg.IDUser,
		arg.EventKind,
		arg.Value,
		arg.Value,
		arg.Status,
		arg.CreatedAt,
		arg.ExpiresAt,
		arg.SpecialMarks,
	).Scan(&id)
	return id, err
}

const listEvents = `-- name: ListEvents :many
SELECT ` + coinEventColumns + `
FROM coin_events
WHERE id_user = $1
ORDER BY created_at, id_coin
`

func (q *Queries) ListEvents(ctx context.Context, idUser string) ([]CoinEvent, error) {
	return q.listEvents(ctx, listEvents, idUser)
}

const listActiveEvents = `-- name: ListActiveEvents :many
SELECT ` + coinEventColumns + `
FROM coin_events
WHERE id_user = $1 AND status = 'active' AND balance <> 0
ORDER BY created_at, id_coin
`

func (q *Queries) ListActiveEvents(ctx context.Context, idUser string) ([]CoinEvent, error) {
	return q.listEvents(ctx, listActiveEvents, idUser)
}

func (q *Queries) listEvents(ctx context.Context, query, idUser string) ([]CoinEvent, error) {
	rows, err := q.db.Query(ctx, query, idUser)
	if err != nil {
		return nil, err
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (CoinEvent, error) {
		var e CoinEvent
		err := row.Scan(
			&e.IDCoin,
			&e.IDUser,
			&e.EventKind,
			&e.Value,
			&e.Balance,
			&e.Spend,
			&e.Expired,
			&e.Status,
			&e.CreatedAt,
			&e.ExpiresAt,
			&e.SpendDate,
			&e.SpecialMarks,
		)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan coin events: %w", err)
	}
	return events, nil
}

const drainEvent = `-- name: DrainEvent :execrows
UPDATE coin_events
SET balance       = balance - $3,
    spend         = spend + $3,
    spend_date    = $4,
    special_marks = special_marks || $5::jsonb
WHERE id_coin = $1 AND id_user = $2 AND status = 'active' AND balance >= $3
`

type DrainEventParams struct {
	SpendDate    time.Time
	IDUser       string
	SpecialMarks string
	IDCoin       int64
	Points       int64
}

func (q *Queries) DrainEvent(ctx context.Context, arg DrainEventParams) (int64, error) {
	tag, err := q.db.Exec(ctx, drainEvent,
		arg.IDCoin,
		arg.IDUser,
		arg.Points,
		arg.SpendDate,
		arg.SpecialMarks,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const expireEvent = `-- name: ExpireEvent :one
UPDATE coin_events
SET status = 'expired', expired = balance
WHERE id_coin = $1 AND id_user = $2 AND status = 'active'
RETURNING expired
`

// ExpireEvent returns pgx.ErrNoRows when the event is already expired.
func (q *Queries) ExpireEvent(ctx context.Context, idCoin int64, idUser string) (int64, error) {
	var expired int64
	err := q.db.QueryRow(ctx, expireEvent, idCoin, idUser).Scan(&expired)
	return expired, err
}
