package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertOrder = `-- name: InsertOrder :execrows
INSERT INTO orders (name_order, id_user, placed_at, subtotal)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name_order) DO NOTHING
`

type InsertOrderParams struct {
	PlacedAt  time.Time
	NameOrder string
	IDUser    string
	Subtotal  pgtype.Numeric
}

func (q *Queries) InsertOrder(ctx context.Context, arg InsertOrderParams) (int64, error) {
	tag, err := q.db.Exec(ctx, insertOrder,
		arg.NameOrder,
		arg.IDUser,
		arg.PlacedAt,
		arg.Subtotal,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const insertOrderFee = `-- name: InsertOrderFee :exec
INSERT INTO order_fees (name_order, name_fee, total)
VALUES ($1, $2, $3)
`

func (q *Queries) InsertOrderFee(ctx context.Context,
	nameOrder, nameFee string, total pgtype.Numeric,
) error {
	_, err := q.db.Exec(ctx, insertOrderFee, nameOrder, nameFee, total)
	return err
}

const findOrderOwner = `-- name: FindOrderOwner :one
SELECT id_user FROM orders WHERE name_order = $1
`

func (q *Queries) FindOrderOwner(ctx context.Context, nameOrder string) (string, error) {
	var userID string
	err := q.db.QueryRow(ctx, findOrderOwner, nameOrder).Scan(&userID)
	return userID, err
}

const listOrderFees = `-- name: ListOrderFees :many
SELECT o.placed_at, o.name_order, f.name_fee, o.subtotal, f.total
FROM orders o
JOIN order_fees f ON f.name_order = o.name_order
WHERE o.id_user = $1 AND f.name_fee = $2 AND f.total <> 0
ORDER BY o.placed_at, o.name_order
`

func (q *Queries) ListOrderFees(ctx context.Context, idUser, nameFee string) ([]OrderFee, error) {
	rows, err := q.db.Query(ctx, listOrderFees, idUser, nameFee)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []OrderFee
	for rows.Next() {
		var f OrderFee
		if err = rows.Scan(
			&f.PlacedAt,
			&f.NameOrder,
			&f.NameFee,
			&f.Subtotal,
			&f.Total,
		); err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}
