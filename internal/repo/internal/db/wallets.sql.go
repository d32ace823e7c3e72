package db

import "context"

const addToWallet = `-- name: AddToWallet :exec
INSERT INTO wallets (id_user, balance, earned, spent, expired)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id_user) DO UPDATE
SET balance = wallets.balance + EXCLUDED.balance,
    earned  = wallets.earned + EXCLUDED.earned,
    spent   = wallets.spent + EXCLUDED.spent,
    expired = wallets.expired + EXCLUDED.expired
`

// AddToWallet increments the counters in place so concurrent writers never
// overwrite each other.
func (q *Queries) AddToWallet(ctx context.Context, arg Wallet) error {
	_, err := q.db.Exec(ctx, addToWallet,
		arg.IDUser,
		arg.Balance,
		arg.Earned,
		arg.Spent,
		arg.Expired,
	)
	return err
}

const getWallet = `-- name: GetWallet :one
SELECT id_user, balance, earned, spent, expired
FROM wallets
WHERE id_user = $1
`

func (q *Queries) GetWallet(ctx context.Context, idUser string) (Wallet, error) {
	var w Wallet
	err := q.db.QueryRow(ctx, getWallet, idUser).Scan(
		&w.IDUser,
		&w.Balance,
		&w.Earned,
		&w.Spent,
		&w.Expired,
	)
	return w, err
}

const listWalletUsers = `-- name: ListWalletUsers :many
SELECT id_user FROM wallets ORDER BY id_user
`

func (q *Queries) ListWalletUsers(ctx context.Context) ([]string, error) {
	rows, err := q.db.Query(ctx, listWalletUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		users = append(users, id)
	}
	return users, rows.Err()
}
