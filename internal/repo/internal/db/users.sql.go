package db

import "context"

const insertUser = `-- name: InsertUser :one
INSERT INTO users (hash_login, hash_password)
VALUES ($1, $2)
RETURNING id_user::text
`

func (q *Queries) InsertUser(ctx context.Context, hashLogin, hashPassword string) (string, error) {
	var id string
	err := q.db.QueryRow(ctx, insertUser, hashLogin, hashPassword).Scan(&id)
	return id, err
}

const exists = `-- name: Exists :one
SELECT EXISTS (SELECT 1 FROM users WHERE hash_login = $1)
`

func (q *Queries) Exists(ctx context.Context, hashLogin string) (bool, error) {
	var ok bool
	err := q.db.QueryRow(ctx, exists, hashLogin).Scan(&ok)
	return ok, err
}

const findUserByLogin = `-- name: FindUserByLogin :one
SELECT id_user::text, hash_login, hash_password, collection_point
FROM users
WHERE hash_login = $1
`

func (q *Queries) FindUserByLogin(ctx context.Context, hashLogin string) (User, error) {
	return q.findUser(ctx, findUserByLogin, hashLogin)
}

const findUserByID = `-- name: FindUserByID :one
SELECT id_user::text, hash_login, hash_password, collection_point
FROM users
WHERE id_user::text = $1
`

func (q *Queries) FindUserByID(ctx context.Context, idUser string) (User, error) {
	return q.findUser(ctx, findUserByID, idUser)
}

func (q *Queries) findUser(ctx context.Context, query, key string) (User, error) {
	var u User
	err := q.db.QueryRow(ctx, query, key).Scan(
		&u.IDUser,
		&u.HashLogin,
		&u.HashPassword,
		&u.CollectionPoint,
	)
	return u, err
}

const setCollectionPoint = `-- name: SetCollectionPoint :execrows
UPDATE users SET collection_point = $2
WHERE id_user::text = $1
`

func (q *Queries) SetCollectionPoint(ctx context.Context, idUser, point string) (int64, error) {
	tag, err := q.db.Exec(ctx, setCollectionPoint, idUser, point)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
