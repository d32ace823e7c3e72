package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/user"
	"github.com/talx-hub/gopher-coins/internal/repo/internal/db"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
)

type UserRepository struct {
	DB
}

func NewUserRepository(pool connectionPool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// Create stores u and fills in its ID. A taken login yields ErrConflict.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if u.LoginHash == "" || u.PasswordHash == "" {
		return errors.New("failed to create user: login and password hashes must be set")
	}

	createLogic := func() (string, error) {
		id, err := db.New(r.pool).InsertUser(ctx, u.LoginHash, u.PasswordHash)
		if isUniqueViolation(err) {
			return "", fmt.Errorf("login is taken: %w", serviceerrs.ErrConflict)
		}
		if err != nil {
			return "", fmt.Errorf("failed to insert user: %w", err)
		}
		return id, nil
	}

	id, err := WithRetry[string](ctx, createLogic)
	if err != nil {
		return err //nolint: wrapcheck // error from wrapped function
	}
	u.ID = id
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, loginHash string) bool {
	existsLogic := func() (bool, error) {
		exists, err := db.New(r.pool).Exists(ctx, loginHash)
		if err != nil {
			r.log.LogAttrs(ctx,
				slog.LevelError,
				"failed to check if loginHash exists in DB",
				slog.Any(model.KeyLoggerError, err),
			)
			return false, nil
		}
		return exists, nil
	}

	exists, _ := WithRetry[bool](ctx, existsLogic)
	return exists
}

func (r *UserRepository) FindByLogin(ctx context.Context, loginHash string,
) (user.User, error) {
	return r.find(ctx, db.New(r.pool).FindUserByLogin, loginHash)
}

func (r *UserRepository) FindByID(ctx context.Context, id string,
) (user.User, error) {
	return r.find(ctx, db.New(r.pool).FindUserByID, id)
}

// SetCollectionPoint records the pickup point the user selected.
func (r *UserRepository) SetCollectionPoint(ctx context.Context, userID, point string) error {
	setLogic := func() (struct{}, error) {
		n, err := db.New(r.pool).SetCollectionPoint(ctx, userID, point)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to set collection point of %s: %w", userID, err)
		}
		if n == 0 {
			return struct{}{}, fmt.Errorf("user %s: %w", userID, serviceerrs.ErrNotFound)
		}
		return struct{}{}, nil
	}

	_, err := WithRetry[struct{}](ctx, setLogic)
	return err //nolint: wrapcheck // error from wrapped function
}

func (r *UserRepository) find(ctx context.Context,
	fn func(context.Context, string) (db.User, error),
	key string,
) (user.User, error) {
	findLogic := func() (user.User, error) {
		u, err := fn(ctx, key)
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, fmt.Errorf("user: %w", serviceerrs.ErrNotFound)
		}
		if err != nil {
			return user.User{}, fmt.Errorf("failed to find user in DB: %w", err)
		}
		return user.User{
			ID:                u.IDUser,
			LoginHash:         u.HashLogin,
			PasswordHash:      u.HashPassword,
			CollectionPointID: u.CollectionPoint,
		}, nil
	}

	return WithRetry[user.User](ctx, findLogic) //nolint: wrapcheck // error from wrapped function
}
