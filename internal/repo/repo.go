package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/talx-hub/gopher-coins/internal/model"
)

type connectionPool interface {
	Begin(context.Context) (pgx.Tx, error)
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type DB struct {
	pool connectionPool
	log  *slog.Logger
}

type txFunc[T any] func(ctx context.Context, tx connectionPool) (T, error)

// WithTX runs f in a transaction, committing only when f succeeds.
func WithTX[T any](ctx context.Context,
	pool connectionPool, log *slog.Logger, f txFunc[T],
) (T, error) {
	var zero T

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to begin TX: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.LogAttrs(ctx,
				slog.LevelError,
				"failed to rollback TX",
				slog.Any(model.KeyLoggerError, rbErr),
			)
		}
	}()

	res, err := f(ctx, tx)
	if err != nil {
		return zero, err //nolint: wrapcheck // error from wrapped function
	}

	if err = tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("failed to commit TX: %w", err)
	}
	return res, nil
}

// retryDelays are the pauses before each reattempt of a query that failed
// with a connection-class error.
var retryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// WithRetry runs dbQuery and reattempts it while Postgres reports a
// transient failure. The wait between attempts stops early when ctx is done.
func WithRetry[T any](ctx context.Context, dbQuery func() (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		res, err := dbQuery()
		if err == nil {
			return res, nil
		}
		if !isRetryableError(err) {
			return zero, fmt.Errorf("on attempt #%d error occurred: %w", attempt, err)
		}
		if attempt >= len(retryDelays) {
			return zero, fmt.Errorf("failed to reattempt query to the DB: %w", err)
		}

		timer := time.NewTimer(retryDelays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, fmt.Errorf("query retry interrupted: %w", errors.Join(err, ctx.Err()))
		case <-timer.C:
		}
	}
}

// isUniqueViolation reports a duplicate key, which the callers map to a conflict.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ConnectionException,
			pgerrcode.ConnectionDoesNotExist,
			pgerrcode.ConnectionFailure,
			pgerrcode.CannotConnectNow,
			pgerrcode.SQLClientUnableToEstablishSQLConnection,
			pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection,
			pgerrcode.TransactionResolutionUnknown,
			pgerrcode.SerializationFailure,
			pgerrcode.DeadlockDetected:
			return true
		}
	}

	return false
}
