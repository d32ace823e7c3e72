package repo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-coins/internal/service/dbmanager"
)

const (
	testDefaultTimeout = 5 * time.Second
	fixturesDir        = "fixtures"
)

var (
	getDSN       func() string
	getDBManager func() *dbmanager.DBManager
)

// initGetDBManager migrates the test database once for the whole package.
func initGetDBManager(log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db := dbmanager.New(getDSN(), log).
		Connect(ctx).
		Ping(ctx).
		ApplyMigrations(ctx)
	if err := db.Error(); err != nil {
		return fmt.Errorf("failed to prepare coins test DB: %w", err)
	}

	getDBManager = func() *dbmanager.DBManager {
		return db
	}
	return nil
}

// loadFixture runs the statements of a fixtures/ file in one transaction,
// so a broken fixture leaves no partial ledger behind.
func loadFixture(ctx context.Context, t *testing.T, pool *pgxpool.Pool, name string) {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(fixturesDir, name))
	require.NoError(t, err)

	_, err = WithTX[struct{}](ctx, pool, slog.Default(),
		func(ctx context.Context, tx connectionPool) (struct{}, error) {
			for _, stmt := range strings.Split(string(content), ";") {
				if stmt = strings.TrimSpace(stmt); stmt == "" {
					continue
				}
				if _, err := tx.Exec(ctx, stmt); err != nil {
					return struct{}{}, fmt.Errorf("fixture %s, statement [%s]: %w", name, stmt, err)
				}
			}
			return struct{}{}, nil
		})
	require.NoError(t, err)
}

// setupRepo builds a repository over the shared test pool. The returned
// context is cancelled when the test ends.
func setupRepo[T any](t *testing.T,
	repoConstructor func(pool connectionPool, log *slog.Logger) T,
) (T, context.Context, *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	t.Cleanup(cancel)
	pool, err := getDBManager().GetPool(ctx)
	require.NoError(t, err)
	return repoConstructor(pool, slog.Default()), ctx, pool
}

// newUserID keeps tests independent while they share one database.
func newUserID() string {
	return "u-" + uuid.NewString()
}
