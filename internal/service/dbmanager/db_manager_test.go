package dbmanager_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/service/dbmanager"
	"github.com/talx-hub/gopher-coins/internal/utils/pgcontainer"
)

const testDefaultTimeout = 5 * time.Second

var getDSN func() string

func TestMain(m *testing.M) {
	log := slog.Default()
	code, err := runMain(m, log)
	if err != nil {
		log.ErrorContext(context.TODO(),
			"unexpected test failure",
			slog.Any(model.KeyLoggerError, err),
		)
	}
	os.Exit(code)
}

func runMain(m *testing.M, log *slog.Logger) (int, error) {
	pg := pgcontainer.New(log)
	getDSN = func() string {
		return pg.GetDSN()
	}
	err := pg.RunContainer()
	defer pg.Close()
	if errors.Is(err, pgcontainer.ErrDockerUnavailable) {
		log.LogAttrs(context.TODO(), slog.LevelWarn,
			"skipping DB tests", slog.Any(model.KeyLoggerError, err))
		return 0, nil
	}
	if err != nil {
		return 1, fmt.Errorf("failed to run docker container: %w", err)
	}

	exitCode := m.Run()
	return exitCode, nil
}

func newManager(t *testing.T) (*dbmanager.DBManager, context.Context) {
	t.Helper()
	db := dbmanager.New(getDSN(), slog.Default())
	t.Cleanup(db.Close)

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	t.Cleanup(cancel)
	return db, ctx
}

func TestDBManager_chain(t *testing.T) {
	tests := []struct {
		name  string
		chain func(ctx context.Context, db *dbmanager.DBManager) *dbmanager.DBManager
	}{
		{"connect", func(ctx context.Context, db *dbmanager.DBManager) *dbmanager.DBManager {
			return db.Connect(ctx)
		}},
		{"connect and ping", func(ctx context.Context, db *dbmanager.DBManager) *dbmanager.DBManager {
			return db.Connect(ctx).Ping(ctx)
		}},
		{"migrations are idempotent", func(ctx context.Context, db *dbmanager.DBManager) *dbmanager.DBManager {
			return db.Connect(ctx).Ping(ctx).ApplyMigrations(ctx).ApplyMigrations(ctx)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, ctx := newManager(t)
			require.NoError(t, tt.chain(ctx, db).Error())
		})
	}
}

func TestDBManager_coinsSchema(t *testing.T) {
	db, ctx := newManager(t)
	db.Connect(ctx).ApplyMigrations(ctx)
	require.NoError(t, db.Error())
	pool, err := db.GetPool(ctx)
	require.NoError(t, err)

	for _, table := range []string{"users", "coin_events", "wallets", "orders", "order_fees"} {
		t.Run(table, func(t *testing.T) {
			var exists bool
			err := pool.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
				table).Scan(&exists)
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestDBManager_chainStopsOnError(t *testing.T) {
	db := dbmanager.New("postgres://bad host/x", slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx).Ping(ctx).ApplyMigrations(ctx)
	require.Error(t, db.Error())
	assert.Contains(t, db.Error().Error(), "failed to parse DSN")
}

func TestDBManager_GetPool(t *testing.T) {
	db, ctx := newManager(t)

	p, err := db.GetPool(ctx)
	assert.Nil(t, p)
	require.Error(t, err)
	require.Error(t, db.CheckHealth(ctx))

	db.Connect(ctx)
	require.NoError(t, db.Error())
	p, err = db.GetPool(ctx)
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.NoError(t, db.CheckHealth(ctx))
}
