package dbmanager

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/talx-hub/gopher-coins/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type DBManager struct {
	log  *slog.Logger
	pool *pgxpool.Pool
	err  error
	dsn  string
}

func New(dsn string, log *slog.Logger) *DBManager {
	return &DBManager{
		log:  log,
		pool: nil,
		err:  nil,
		dsn:  dsn,
	}
}

func (m *DBManager) Connect(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	cfg, err := pgxpool.ParseConfig(m.dsn)
	if err != nil {
		m.fail(ctx, "failed to parse DSN", err)
		return m
	}
	cfg.MinConns = 1
	cfg.MaxConns = 10
	cfg.ConnConfig.Tracer = newQueryTracer(m.log)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		m.fail(ctx, "failed to init pgxpool", err)
		return m
	}

	m.pool = pool
	return m
}

func (m *DBManager) Ping(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}
	if m.pool == nil {
		m.fail(ctx, "failed to ping the DB", errors.New("not connected"))
		return m
	}
	if err := m.pool.Ping(ctx); err != nil {
		m.fail(ctx, "failed to ping the DB", err)
	}
	return m
}

// ApplyMigrations runs the embedded migrations over a dedicated connection.
func (m *DBManager) ApplyMigrations(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		m.fail(ctx, "failed to open migrations", err)
		return m
	}
	connCfg, err := pgx.ParseConfig(m.dsn)
	if err != nil {
		m.fail(ctx, "failed to parse DSN", err)
		return m
	}
	db := stdlib.OpenDB(*connCfg)
	defer func() {
		if err := db.Close(); err != nil {
			m.log.LogAttrs(ctx, slog.LevelWarn,
				"failed to close migrations connection",
				slog.Any(model.KeyLoggerError, err))
		}
	}()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		m.fail(ctx, "failed to init migrations driver", err)
		return m
	}
	mg, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		m.fail(ctx, "failed to init migrations", err)
		return m
	}
	if err = mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		m.fail(ctx, "failed to apply migrations", err)
		return m
	}

	m.log.LogAttrs(ctx, slog.LevelInfo, "migrations applied")
	return m
}

func (m *DBManager) Error() error {
	return m.err
}

func (m *DBManager) GetPool(ctx context.Context) (*pgxpool.Pool, error) {
	if m.pool == nil {
		return nil, errors.New("DB pool is not initialized")
	}
	if err := m.pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("DB is unreachable: %w", err)
	}
	return m.pool, nil
}

// CheckHealth reports whether the pool can still reach the DB.
func (m *DBManager) CheckHealth(ctx context.Context) error {
	_, err := m.GetPool(ctx)
	return err
}

func (m *DBManager) Close() {
	if m.pool == nil {
		return
	}

	m.pool.Close()
	m.log.LogAttrs(context.TODO(),
		slog.LevelInfo,
		"connection to DB closed",
	)
}

func (m *DBManager) fail(ctx context.Context, msg string, err error) {
	m.log.LogAttrs(ctx,
		slog.LevelError,
		msg,
		slog.Any(model.KeyLoggerError, err),
	)
	m.err = fmt.Errorf("%s: %w", msg, err)
}
