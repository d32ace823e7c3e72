// Package pgcontainer runs throwaway Postgres and Redis containers for tests.
package pgcontainer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/talx-hub/gopher-coins/internal/model"
)

const (
	pgUser     = "coins"
	pgPassword = "coins"
	pgDB       = "coins"

	containerExpiry = 120
	maxWait         = 60 * time.Second
)

// ErrDockerUnavailable is returned when no docker daemon answers the ping.
var ErrDockerUnavailable = errors.New("docker is unavailable")

type Container struct {
	log      *slog.Logger
	pool     *dockertest.Pool
	resource *dockertest.Resource
	dsn      string
	addr     string
}

func New(log *slog.Logger) *Container {
	return &Container{log: log}
}

func (c *Container) connect() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDockerUnavailable, err)
	}
	if err = pool.Client.Ping(); err != nil {
		return fmt.Errorf("%w: %w", ErrDockerUnavailable, err)
	}
	pool.MaxWait = maxWait
	c.pool = pool
	return nil
}

// RunContainer starts postgres and blocks until it accepts connections.
func (c *Container) RunContainer() error {
	if err := c.connect(); err != nil {
		return err
	}

	resource, err := c.pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "17-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDB,
			"listen_addresses='*'",
		},
	}, autoRemove)
	if err != nil {
		return fmt.Errorf("failed to start postgres: %w", err)
	}
	c.resource = resource
	c.expire()

	hostPort := net.JoinHostPort("localhost", resource.GetPort("5432/tcp"))
	c.dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		pgUser, pgPassword, hostPort, pgDB)

	err = c.pool.Retry(func() error {
		db, err := sql.Open("pgx", c.dsn)
		if err != nil {
			return fmt.Errorf("failed to open DB: %w", err)
		}
		defer func() { _ = db.Close() }()
		return db.Ping() //nolint: wrapcheck // retried by dockertest
	})
	if err != nil {
		return fmt.Errorf("postgres is not ready: %w", err)
	}
	return nil
}

// RunRedis starts redis and blocks until it answers PING.
func (c *Container) RunRedis() error {
	if err := c.connect(); err != nil {
		return err
	}

	resource, err := c.pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, autoRemove)
	if err != nil {
		return fmt.Errorf("failed to start redis: %w", err)
	}
	c.resource = resource
	c.expire()

	c.addr = net.JoinHostPort("localhost", resource.GetPort("6379/tcp"))
	err = c.pool.Retry(func() error {
		client := redis.NewClient(&redis.Options{Addr: c.addr})
		defer func() { _ = client.Close() }()
		return client.Ping(context.Background()).Err() //nolint: wrapcheck // retried by dockertest
	})
	if err != nil {
		return fmt.Errorf("redis is not ready: %w", err)
	}
	return nil
}

func (c *Container) GetDSN() string {
	return c.dsn
}

func (c *Container) GetAddr() string {
	return c.addr
}

func (c *Container) Close() {
	if c.pool == nil || c.resource == nil {
		return
	}
	if err := c.pool.Purge(c.resource); err != nil {
		c.log.LogAttrs(context.TODO(),
			slog.LevelError,
			"failed to purge container",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func (c *Container) expire() {
	if err := c.resource.Expire(containerExpiry); err != nil {
		c.log.LogAttrs(context.TODO(),
			slog.LevelWarn,
			"failed to set container expiry",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func autoRemove(config *docker.HostConfig) {
	config.AutoRemove = true
	config.RestartPolicy = docker.RestartPolicy{Name: "no"}
}
