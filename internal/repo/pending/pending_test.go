package pending

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/redemption"
	"github.com/talx-hub/gopher-coins/internal/utils/pgcontainer"
)

var redisAddr string

func TestMain(m *testing.M) {
	log := slog.Default()
	c := pgcontainer.New(log)
	err := c.RunRedis()
	switch {
	case errors.Is(err, pgcontainer.ErrDockerUnavailable):
		log.LogAttrs(context.TODO(), slog.LevelWarn,
			"redis tests will be skipped", slog.Any(model.KeyLoggerError, err))
	case err != nil:
		log.LogAttrs(context.TODO(), slog.LevelError,
			"failed to run redis", slog.Any(model.KeyLoggerError, err))
		c.Close()
		os.Exit(1)
	default:
		redisAddr = c.GetAddr()
	}

	code := m.Run()
	c.Close()
	os.Exit(code)
}

type store interface {
	Get(context.Context, string) (redemption.Pending, bool, error)
	Set(context.Context, string, redemption.Pending) error
	Delete(context.Context, string) error
}

func testStoreContract(t *testing.T, s store) {
	t.Helper()
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	p := redemption.Pending{
		CreatedAt: created,
		ExpiresAt: created.Add(model.DefaultPendingTTL),
		Owner:     "u1",
		SessionID: "sess-1",
		Amount:    model.NewAmount(8, 0),
		Points:    8,
	}
	require.NoError(t, s.Set(ctx, "u1", p))

	got, ok, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.Owner, got.Owner)
	assert.Equal(t, p.SessionID, got.SessionID)
	assert.Equal(t, p.Amount, got.Amount)
	assert.Equal(t, p.Points, got.Points)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))

	_, ok, err = s.Get(ctx, "u2")
	require.NoError(t, err)
	assert.False(t, ok)

	// a stage from another session of the owner replaces the first one
	p.Amount = model.NewAmount(3, 0)
	p.SessionID = "sess-2"
	require.NoError(t, s.Set(ctx, "u1", p))
	got, _, err = s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, model.NewAmount(3, 0), got.Amount)
	assert.Equal(t, "sess-2", got.SessionID)

	require.NoError(t, s.Delete(ctx, "u1"))
	require.NoError(t, s.Delete(ctx, "u1"))
	_, ok, err = s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, NewMemoryStore(nil))
}

func TestMemoryStore_dropsExpired(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "u1", redemption.Pending{
		ExpiresAt: now.Add(time.Minute),
		Owner:     "u1",
		Amount:    model.NewAmount(1, 0),
	}))
	_, ok, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, err = s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore(t *testing.T) {
	if redisAddr == "" {
		t.Skip("docker is unavailable")
	}
	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer func() { _ = client.Close() }()

	testStoreContract(t, NewRedisStore(client, time.Hour))

	ttl, err := client.TTL(context.Background(), ownerKey("ttl-check")).Result()
	require.NoError(t, err)
	assert.Less(t, ttl, time.Duration(0))

	s := NewRedisStore(client, time.Hour)
	require.NoError(t, s.Set(context.Background(), "ttl-check", redemption.Pending{Owner: "u1"}))
	ttl, err = client.TTL(context.Background(), ownerKey("ttl-check")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)
}

func TestOwnerKey(t *testing.T) {
	assert.Equal(t, "{abc}:coins:pending", ownerKey("abc"))
}
