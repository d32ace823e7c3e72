// Package pending keeps the staged redemption of each user, one per owner.
package pending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talx-hub/gopher-coins/internal/model/redemption"
)

const keyFormat = "{%s}:coins:pending"

func ownerKey(userID string) string {
	return fmt.Sprintf(keyFormat, userID)
}

// RedisStore keeps one JSON document per user and lets redis drop it once
// the TTL passes.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (redemption.Pending, bool, error) {
	raw, err := s.client.Get(ctx, ownerKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return redemption.Pending{}, false, nil
	}
	if err != nil {
		return redemption.Pending{}, false,
			fmt.Errorf("failed to read pending redemption of %s: %w", userID, err)
	}

	var p redemption.Pending
	if err = json.Unmarshal(raw, &p); err != nil {
		return redemption.Pending{}, false,
			fmt.Errorf("failed to decode pending redemption of %s: %w", userID, err)
	}
	return p, true, nil
}

func (s *RedisStore) Set(ctx context.Context, userID string, p redemption.Pending) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode pending redemption: %w", err)
	}
	if err = s.client.Set(ctx, ownerKey(userID), raw, max(s.ttl, 0)).Err(); err != nil {
		return fmt.Errorf("failed to store pending redemption of %s: %w", userID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, ownerKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete pending redemption of %s: %w", userID, err)
	}
	return nil
}

// MemoryStore is the single-process fallback used when no redis is configured.
type MemoryStore struct {
	items map[string]redemption.Pending
	now   func() time.Time
	mu    sync.Mutex
}

func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		items: make(map[string]redemption.Pending),
		now:   now,
	}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (redemption.Pending, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[userID]
	if !ok {
		return redemption.Pending{}, false, nil
	}
	if !p.ExpiresAt.IsZero() && !s.now().Before(p.ExpiresAt) {
		delete(s.items, userID)
		return redemption.Pending{}, false, nil
	}
	return p, true, nil
}

func (s *MemoryStore) Set(_ context.Context, userID string, p redemption.Pending) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[userID] = p
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
	return nil
}
