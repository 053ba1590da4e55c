package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skillsaathi/skill-swap/internal/core/ports"
)

const DefaultIdempotencyTTL = 24 * time.Hour

// reservedMarker holds a key while its proposal is being created. Swap ids
// are never empty, so the marker cannot collide with one.
const reservedMarker = "-"

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// IdempotencyStore maps a proposal's Idempotency-Key to the swap it created.
// Key format: swap:idem:<actor_id>:<key>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A non-positive ttl uses DefaultIdempotencyTTL.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Lookup returns the swap id remembered for key. A reserved key whose
// proposal is still running is found with an empty id.
func (s *IdempotencyStore) Lookup(ctx context.Context, actorID, key string) (string, bool, error) {
	id, err := s.client.Get(ctx, s.key(actorID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	if id == reservedMarker {
		return "", true, nil
	}
	return id, true, nil
}

// Reserve claims key with SETNX; only one caller across all instances wins.
func (s *IdempotencyStore) Reserve(ctx context.Context, actorID, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(actorID, key), reservedMarker, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency reserve: %w", err)
	}
	return ok, nil
}

// Remember replaces the reservation with swapID and restarts the TTL.
func (s *IdempotencyStore) Remember(ctx context.Context, actorID, key, swapID string) error {
	if err := s.client.Set(ctx, s.key(actorID, key), swapID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, actorID, key string) error {
	if err := s.client.Del(ctx, s.key(actorID, key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(actorID, key string) string {
	return fmt.Sprintf("swap:idem:%s:%s", actorID, key)
}
