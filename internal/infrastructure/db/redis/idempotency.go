package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyGuard remembers request keys so a replayed checkout is refused.
// Key format: idempotency:<scope>:<key>
type IdempotencyGuard struct {
	client *redis.Client
	scope  string
	ttl    time.Duration
}

// NewIdempotencyGuard creates a guard whose keys live under the given scope.
func NewIdempotencyGuard(client *redis.Client, scope string) *IdempotencyGuard {
	return &IdempotencyGuard{client: client, scope: scope, ttl: idempotencyTTL}
}

// Acquire claims the key. It returns false when the key was already claimed
// within the TTL window.
func (g *IdempotencyGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(key), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency acquire: %w", err)
	}
	return ok, nil
}

// Release drops a claimed key so the request can be retried, used when the
// guarded operation failed before producing a side effect.
func (g *IdempotencyGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, g.key(key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (g *IdempotencyGuard) key(k string) string {
	return fmt.Sprintf("idempotency:%s:%s", g.scope, k)
}
