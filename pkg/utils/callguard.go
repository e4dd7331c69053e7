package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCallGuard caps each agent at one active outbound call across desk
// instances, built on the atomic concurrency-cap scripts. The TTL frees
// the slot if a desk process dies mid-call.
type RedisCallGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCallGuard(rdb *redis.Client, ttl time.Duration) *RedisCallGuard {
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	return &RedisCallGuard{rdb: rdb, ttl: ttl}
}

func guardKey(agent string) string { return "desk:active_call:" + agent }

func (g *RedisCallGuard) Acquire(ctx context.Context, agent string) (bool, error) {
	return AcquireConcurrencyCap(ctx, g.rdb, guardKey(agent), 1, g.ttl)
}

func (g *RedisCallGuard) Release(ctx context.Context, agent string) error {
	return ReleaseConcurrencyCap(ctx, g.rdb, guardKey(agent))
}
