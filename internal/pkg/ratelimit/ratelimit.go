// Package ratelimit provides a small request throttling abstraction.
//
// Use cases depend on the Limiter interface so throttling policy can be
// swapped or faked in tests. The Redis implementation uses a fixed window
// counter keyed by caller-provided identity (for example an email address).
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether an action identified by key may proceed.
type Limiter interface {
	// Allow reports whether the action is within its rate budget. Calling
	// Allow consumes one unit of the budget.
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisFixedWindow is a Limiter backed by a Redis fixed-window counter.
type RedisFixedWindow struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisFixedWindow constructs a fixed-window limiter allowing limit
// actions per window. Keys are namespaced with prefix.
func NewRedisFixedWindow(client *redis.Client, prefix string, limit int64, window time.Duration) *RedisFixedWindow {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	return &RedisFixedWindow{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow increments the window counter for key and reports whether the
// count is still within the limit. The window TTL is set on first use.
func (r *RedisFixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", r.prefix, key)

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, r.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= r.limit, nil
}
