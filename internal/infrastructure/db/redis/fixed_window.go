package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts requests per key inside a fixed time window,
// backed by Redis INCR + EXPIRE. Key format: ratelimit:<key>.
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window.
func NewFixedWindowLimiter(client *redis.Client, limit int64, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, limit: limit, window: window}
}

// Allow increments the counter for key and reports whether the request is
// within the limit. INCR and EXPIRE run in a pipeline so a fresh key cannot
// outlive its window.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rkey := "ratelimit:" + key

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, rkey)
	pipe.Expire(ctx, rkey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return incr.Val() <= l.limit, nil
}
