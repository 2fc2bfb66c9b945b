package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimitCounter implements fixed-window request counting on Redis.
// INCR is atomic, so concurrent requests from the same client cannot
// double-spend the window; the first increment of a window arms its
// expiry.
type RateLimitCounter struct {
	client *redis.Client
}

// NewRateLimitCounter creates a RateLimitCounter wrapping the given client.
func NewRateLimitCounter(client *redis.Client) *RateLimitCounter {
	return &RateLimitCounter{client: client}
}

// Incr increments the client's counter for the current window and
// returns the running count plus the time until the window resets.
func (r *RateLimitCounter) Incr(ctx context.Context, clientID string, window time.Duration) (int64, time.Duration, error) {
	key := rateLimitKeyPrefix + clientID

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("rate limit incr: %w", err)
	}

	resetIn := ttl.Val()
	if resetIn < 0 {
		// Key has no expiry yet: this increment opened the window. If
		// two openers race, both EXPIRE calls set the same deadline.
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("rate limit expire: %w", err)
		}
		resetIn = window
	}

	return incr.Val(), resetIn, nil
}
