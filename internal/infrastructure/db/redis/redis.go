package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultConnectTimeout = 5 * time.Second

// Config holds the settings for the gateway's Redis connection, which
// backs both the session store and the rate-limit counters.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds dialing and the startup ping. Zero selects the
	// default.
	Timeout time.Duration
}

// Connect builds a Redis client and verifies the link with a ping.
// Sessions cannot be issued or resolved without Redis, so a dead link
// is a startup failure, not something to limp along with.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
