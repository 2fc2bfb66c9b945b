package ports

import (
	"context"
	"time"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

// SessionStore is a TTL-capable key-value store for session records,
// keyed by the opaque token. Get returns domain.ErrNoSession for
// unknown tokens; Delete is idempotent.
type SessionStore interface {
	Put(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// RateLimitCounter tracks per-client request counts inside a fixed
// window. Incr must be atomic under concurrent requests; the first
// increment of a window arms its expiry.
type RateLimitCounter interface {
	Incr(ctx context.Context, clientID string, window time.Duration) (count int64, resetIn time.Duration, err error)
}
