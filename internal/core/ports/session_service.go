package ports

import (
	"context"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

// SessionService manages the session lifecycle. The cookie value handed
// out by Issue is a signed envelope around the opaque token; Resolve
// and Destroy accept that same envelope.
type SessionService interface {
	// Issue creates a session for the principal and returns the signed
	// cookie value to set on the response.
	Issue(ctx context.Context, principal domain.Principal) (cookieValue string, session *domain.Session, err error)

	// Resolve maps a cookie value back to its principal. Missing,
	// malformed, forged, unknown, and expired sessions all return
	// domain.ErrNoSession; none of these are infrastructure errors.
	Resolve(ctx context.Context, cookieValue string) (*domain.Principal, error)

	// Destroy removes the session behind the cookie value. Destroying
	// an absent or unreadable session is not an error.
	Destroy(ctx context.Context, cookieValue string) error
}
