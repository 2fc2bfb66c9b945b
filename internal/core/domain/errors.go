package domain

import (
	"errors"
	"strings"
)

var (
	// ErrUserExists covers both the pre-insert conflict check and a
	// duplicate-key failure at write time; two concurrent signups with
	// the same identifiers must collapse to the same outcome.
	ErrUserExists = errors.New("user with this username, ID number, or account number already exists")

	// ErrInvalidCredentials is returned for an unknown identifier and
	// for a wrong password alike. Keeping the two indistinguishable is
	// deliberate anti-enumeration behaviour, not a bug.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoSession means the request carried no resolvable session:
	// missing cookie, bad signature, unknown token, or expired record.
	ErrNoSession = errors.New("not authenticated")

	// ErrForbidden means the session is valid but the principal kind is
	// not allowed on the route.
	ErrForbidden = errors.New("access denied")

	ErrPaymentNotFound = errors.New("payment not found")
	ErrUserNotFound    = errors.New("user not found")
)

// ValidationError aggregates every failing field rule for a request.
// Handlers return the complete ordered list in one round trip instead
// of failing fast on the first rule.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
