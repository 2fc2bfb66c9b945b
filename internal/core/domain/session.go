package domain

import "time"

// Session correlates an opaque token with a Principal snapshot. The
// record lives server-side; clients only ever see the signed cookie
// envelope that carries the token.
type Session struct {
	Token     string    `json:"token"`
	Principal Principal `json:"principal"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its fixed-window expiry.
// Expiry is checked at resolve time so a record that outlived its store
// TTL sweep still reads as absent.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
