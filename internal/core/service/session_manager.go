package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

const (
	defaultSessionTTL = 7 * 24 * time.Hour
	tokenBytes        = 32
)

// SessionManager implements ports.SessionService. The opaque store key
// never travels to the client directly: the cookie value is an
// HS256-signed envelope whose sid claim carries the token, so forged or
// tampered cookies are rejected before any store lookup.
type SessionManager struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a SessionManager with a fixed-window TTL.
// A non-positive ttl falls back to seven days.
func NewSessionManager(store ports.SessionStore, secret string, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionManager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *SessionManager) Issue(ctx context.Context, principal domain.Principal) (string, *domain.Session, error) {
	token, err := newToken()
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	now := m.now().UTC()
	session := &domain.Session{
		Token:     token,
		Principal: principal,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Put(ctx, session); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	cookie, err := m.sign(session)
	if err != nil {
		return "", nil, fmt.Errorf("sign session cookie: %w", err)
	}
	return cookie, session, nil
}

func (m *SessionManager) Resolve(ctx context.Context, cookieValue string) (*domain.Principal, error) {
	token, ok := m.verify(cookieValue)
	if !ok {
		return nil, domain.ErrNoSession
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	// The store TTL usually sweeps expired records, but expiry is still
	// enforced here so a lingering record reads as absent.
	if session.Expired(m.now()) {
		_ = m.store.Delete(ctx, token)
		return nil, domain.ErrNoSession
	}

	principal := session.Principal
	return &principal, nil
}

func (m *SessionManager) Destroy(ctx context.Context, cookieValue string) error {
	token, ok := m.verify(cookieValue)
	if !ok {
		// An unreadable cookie has no session to destroy.
		return nil
	}
	return m.store.Delete(ctx, token)
}

// sign wraps the opaque token in an HS256-signed envelope whose expiry
// mirrors the session record.
func (m *SessionManager) sign(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid": session.Token,
		"exp": session.ExpiresAt.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// verify checks the envelope signature and expiry, returning the opaque
// token it carries. Any parse or validation failure reads as "no
// session" to the caller.
func (m *SessionManager) verify(cookieValue string) (string, bool) {
	if cookieValue == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookieValue, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !tkn.Valid {
		return "", false
	}

	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
