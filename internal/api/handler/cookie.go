package handler

import (
	"net/http"
	"time"
)

// CookieConfig describes how the session cookie is written. The cookie
// is always HTTP-only and same-site strict; only the Secure flag and
// name vary by deployment.
type CookieConfig struct {
	Name   string
	Secure bool
}

// session builds the Set-Cookie carrying the signed session envelope.
func (cc CookieConfig) session(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     cc.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   cc.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// expired builds the Set-Cookie that removes the session cookie on
// logout.
func (cc CookieConfig) expired() *http.Cookie {
	return &http.Cookie{
		Name:     cc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cc.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
