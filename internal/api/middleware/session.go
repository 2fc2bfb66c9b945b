package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secbank/auth-gateway/internal/api/metrics"
	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

const principalContextKey = "principal"

// Session is the sole authentication gate. It resolves the signed
// session cookie to a principal and binds it to the request context, or
// rejects with 401. It does not distinguish principal kind; that is
// RequireKind's job.
func Session(cookieName string, sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				metrics.SessionResolutions.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			principal, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrNoSession) {
					metrics.SessionResolutions.WithLabelValues("rejected").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
				}
				// Store failure: let the central handler turn it into a 500.
				return err
			}

			metrics.SessionResolutions.WithLabelValues("ok").Inc()
			WithPrincipal(c, *principal)
			return next(c)
		}
	}
}

// WithPrincipal binds a principal to the request context. Session is
// the only production caller; handler tests use it to simulate an
// authenticated request. Together with PrincipalFrom it is the sole
// owner of the context key.
func WithPrincipal(c echo.Context, principal domain.Principal) {
	c.Set(principalContextKey, principal)
}

// PrincipalFrom returns the principal bound by WithPrincipal. The
// second return is false when the Session middleware did not run or did
// not authenticate the request.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(domain.Principal)
	return principal, ok
}
