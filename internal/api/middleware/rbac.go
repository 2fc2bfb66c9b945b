package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

// RequireKind restricts a route to one principal kind. It runs strictly
// after Session; a request that never passed the authentication gate is
// rejected with 401 rather than 403. New kinds only need a new
// RequireKind instance, never a change to Session.
func RequireKind(kind domain.Kind) echo.MiddlewareFunc {
	denied := kindDeniedMessage(kind)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}
			if principal.Kind != kind {
				return echo.NewHTTPError(http.StatusForbidden, denied)
			}
			return next(c)
		}
	}
}

func kindDeniedMessage(kind domain.Kind) string {
	switch kind {
	case domain.KindEmployee:
		return "Access denied. Employee role required."
	case domain.KindCustomer:
		return "Access denied. Customer access only."
	default:
		return "Access denied."
	}
}
