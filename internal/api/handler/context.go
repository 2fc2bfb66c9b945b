package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secbank/auth-gateway/internal/api/middleware"
	"github.com/secbank/auth-gateway/internal/core/domain"
)

// currentPrincipal extracts the principal bound by the Session
// middleware. Handlers behind the auth gate call this as a fast-fail
// check; a missing principal means the route was wired without the
// middleware and must not proceed.
func currentPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return principal, nil
}
