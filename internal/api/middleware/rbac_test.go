package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

func bindPrincipal(c echo.Context, kind domain.Kind) {
	WithPrincipal(c, domain.Principal{ID: "p1", Username: "someone", Kind: kind})
}

func TestRequireKind_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	bindPrincipal(c, domain.KindCustomer)

	called := false
	handler := RequireKind(domain.KindCustomer)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireKind_ForbidsOtherKind(t *testing.T) {
	cases := []struct {
		name     string
		bound    domain.Kind
		required domain.Kind
		message  string
	}{
		{"customer on employee route", domain.KindCustomer, domain.KindEmployee, "Access denied. Employee role required."},
		{"employee on customer route", domain.KindEmployee, domain.KindCustomer, "Access denied. Customer access only."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			bindPrincipal(c, tc.bound)

			handler := RequireKind(tc.required)(func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})

			err := handler(c)
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if he.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", he.Code)
			}
			if he.Message != tc.message {
				t.Fatalf("expected %q, got %v", tc.message, he.Message)
			}
		})
	}
}

func TestRequireKind_NoPrincipal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireKind(domain.KindEmployee)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
