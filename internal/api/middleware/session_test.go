package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

type stubSessionService struct {
	resolveFn func(ctx context.Context, cookieValue string) (*domain.Principal, error)
}

func (s *stubSessionService) Issue(context.Context, domain.Principal) (string, *domain.Session, error) {
	panic("not used")
}

func (s *stubSessionService) Resolve(ctx context.Context, cookieValue string) (*domain.Principal, error) {
	return s.resolveFn(ctx, cookieValue)
}

func (s *stubSessionService) Destroy(context.Context, string) error {
	return nil
}

func TestSession_ValidCookie(t *testing.T) {
	e := echo.New()
	sessions := &stubSessionService{
		resolveFn: func(_ context.Context, cookieValue string) (*domain.Principal, error) {
			if cookieValue != "signed-cookie" {
				t.Fatalf("unexpected cookie value: %q", cookieValue)
			}
			return &domain.Principal{ID: "u1", Username: "jane_doe", Kind: domain.KindCustomer}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "signed-cookie"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session("sid", sessions)(func(c echo.Context) error {
		called = true
		principal, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not bound to context")
		}
		if principal.ID != "u1" || principal.Kind != domain.KindCustomer {
			t.Fatalf("unexpected principal: %+v", principal)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSession_MissingCookie(t *testing.T) {
	e := echo.New()
	sessions := &stubSessionService{
		resolveFn: func(context.Context, string) (*domain.Principal, error) {
			t.Fatalf("resolve should not be called without a cookie")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session("sid", sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSession_UnresolvableCookie(t *testing.T) {
	e := echo.New()
	sessions := &stubSessionService{
		resolveFn: func(context.Context, string) (*domain.Principal, error) {
			return nil, domain.ErrNoSession
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "stale"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session("sid", sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
