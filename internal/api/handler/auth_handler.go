package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secbank/auth-gateway/internal/api/metrics"
	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

// AuthHandler serves the customer authentication surface.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionService
	cookie   CookieConfig
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookie: cookie}
}

type signupRequest struct {
	FullName      string `json:"fullName"`
	IDNumber      string `json:"idNumber"`
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

type loginRequest struct {
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

type authResponse struct {
	Message string                 `json:"message"`
	User    *domain.UserProjection `json:"user,omitempty"`
}

// Signup registers a customer account and starts a session.
//
// @Summary      Register a new customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Customer registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.auth.Signup(c.Request().Context(), ports.SignupInput{
		FullName:      req.FullName,
		IDNumber:      req.IDNumber,
		Username:      req.Username,
		AccountNumber: req.AccountNumber,
		Password:      req.Password,
	})
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(string(domain.KindCustomer), signupOutcome(err)).Inc()
		return err
	}

	cookie, session, err := h.sessions.Issue(c.Request().Context(), user.Principal())
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(domain.KindCustomer), "created").Inc()
	metrics.SessionsIssued.WithLabelValues(string(domain.KindCustomer)).Inc()

	c.SetCookie(h.cookie.session(cookie, session.ExpiresAt))
	projection := user.Public()
	return c.JSON(http.StatusCreated, authResponse{
		Message: "User created successfully",
		User:    &projection,
	})
}

// Login authenticates a customer by username or account number.
//
// @Summary      Customer login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.auth.Login(c.Request().Context(), ports.LoginInput{
		Username:      req.Username,
		AccountNumber: req.AccountNumber,
		Password:      req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.KindCustomer), loginOutcome(err)).Inc()
		return err
	}

	cookie, session, err := h.sessions.Issue(c.Request().Context(), user.Principal())
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.KindCustomer), "ok").Inc()
	metrics.SessionsIssued.WithLabelValues(string(domain.KindCustomer)).Inc()

	c.SetCookie(h.cookie.session(cookie, session.ExpiresAt))
	projection := user.Public()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		User:    &projection,
	})
}

// Logout destroys the current session and expires the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(h.cookie.expired())
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the principal bound to the current session.
//
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Principal
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, principal)
}

// signupOutcome maps a signup error to its metric label.
func signupOutcome(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return "validation_failed"
	case errors.Is(err, domain.ErrUserExists):
		return "conflict"
	default:
		return "error"
	}
}

// loginOutcome maps a login error to its metric label. Bad input and
// bad credentials share one label; splitting them would leak what the
// response deliberately hides.
func loginOutcome(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) || errors.Is(err, domain.ErrInvalidCredentials) {
		return "rejected"
	}
	return "error"
}
