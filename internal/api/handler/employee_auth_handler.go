package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secbank/auth-gateway/internal/api/metrics"
	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

// EmployeeAuthHandler serves the staff authentication surface. Same
// protocol shape as the customer handler with an employee-number
// identifier and kind=employee sessions.
type EmployeeAuthHandler struct {
	auth     ports.EmployeeAuthService
	sessions ports.SessionService
	cookie   CookieConfig
}

func NewEmployeeAuthHandler(auth ports.EmployeeAuthService, sessions ports.SessionService, cookie CookieConfig) *EmployeeAuthHandler {
	return &EmployeeAuthHandler{auth: auth, sessions: sessions, cookie: cookie}
}

type employeeSignupRequest struct {
	FullName       string `json:"fullName"`
	EmployeeNumber string `json:"employeeNumber"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

type employeeLoginRequest struct {
	Username       string `json:"username"`
	EmployeeNumber string `json:"employeeNumber"`
	Password       string `json:"password"`
}

type employeeAuthResponse struct {
	Message string                     `json:"message"`
	User    *domain.EmployeeProjection `json:"user,omitempty"`
}

// Signup registers a staff account. The route is only mounted when
// employee self-signup is enabled; employee onboarding is normally an
// out-of-band process.
//
// @Summary      Register a new employee
// @Tags         employee-auth
// @Accept       json
// @Produce      json
// @Param        body  body      employeeSignupRequest  true  "Employee registration details"
// @Success      201   {object}  employeeAuthResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/employee/auth/signup [post]
func (h *EmployeeAuthHandler) Signup(c echo.Context) error {
	var req employeeSignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	employee, err := h.auth.Signup(c.Request().Context(), ports.EmployeeSignupInput{
		FullName:       req.FullName,
		EmployeeNumber: req.EmployeeNumber,
		Username:       req.Username,
		Password:       req.Password,
	})
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(string(domain.KindEmployee), signupOutcome(err)).Inc()
		return err
	}

	cookie, session, err := h.sessions.Issue(c.Request().Context(), employee.Principal())
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(domain.KindEmployee), "created").Inc()
	metrics.SessionsIssued.WithLabelValues(string(domain.KindEmployee)).Inc()

	c.SetCookie(h.cookie.session(cookie, session.ExpiresAt))
	projection := employee.Public()
	return c.JSON(http.StatusCreated, employeeAuthResponse{
		Message: "User created successfully",
		User:    &projection,
	})
}

// Login authenticates an employee by username or employee number.
//
// @Summary      Employee login
// @Tags         employee-auth
// @Accept       json
// @Produce      json
// @Param        body  body      employeeLoginRequest  true  "Login credentials"
// @Success      200   {object}  employeeAuthResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/employee/auth/login [post]
func (h *EmployeeAuthHandler) Login(c echo.Context) error {
	var req employeeLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	employee, err := h.auth.Login(c.Request().Context(), ports.EmployeeLoginInput{
		Username:       req.Username,
		EmployeeNumber: req.EmployeeNumber,
		Password:       req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.KindEmployee), loginOutcome(err)).Inc()
		return err
	}

	cookie, session, err := h.sessions.Issue(c.Request().Context(), employee.Principal())
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.KindEmployee), "ok").Inc()
	metrics.SessionsIssued.WithLabelValues(string(domain.KindEmployee)).Inc()

	c.SetCookie(h.cookie.session(cookie, session.ExpiresAt))
	projection := employee.Public()
	return c.JSON(http.StatusOK, employeeAuthResponse{
		Message: "Login successful",
		User:    &projection,
	})
}

// Logout destroys the current session and expires the cookie.
//
// @Summary      Employee logout
// @Tags         employee-auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/employee/auth/logout [post]
func (h *EmployeeAuthHandler) Logout(c echo.Context) error {
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
// @Summary      Current employee principal
// @Tags         employee-auth
// @Produce      json
// @Success      200  {object}  domain.Principal
// @Failure      401  {object}  map[string]string
// @Router       /api/employee/auth/me [get]
func (h *EmployeeAuthHandler) Me(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, principal)
}
