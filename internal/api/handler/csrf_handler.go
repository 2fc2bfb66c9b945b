package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CSRFHandler hands out the double-submit token primed by the CSRF
// middleware. Clients call this once, then echo the token in the
// X-CSRF-Token header on state-changing requests.
type CSRFHandler struct{}

func NewCSRFHandler() *CSRFHandler {
	return &CSRFHandler{}
}

type csrfResponse struct {
	CSRFToken string `json:"csrfToken"`
}

// Token returns the CSRF token for the current client.
//
// @Summary      Get a CSRF token
// @Tags         csrf
// @Produce      json
// @Success      200  {object}  csrfResponse
// @Router       /api/csrf-token [get]
func (h *CSRFHandler) Token(c echo.Context) error {
	token, _ := c.Get("csrf").(string)
	return c.JSON(http.StatusOK, csrfResponse{CSRFToken: token})
}
