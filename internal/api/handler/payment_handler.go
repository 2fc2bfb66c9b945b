package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

// PaymentHandler serves the payment routes sitting behind the gateway:
// capture and listing for customers, the verification queue for
// employees.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type paymentListResponse struct {
	Payments []domain.Payment `json:"payments"`
}

// Create captures a new pending payment owned by the session principal.
//
// @Summary      Capture a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createPaymentRequest  true  "Payment details"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.payments.Create(c.Request().Context(), principal, ports.PaymentInput{
		Beneficiary:        req.Beneficiary,
		BeneficiaryAccount: req.BeneficiaryAccount,
		Amount:             req.Amount,
		Currency:           req.Currency,
		SwiftCode:          req.SwiftCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}

// ListOwn returns the payments captured by the current customer.
//
// @Summary      List own payments
// @Tags         payments
// @Produce      json
// @Success      200  {object}  paymentListResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) ListOwn(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	payments, err := h.payments.ListOwn(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentListResponse{Payments: payments})
}

// ListPending returns the employee verification queue.
//
// @Summary      List pending payments
// @Tags         payments
// @Produce      json
// @Success      200  {object}  paymentListResponse
// @Router       /api/employee/payments [get]
func (h *PaymentHandler) ListPending(c echo.Context) error {
	payments, err := h.payments.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentListResponse{Payments: payments})
}

// Verify marks a pending payment as verified by the current employee.
//
// @Summary      Verify a payment
// @Tags         payments
// @Produce      json
// @Param        id  path      string  true  "Payment ID"
// @Success      200  {object}  domain.Payment
// @Failure      404  {object}  map[string]string
// @Router       /api/employee/payments/{id}/verify [post]
func (h *PaymentHandler) Verify(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	payment, err := h.payments.Verify(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}
