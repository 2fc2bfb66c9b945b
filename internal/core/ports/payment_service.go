package ports

import (
	"context"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

// PaymentInput is the validated payment capture payload.
type PaymentInput struct {
	Beneficiary        string
	BeneficiaryAccount string
	Amount             float64
	Currency           string
	SwiftCode          string
}

// PaymentService captures payments for customers and exposes the
// employee verification flow.
type PaymentService interface {
	Create(ctx context.Context, principal domain.Principal, in PaymentInput) (*domain.Payment, error)
	ListOwn(ctx context.Context, principal domain.Principal) ([]domain.Payment, error)
	ListPending(ctx context.Context) ([]domain.Payment, error)
	Verify(ctx context.Context, principal domain.Principal, id string) (*domain.Payment, error)
}
