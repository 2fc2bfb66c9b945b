package ports

import (
	"context"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

// PaymentRepository persists payment instructions captured behind the
// gateway.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Payment, error)
	ListPending(ctx context.Context) ([]domain.Payment, error)
	SetVerified(ctx context.Context, id, verifiedBy string) (*domain.Payment, error)
}
