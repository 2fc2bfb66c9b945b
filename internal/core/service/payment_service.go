package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

// PaymentCaptureService records payment instructions for customers and
// drives the employee verification flow. Field-level validation happens
// at the HTTP schema layer; this service owns ownership and status
// rules.
type PaymentCaptureService struct {
	repo ports.PaymentRepository
}

func NewPaymentCaptureService(repo ports.PaymentRepository) *PaymentCaptureService {
	return &PaymentCaptureService{repo: repo}
}

func (s *PaymentCaptureService) Create(ctx context.Context, principal domain.Principal, in ports.PaymentInput) (*domain.Payment, error) {
	now := time.Now().UTC()
	payment := &domain.Payment{
		Reference:          uuid.NewString(),
		UserID:             principal.ID,
		Beneficiary:        in.Beneficiary,
		BeneficiaryAccount: in.BeneficiaryAccount,
		Amount:             in.Amount,
		Currency:           in.Currency,
		SwiftCode:          in.SwiftCode,
		Status:             domain.PaymentPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.repo.Insert(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return created, nil
}

func (s *PaymentCaptureService) ListOwn(ctx context.Context, principal domain.Principal) ([]domain.Payment, error) {
	return s.repo.ListByUser(ctx, principal.ID)
}

func (s *PaymentCaptureService) ListPending(ctx context.Context) ([]domain.Payment, error) {
	return s.repo.ListPending(ctx)
}

func (s *PaymentCaptureService) Verify(ctx context.Context, principal domain.Principal, id string) (*domain.Payment, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.SetVerified(ctx, id, principal.Username)
}
