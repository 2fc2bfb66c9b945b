package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

type stubPaymentRepo struct {
	payments map[string]*domain.Payment
	nextID   int
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (r *stubPaymentRepo) Insert(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	r.nextID++
	clone := *payment
	clone.ID = "p" + strconv.Itoa(r.nextID)
	r.payments[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id string) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPaymentRepo) ListByUser(_ context.Context, userID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) ListPending(_ context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.payments {
		if p.Status == domain.PaymentPending {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) SetVerified(_ context.Context, id, verifiedBy string) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	p.Status = domain.PaymentVerified
	p.VerifiedBy = verifiedBy
	p.UpdatedAt = time.Now().UTC()
	clone := *p
	return &clone, nil
}

func paymentInput() ports.PaymentInput {
	return ports.PaymentInput{
		Beneficiary:        "Acme Ltd",
		BeneficiaryAccount: "9988776655",
		Amount:             150.75,
		Currency:           "USD",
		SwiftCode:          "ABCDZAJJ",
	}
}

func TestPaymentService_Create(t *testing.T) {
	repo := newStubPaymentRepo()
	svc := NewPaymentCaptureService(repo)
	customer := domain.Principal{ID: "u1", Username: "jane_doe", Kind: domain.KindCustomer}

	payment, err := svc.Create(context.Background(), customer, paymentInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if payment.Status != domain.PaymentPending {
		t.Fatalf("expected pending status, got %s", payment.Status)
	}
	if payment.UserID != "u1" {
		t.Fatalf("payment not owned by creator: %s", payment.UserID)
	}
	if payment.Reference == "" {
		t.Fatalf("expected a reference to be assigned")
	}
}

func TestPaymentService_ListOwn(t *testing.T) {
	repo := newStubPaymentRepo()
	svc := NewPaymentCaptureService(repo)
	jane := domain.Principal{ID: "u1", Username: "jane_doe", Kind: domain.KindCustomer}
	john := domain.Principal{ID: "u2", Username: "john_doe", Kind: domain.KindCustomer}

	if _, err := svc.Create(context.Background(), jane, paymentInput()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), john, paymentInput()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	own, err := svc.ListOwn(context.Background(), jane)
	if err != nil {
		t.Fatalf("ListOwn failed: %v", err)
	}
	if len(own) != 1 || own[0].UserID != "u1" {
		t.Fatalf("expected only jane's payments, got %+v", own)
	}
}

func TestPaymentService_Verify(t *testing.T) {
	repo := newStubPaymentRepo()
	svc := NewPaymentCaptureService(repo)
	customer := domain.Principal{ID: "u1", Username: "jane_doe", Kind: domain.KindCustomer}
	employee := domain.Principal{ID: "e1", Username: "sam_staff", Kind: domain.KindEmployee}

	created, err := svc.Create(context.Background(), customer, paymentInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	verified, err := svc.Verify(context.Background(), employee, created.ID)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if verified.Status != domain.PaymentVerified || verified.VerifiedBy != "sam_staff" {
		t.Fatalf("unexpected verification result: %+v", verified)
	}

	pending, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending payments, got %+v", pending)
	}
}

func TestPaymentService_Verify_NotFound(t *testing.T) {
	svc := NewPaymentCaptureService(newStubPaymentRepo())
	employee := domain.Principal{ID: "e1", Username: "sam_staff", Kind: domain.KindEmployee}

	if _, err := svc.Verify(context.Background(), employee, "missing"); !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
