package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee // keyed by username
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) FindByAnyOf(_ context.Context, username, employeeNumber string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if (username != "" && e.Username == username) ||
			(employeeNumber != "" && e.EmployeeNumber == employeeNumber) {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubEmployeeRepo) FindByUsername(_ context.Context, username string) (*domain.Employee, error) {
	if e, ok := r.employees[username]; ok {
		return cloneEmployee(e), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubEmployeeRepo) FindByEmployeeNumber(_ context.Context, employeeNumber string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeNumber == employeeNumber {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubEmployeeRepo) Insert(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if _, exists := r.employees[employee.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneEmployee(employee)
	if copy.ID == "" {
		copy.ID = employee.Username
	}
	r.employees[copy.Username] = cloneEmployee(copy)
	return cloneEmployee(copy), nil
}

func validEmployeeSignup() ports.EmployeeSignupInput {
	return ports.EmployeeSignupInput{
		FullName:       "Sam Staff",
		EmployeeNumber: "EMP000123",
		Username:       "sam_staff",
		Password:       "Str0ng!pass",
	}
}

func TestEmployeeAuthService_Signup_Success(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeAuthService(repo, bcrypt.MinCost)

	employee, err := svc.Signup(context.Background(), validEmployeeSignup())
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if employee.EmployeeNumber != "EMP000123" {
		t.Fatalf("unexpected employee number: %s", employee.EmployeeNumber)
	}
	if employee.Principal().Kind != domain.KindEmployee {
		t.Fatalf("expected employee kind, got %s", employee.Principal().Kind)
	}
}

func TestEmployeeAuthService_Signup_CollectsEveryFailure(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeAuthService(repo, bcrypt.MinCost)

	_, err := svc.Signup(context.Background(), ports.EmployeeSignupInput{
		FullName:       "S",
		EmployeeNumber: "123",
		Username:       "s",
		Password:       "weak",
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Messages) != 4 {
		t.Fatalf("expected 4 failures, got %v", ve.Messages)
	}
}

func TestEmployeeAuthService_Login_ByEmployeeNumber(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeAuthService(repo, bcrypt.MinCost)
	if _, err := svc.Signup(context.Background(), validEmployeeSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	employee, err := svc.Login(context.Background(), ports.EmployeeLoginInput{
		EmployeeNumber: "EMP000123",
		Password:       "Str0ng!pass",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if employee.Username != "sam_staff" {
		t.Fatalf("unexpected employee: %+v", employee)
	}
}

func TestEmployeeAuthService_Login_GenericError(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeAuthService(repo, bcrypt.MinCost)
	if _, err := svc.Signup(context.Background(), validEmployeeSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), ports.EmployeeLoginInput{Username: "nobody", Password: "Str0ng!pass"})
	_, wrongPwErr := svc.Login(context.Background(), ports.EmployeeLoginInput{Username: "sam_staff", Password: "Wr0ng!pass"})

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) || !errors.Is(wrongPwErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v / %v", unknownErr, wrongPwErr)
	}
	if unknownErr.Error() != wrongPwErr.Error() {
		t.Fatalf("login errors differ: %q vs %q", unknownErr, wrongPwErr)
	}
}
