package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
	"github.com/secbank/auth-gateway/internal/core/validation"
)

// EmployeeAuthService mirrors the customer AuthService for the staff
// surface: same sanitisation, aggregation, and anti-enumeration
// contracts, with an employee-number identifier scheme.
type EmployeeAuthService struct {
	repo ports.EmployeeRepository
	cost int
}

func NewEmployeeAuthService(repo ports.EmployeeRepository, bcryptCost int) *EmployeeAuthService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &EmployeeAuthService{repo: repo, cost: bcryptCost}
}

func (s *EmployeeAuthService) Signup(ctx context.Context, in ports.EmployeeSignupInput) (*domain.Employee, error) {
	fullName := validation.Sanitize(in.FullName)
	employeeNumber := validation.Sanitize(in.EmployeeNumber)
	username := validation.Sanitize(in.Username)
	password := in.Password // never sanitised

	var failures []string
	for _, f := range []struct {
		field, value string
	}{
		{validation.FieldFullName, fullName},
		{validation.FieldEmployeeNumber, employeeNumber},
		{validation.FieldUsername, username},
		{validation.FieldPassword, password},
	} {
		if ok, msg := validation.Check(f.field, f.value); !ok {
			failures = append(failures, msg)
		}
	}
	if len(failures) > 0 {
		return nil, &domain.ValidationError{Messages: failures}
	}

	existing, err := s.repo.FindByAnyOf(ctx, username, employeeNumber)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("employee signup conflict check: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	employee := &domain.Employee{
		FullName:       fullName,
		EmployeeNumber: employeeNumber,
		Username:       username,
		PasswordHash:   string(hash),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Insert(ctx, employee)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *EmployeeAuthService) Login(ctx context.Context, in ports.EmployeeLoginInput) (*domain.Employee, error) {
	username := validation.Sanitize(in.Username)
	employeeNumber := validation.Sanitize(in.EmployeeNumber)
	password := in.Password

	if username == "" && employeeNumber == "" {
		return nil, domain.NewValidationError(msgEmployeeIDRequired)
	}
	if username != "" {
		if ok, _ := validation.Check(validation.FieldUsername, username); !ok {
			return nil, domain.NewValidationError(msgBadUsernameFormat)
		}
	}
	if employeeNumber != "" {
		if ok, _ := validation.Check(validation.FieldEmployeeNumber, employeeNumber); !ok {
			return nil, domain.NewValidationError(msgBadEmployeeFormat)
		}
	}
	if password == "" {
		return nil, domain.NewValidationError(msgPasswordRequired)
	}

	var (
		employee *domain.Employee
		err      error
	)
	if username != "" {
		employee, err = s.repo.FindByUsername(ctx, username)
	} else {
		employee, err = s.repo.FindByEmployeeNumber(ctx, employeeNumber)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("employee login lookup: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return employee, nil
}
