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

// Login-flow messages. Login reports one problem at a time, unlike
// signup which aggregates; this mirrors the request shape where only a
// single identifier is expected.
const (
	msgIdentifierRequired = "Username or account number is required"
	msgPasswordRequired   = "Password is required"
	msgBadUsernameFormat  = "Invalid username format"
	msgBadAccountFormat   = "Invalid account number format"
	msgBadEmployeeFormat  = "Invalid employee number format"
	msgEmployeeIDRequired = "Username or employee number is required"
)

// AuthService implements customer signup and login against the
// credential store.
type AuthService struct {
	repo ports.CredentialRepository
	cost int
}

// NewAuthService creates an AuthService. A non-positive bcrypt cost
// falls back to the library default.
func NewAuthService(repo ports.CredentialRepository, bcryptCost int) *AuthService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, cost: bcryptCost}
}

// Signup runs the full registration protocol: sanitise everything but
// the password, validate every field collecting all failures, check for
// an existing identity, then hash and insert. A duplicate-key failure
// from the store is treated exactly like a pre-check conflict, since
// two concurrent signups can both pass the pre-check.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	fullName := validation.Sanitize(in.FullName)
	idNumber := validation.Sanitize(in.IDNumber)
	username := validation.Sanitize(in.Username)
	accountNumber := validation.Sanitize(in.AccountNumber)
	password := in.Password // never sanitised

	var failures []string
	for _, f := range []struct {
		field, value string
	}{
		{validation.FieldFullName, fullName},
		{validation.FieldIDNumber, idNumber},
		{validation.FieldUsername, username},
		{validation.FieldAccountNumber, accountNumber},
		{validation.FieldPassword, password},
	} {
		if ok, msg := validation.Check(f.field, f.value); !ok {
			failures = append(failures, msg)
		}
	}
	if len(failures) > 0 {
		return nil, &domain.ValidationError{Messages: failures}
	}

	existing, err := s.repo.FindByAnyOf(ctx, ports.CredentialLookup{
		Username:      username,
		IDNumber:      idNumber,
		AccountNumber: accountNumber,
	})
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("signup conflict check: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		FullName:      fullName,
		IDNumber:      idNumber,
		Username:      username,
		AccountNumber: accountNumber,
		PasswordHash:  string(hash),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates by username or account number. An unknown
// identifier and a wrong password produce the identical
// ErrInvalidCredentials: the response must not reveal which check
// failed.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*domain.User, error) {
	username := validation.Sanitize(in.Username)
	accountNumber := validation.Sanitize(in.AccountNumber)
	password := in.Password

	if username == "" && accountNumber == "" {
		return nil, domain.NewValidationError(msgIdentifierRequired)
	}
	if username != "" {
		if ok, _ := validation.Check(validation.FieldUsername, username); !ok {
			return nil, domain.NewValidationError(msgBadUsernameFormat)
		}
	}
	if accountNumber != "" {
		if ok, _ := validation.Check(validation.FieldAccountNumber, accountNumber); !ok {
			return nil, domain.NewValidationError(msgBadAccountFormat)
		}
	}
	if password == "" {
		return nil, domain.NewValidationError(msgPasswordRequired)
	}

	var (
		user *domain.User
		err  error
	)
	if username != "" {
		user, err = s.repo.FindByUsername(ctx, username)
	} else {
		user, err = s.repo.FindByAccountNumber(ctx, accountNumber)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
