package ports

import (
	"context"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

// SignupInput carries the raw customer signup fields as received from
// the client, before sanitisation.
type SignupInput struct {
	FullName      string
	IDNumber      string
	Username      string
	AccountNumber string
	Password      string
}

// LoginInput carries customer login credentials. Exactly one of
// Username or AccountNumber must be supplied alongside the password.
type LoginInput struct {
	Username      string
	AccountNumber string
	Password      string
}

// AuthService implements the customer signup and login protocols.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*domain.User, error)
}

// EmployeeSignupInput carries the raw staff signup fields.
type EmployeeSignupInput struct {
	FullName       string
	EmployeeNumber string
	Username       string
	Password       string
}

// EmployeeLoginInput carries staff login credentials; one of Username
// or EmployeeNumber identifies the account.
type EmployeeLoginInput struct {
	Username       string
	EmployeeNumber string
	Password       string
}

// EmployeeAuthService mirrors AuthService for the staff surface.
type EmployeeAuthService interface {
	Signup(ctx context.Context, in EmployeeSignupInput) (*domain.Employee, error)
	Login(ctx context.Context, in EmployeeLoginInput) (*domain.Employee, error)
}
