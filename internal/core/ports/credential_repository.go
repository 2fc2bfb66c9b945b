package ports

import (
	"context"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

// CredentialLookup names the identifiers a customer record can be found
// by. Empty fields are ignored; any single match counts.
type CredentialLookup struct {
	Username      string
	IDNumber      string
	AccountNumber string
}

// CredentialRepository is the gateway's view of the customer credential
// store. Implementations must enforce field-level uniqueness atomically
// at insert time: a duplicate-key failure from Insert is the
// authoritative race resolution and maps to domain.ErrUserExists.
type CredentialRepository interface {
	FindByAnyOf(ctx context.Context, lookup CredentialLookup) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}

// EmployeeRepository is the staff-side counterpart of
// CredentialRepository with an employee-number identifier scheme.
type EmployeeRepository interface {
	FindByAnyOf(ctx context.Context, username, employeeNumber string) (*domain.Employee, error)
	FindByUsername(ctx context.Context, username string) (*domain.Employee, error)
	FindByEmployeeNumber(ctx context.Context, employeeNumber string) (*domain.Employee, error)
	Insert(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
}
