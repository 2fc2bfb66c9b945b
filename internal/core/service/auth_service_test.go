package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

type stubCredentialRepo struct {
	users    map[string]*domain.User // keyed by username
	insertFn func(user *domain.User) (*domain.User, error)
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubCredentialRepo) FindByAnyOf(_ context.Context, lookup ports.CredentialLookup) (*domain.User, error) {
	for _, u := range r.users {
		if (lookup.Username != "" && u.Username == lookup.Username) ||
			(lookup.IDNumber != "" && u.IDNumber == lookup.IDNumber) ||
			(lookup.AccountNumber != "" && u.AccountNumber == lookup.AccountNumber) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubCredentialRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubCredentialRepo) FindByAccountNumber(_ context.Context, accountNumber string) (*domain.User, error) {
	for _, u := range r.users {
		if u.AccountNumber == accountNumber {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubCredentialRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.insertFn != nil {
		return r.insertFn(user)
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func validSignup() ports.SignupInput {
	return ports.SignupInput{
		FullName:      "Jane Doe",
		IDNumber:      "9001015009087",
		Username:      "jane_doe",
		AccountNumber: "1234567890",
		Password:      "Str0ng!pass",
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, bcrypt.MinCost)

	user, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.PasswordHash == "Str0ng!pass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ng!pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Username != "jane_doe" {
		t.Fatalf("unexpected username: %s", user.Username)
	}
}

func TestAuthService_Signup_SanitisesFields(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, bcrypt.MinCost)

	in := validSignup()
	in.FullName = "  Jane Doe  "
	in.Username = "<jane_doe>"

	user, err := svc.Signup(context.Background(), in)
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.FullName != "Jane Doe" {
		t.Fatalf("full name not trimmed: %q", user.FullName)
	}
	if user.Username != "jane_doe" {
		t.Fatalf("angle brackets not stripped: %q", user.Username)
	}
}

func TestAuthService_Signup_CollectsEveryFailure(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, bcrypt.MinCost)

	_, err := svc.Signup(context.Background(), ports.SignupInput{
		FullName:      "J",          // too short
		IDNumber:      "123",        // not 13 digits
		Username:      "ab",         // too short
		AccountNumber: "12",         // not 10-12 digits
		Password:      "weak",       // fails policy
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Messages) != 5 {
		t.Fatalf("expected all 5 failures reported, got %d: %v", len(ve.Messages), ve.Messages)
	}
	if len(repo.users) != 0 {
		t.Fatalf("no record should be created on validation failure")
	}
}

func TestAuthService_Signup_ShortUsernameOnly(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, bcrypt.MinCost)

	in := validSignup()
	in.Username = "ab"

	_, err := svc.Signup(context.Background(), in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Messages) != 1 {
		t.Fatalf("expected a single failure, got %v", ve.Messages)
	}
	if ve.Messages[0] != "Username must be 3-20 characters, alphanumeric and underscore only" {
		t.Fatalf("unexpected message: %q", ve.Messages[0])
	}
	if len(repo.users) != 0 {
		t.Fatalf("no record should be created")
	}
}

func TestAuthService_Signup_Conflict(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, bcrypt.MinCost)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	in := validSignup()
	in.IDNumber = "8005125009086"
	in.AccountNumber = "9876543210"
	// same username as the first signup
	if _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Signup_DuplicateKeyRace(t *testing.T) {
	// Both concurrent signups pass the pre-check; the store's unique
	// constraint resolves the race. The loser must see the same
	// conflict outcome as a pre-check hit.
	repo := newStubCredentialRepo()
	repo.insertFn = func(*domain.User) (*domain.User, error) {
		return nil, domain.ErrUserExists
	}
	svc := NewAuthService(repo, bcrypt.MinCost)

	if _, err := svc.Signup(context.Background(), validSignup()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists from insert race, got %v", err)
	}
}

func TestAuthService_Login_ByUsername(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, bcrypt.MinCost)
	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.Login(context.Background(), ports.LoginInput{Username: "jane_doe", Password: "Str0ng!pass"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "jane_doe" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_ByAccountNumber(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, bcrypt.MinCost)
	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.Login(context.Background(), ports.LoginInput{AccountNumber: "1234567890", Password: "Str0ng!pass"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.AccountNumber != "1234567890" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_GenericError(t *testing.T) {
	// Unknown identifier and wrong password must be indistinguishable.
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, bcrypt.MinCost)
	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), ports.LoginInput{Username: "ghost_user", Password: "Str0ng!pass"})
	_, wrongPwErr := svc.Login(context.Background(), ports.LoginInput{Username: "jane_doe", Password: "Wr0ng!pass"})

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown identifier: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPwErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPwErr)
	}
	if unknownErr.Error() != wrongPwErr.Error() {
		t.Fatalf("login errors differ: %q vs %q", unknownErr, wrongPwErr)
	}
}

func TestAuthService_Login_InputChecks(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewAuthService(repo, bcrypt.MinCost)

	cases := []struct {
		name string
		in   ports.LoginInput
		msg  string
	}{
		{"no identifier", ports.LoginInput{Password: "Str0ng!pass"}, "Username or account number is required"},
		{"bad username format", ports.LoginInput{Username: "a!", Password: "x"}, "Invalid username format"},
		{"bad account format", ports.LoginInput{AccountNumber: "12ab", Password: "x"}, "Invalid account number format"},
		{"no password", ports.LoginInput{Username: "jane_doe"}, "Password is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.in)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(ve.Messages) != 1 || ve.Messages[0] != tc.msg {
				t.Fatalf("expected %q, got %v", tc.msg, ve.Messages)
			}
		})
	}
}
