package domain

import "time"

// User models a customer account in the credential store.
type User struct {
	ID            string    `json:"id"`
	FullName      string    `json:"fullName"`
	IDNumber      string    `json:"-"`
	Username      string    `json:"username"`
	AccountNumber string    `json:"accountNumber"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Public returns the projection that is safe to hand back to clients.
// The password hash and national ID number never leave the server.
func (u *User) Public() UserProjection {
	return UserProjection{
		ID:            u.ID,
		FullName:      u.FullName,
		Username:      u.Username,
		AccountNumber: u.AccountNumber,
	}
}

// UserProjection is the client-facing view of an account.
type UserProjection struct {
	ID            string `json:"id"`
	FullName      string `json:"fullName"`
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
}

// Principal derives the request identity issued at login/signup time.
func (u *User) Principal() Principal {
	return Principal{ID: u.ID, Username: u.Username, Kind: KindCustomer}
}
