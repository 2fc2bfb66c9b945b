package domain

import "time"

// Payment statuses. Payments are created pending by customers and move
// to verified once an employee signs them off.
const (
	PaymentPending  = "pending"
	PaymentVerified = "verified"
)

// Payment is an international payment instruction captured behind the
// gateway. Processing itself happens downstream; this record only
// tracks capture and employee verification.
type Payment struct {
	ID                 string    `json:"id"`
	Reference          string    `json:"reference"`
	UserID             string    `json:"user_id"`
	Beneficiary        string    `json:"beneficiary"`
	BeneficiaryAccount string    `json:"beneficiary_account"`
	Amount             float64   `json:"amount"`
	Currency           string    `json:"currency"`
	SwiftCode          string    `json:"swift_code"`
	Status             string    `json:"status"`
	VerifiedBy         string    `json:"verified_by,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
