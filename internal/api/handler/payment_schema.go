package handler

// createPaymentRequest is the payment capture payload. Field-level
// schema rules live here as validator tags; ownership and status rules
// belong to the payment service.
type createPaymentRequest struct {
	Beneficiary        string  `json:"beneficiary" validate:"required,min=2,max=100"`
	BeneficiaryAccount string  `json:"beneficiaryAccount" validate:"required,numeric,min=6,max=20"`
	Amount             float64 `json:"amount" validate:"required,gt=0"`
	Currency           string  `json:"currency" validate:"required,oneof=ZAR USD EUR GBP"`
	SwiftCode          string  `json:"swiftCode" validate:"required,len=8|len=11"`
}
