package domain

import "time"

// Employee models a staff account. Employees authenticate on a separate
// surface with an employee-number identifier but share the session and
// role machinery with customers.
type Employee struct {
	ID             string    `json:"id"`
	FullName       string    `json:"fullName"`
	EmployeeNumber string    `json:"employeeNumber"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Public returns the client-safe projection of the employee record.
func (e *Employee) Public() EmployeeProjection {
	return EmployeeProjection{
		ID:             e.ID,
		FullName:       e.FullName,
		Username:       e.Username,
		EmployeeNumber: e.EmployeeNumber,
	}
}

// EmployeeProjection is the client-facing view of a staff account.
type EmployeeProjection struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Username       string `json:"username"`
	EmployeeNumber string `json:"employeeNumber"`
}

// Principal derives the request identity issued at login time.
func (e *Employee) Principal() Principal {
	return Principal{ID: e.ID, Username: e.Username, Kind: KindEmployee}
}
