package domain

// Kind discriminates the two principal populations the gateway serves.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindEmployee Kind = "employee"
)

// Valid reports whether k is one of the known principal kinds.
func (k Kind) Valid() bool {
	return k == KindCustomer || k == KindEmployee
}

// Principal is the authenticated identity bound to a request. It is a
// snapshot taken at session-creation time and never mutated afterwards;
// account changes only become visible after a fresh login.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Kind     Kind   `json:"kind"`
}
