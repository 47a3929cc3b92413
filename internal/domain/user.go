package domain

import "time"

const (
	RoleCustomer = "customer"
	RoleCaterer  = "caterer"
)

// User is a registered account. Caterers own catalog products; customers own
// carts and orders.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidRole reports whether r is a role accepted at registration.
func ValidRole(r string) bool {
	return r == RoleCustomer || r == RoleCaterer
}
