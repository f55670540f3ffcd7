// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
// It is a flat tag carried in token claims, not a policy engine.
type Role string

const (
	// RoleClient indicates a regular client account. This is the sign-up default.
	RoleClient Role = "client"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleAdmin:
		return true
	default:
		return false
	}
}
