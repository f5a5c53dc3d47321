// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin can manage the directory, homepage settings and CMS pages.
	RoleAdmin Role = "ADMIN"
	// RolePartner owns exactly one business listing and sees its dashboard.
	RolePartner Role = "PARTNER"
	// RoleUser is a regular visitor account.
	RoleUser Role = "USER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePartner, RoleUser:
		return true
	default:
		return false
	}
}
