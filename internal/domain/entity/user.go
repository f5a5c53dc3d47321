package entity

// User is an account known to the service. BusinessID is meaningful only
// for the PARTNER role, where it must reference an existing Business.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	BusinessID   string `json:"businessId,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Sanitized returns a copy safe to hand to delivery layers: the password
// hash never leaves the usecase boundary.
func (u User) Sanitized() User {
	out := u
	out.PasswordHash = ""

	return out
}
