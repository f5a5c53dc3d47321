package service

import (
	"github.com/golang-jwt/jwt/v5"

	"ppoth/internal/domain/entity"
)

// Claims defines the custom claims for the session tokens.
type Claims struct {
	UserID     string      `json:"sub"`
	Role       entity.Role `json:"role"`
	BusinessID string      `json:"businessId,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed session token for a user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// claims.
	ValidateToken(tokenString string) (*Claims, error)
}

// PasswordHasher defines the interface for hashing and verifying passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) error
}
