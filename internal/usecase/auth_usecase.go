package usecase

import (
	"context"

	"ppoth/internal/domain/entity"
)

// LoginInput is the credential pair for password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput creates a new visitor account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthResult is a sanitized user plus a signed access token.
type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// AuthUsecase covers login, registration and token introspection.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)

	// CurrentUser resolves the user behind an access token's subject.
	CurrentUser(ctx context.Context, userID string) (*entity.User, error)
}
