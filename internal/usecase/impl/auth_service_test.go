package impl

import (
	"context"
	"testing"

	"ppoth/config"
	domainerrors "ppoth/internal/domain/errors"
	"ppoth/internal/domain/repository"
	"ppoth/internal/infra/auth"
	"ppoth/internal/infra/persistence/store"
	"ppoth/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	service  usecase.AuthUsecase
	userRepo repository.UserRepository
}

func createTestAuthService(t *testing.T) authFixtures {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:   4,
		DemoPassword: "password",
	}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := store.NewUserRepository(newTestStore())
	svc := NewAuthService(cfg, userRepo, tokenService, auth.NewBcryptHasher(cfg), newTestLogger())

	return authFixtures{service: svc, userRepo: userRepo}
}

func TestAuthService_Login_SeededAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	result, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "admin@ppoth.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, "u_admin", result.User.ID)
	assert.NotEmpty(t, result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestAuthService_Login_EmailIsCaseInsensitive(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	result, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "Admin@PPOTH.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, "u_admin", result.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "admin@ppoth.com",
		Password: "letmein",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@ppoth.com",
		Password: "password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Register_ThenLogin(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "new@example.com",
		Name:     "New Resident",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Contains(t, registered.User.ID, "u_")
	assert.Empty(t, registered.User.PasswordHash)

	// Registered accounts authenticate against their own password, not the
	// shared demo one.
	loggedIn, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "new@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = fx.service.Login(ctx, usecase.LoginInput{
		Email:    "new@example.com",
		Password: "password",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "admin@ppoth.com",
		Name:     "Impostor",
		Password: "hunter2hunter2",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_CurrentUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user, err := fx.service.CurrentUser(ctx, "u_partner")
	require.NoError(t, err)
	assert.Equal(t, "partner@hamptons.com", user.Email)
	assert.Equal(t, "biz_land_1", user.BusinessID)
	assert.Empty(t, user.PasswordHash)

	_, err = fx.service.CurrentUser(ctx, "u_ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
