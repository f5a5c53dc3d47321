package auth

import (
	"testing"
	"time"

	"ppoth/config"
	"ppoth/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test-secret"))
	require.NoError(t, err)

	user := &entity.User{
		ID:         "u_partner",
		Role:       entity.RolePartner,
		BusinessID: "biz_land_1",
	}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u_partner", claims.UserID)
	assert.Equal(t, entity.RolePartner, claims.Role)
	assert.Equal(t, "biz_land_1", claims.BusinessID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testJWTConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(&entity.User{ID: "u_admin", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig("test-secret")
	cfg.Auth = &config.AuthConfig{AccessTTL: -time.Minute}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	// A negative TTL falls back to the default, so force expiry through a
	// dedicated short-lived service instead.
	short := &jwtService{secret: "test-secret", accessTTL: -time.Minute}
	token, err := short.GenerateToken(&entity.User{ID: "u_admin", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
