package auth

import (
	"testing"

	"ppoth/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	password := "hunter2hunter2"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.NoError(t, hasher.Compare(hash, password))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
	assert.Error(t, hasher.Compare(hash, ""))
	assert.Error(t, hasher.Compare("invalid_hash", password))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("hunter2hunter2")
	require.NoError(t, err)
	second, err := hasher.Hash("hunter2hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_CostBounds(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"nil auth config", &config.Config{}},
		{"cost below minimum", testHasherConfig(bcrypt.MinCost - 1)},
		{"cost above maximum", testHasherConfig(bcrypt.MaxCost + 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg)

			hash, err := hasher.Hash("hunter2hunter2")
			require.NoError(t, err)
			assert.NoError(t, hasher.Compare(hash, "hunter2hunter2"))
		})
	}
}
