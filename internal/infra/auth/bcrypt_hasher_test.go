package auth

import (
	"testing"

	"gatehouse/config"
	domainerrors "gatehouse/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	password := "pw123-secret"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Two hashes of the same password differ because of the embedded salt.
	hash2, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	password := "pw123-secret"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Correct password
	ok, err := hasher.Check(password, hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Incorrect password is a clean mismatch, not an error
	ok, err = hasher.Check("wrongpw", hash)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Empty password
	ok, err = hasher.Check("", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	ok, err := hasher.Check("pw123-secret", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHashFormat))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// Nil auth section falls back to bcrypt's default work factor.
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("pw123-secret")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
