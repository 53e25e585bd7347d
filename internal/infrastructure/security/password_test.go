package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, h.Verify("s3cret-pass", hash))
	assert.False(t, h.Verify("other-pass", hash))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same", first))
	assert.True(t, h.Verify("same", second))
}

func TestBcryptHasher_MalformedHashIsMismatch(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("anything", ""))
	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", "$2a$10$short"))
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}
