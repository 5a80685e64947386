package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashIsSaltedPerCall(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same plaintext must hash to different outputs")
	assert.True(t, h.Verify("secret123", first))
	assert.True(t, h.Verify("secret123", second))
}

func TestVerifyWrongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hashed, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.False(t, h.Verify("wrong", hashed))
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("secret123", ""))
	assert.False(t, h.Verify("secret123", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("secret123", "$2a$garbage"))
}

func TestNewHasherClampsCost(t *testing.T) {
	// out-of-range work factors fall back to the bcrypt default
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		h := NewHasher(cost)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	}

	h := NewHasher(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, h.cost)
}
