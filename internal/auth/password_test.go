package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(4) // min cost, tests only

	hash, err := h.Hash("TestPassword123!")
	require.NoError(t, err)
	assert.NotEqual(t, "TestPassword123!", hash)

	assert.True(t, h.Verify("TestPassword123!", hash))
	assert.False(t, h.Verify("wrong", hash))
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher(4)

	first, err := h.Hash("same-input")
	require.NoError(t, err)
	second, err := h.Hash("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-input", first))
	assert.True(t, h.Verify("same-input", second))
}

func TestVerifyGarbageHash(t *testing.T) {
	h := NewHasher(4)
	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
}

func TestNewHasherDefaultsCost(t *testing.T) {
	h := NewHasher(0)
	assert.Equal(t, DefaultBcryptCost, h.cost)
}
