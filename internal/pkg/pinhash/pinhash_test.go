package pinhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash_FreshSaltPerCall(t *testing.T) {
	h := New(bcrypt.MinCost)
	h1, err := h.Hash("123456")
	require.NoError(t, err)
	h2, err := h.Hash("123456")
	require.NoError(t, err)

	assert.NotEqual(t, "123456", h1)
	assert.NotEqual(t, h1, h2, "same plaintext must hash differently (fresh salt)")
}

func TestVerify_RoundTrip(t *testing.T) {
	h := New(bcrypt.MinCost)
	hash, err := h.Hash("042917")
	require.NoError(t, err)

	assert.True(t, h.Verify("042917", hash))
	assert.False(t, h.Verify("042918", hash))
	assert.False(t, h.Verify("", hash))
}

func TestVerify_MalformedHashIsMismatchNotError(t *testing.T) {
	h := New(bcrypt.MinCost)
	assert.False(t, h.Verify("123456", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("123456", ""))
}

func TestNew_ClampsBadCost(t *testing.T) {
	// Out-of-range costs fall back to bcrypt's default instead of failing
	// every Hash call later.
	h := New(99)
	hash, err := h.Hash("000000")
	require.NoError(t, err)
	assert.True(t, h.Verify("000000", hash))
}
