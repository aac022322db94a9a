package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifierRoundTrip(t *testing.T) {
	v := NewBcryptVerifier(bcrypt.MinCost)

	hashed, err := v.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.True(t, v.Verify(hashed, "secret123"))
	assert.False(t, v.Verify(hashed, "secret124"))
	assert.False(t, v.Verify("not-a-hash", "secret123"))
}

func TestBcryptVerifierClampsCost(t *testing.T) {
	v := NewBcryptVerifier(99)
	assert.Equal(t, bcrypt.DefaultCost, v.Cost)

	v = NewBcryptVerifier(-1)
	assert.Equal(t, bcrypt.DefaultCost, v.Cost)
}
