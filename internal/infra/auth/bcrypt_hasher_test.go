package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(4) // minimum cost keeps the test fast

	hash, err := hasher.Hash("s3cure-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cure-password", hash)

	assert.True(t, hasher.Check("s3cure-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestNewBcryptHasher_ClampsInvalidCost(t *testing.T) {
	hasher := NewBcryptHasher(99)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Check("pw", hash))
}
