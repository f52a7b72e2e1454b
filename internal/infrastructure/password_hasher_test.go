package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndCheck(t *testing.T) {
	hasher := NewPasswordHasher(10)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", hash, "hash must never equal the raw password")
	assert.True(t, hasher.Check("pw123", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestPasswordHasher_HashIsSalted(t *testing.T) {
	hasher := NewPasswordHasher(10)

	first, err := hasher.Hash("pw123")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ")
	assert.True(t, hasher.Check("pw123", first))
	assert.True(t, hasher.Check("pw123", second))
}

func TestPasswordHasher_IsHash(t *testing.T) {
	hasher := NewPasswordHasher(10)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)

	assert.True(t, hasher.IsHash(hash))
	assert.False(t, hasher.IsHash("pw123"))
	assert.False(t, hasher.IsHash(""))
}

func TestNewPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(0)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)
	assert.True(t, hasher.Check("pw123", hash))
}
