package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.True(t, CompareHashAndPassword(hash, "secret1"))
	require.False(t, CompareHashAndPassword(hash, "secret2"))
}

func TestHashPassword_Cost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, 12, cost)
}

func TestCompareHashAndPassword_BadHash(t *testing.T) {
	t.Parallel()

	require.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "secret1"))
}
