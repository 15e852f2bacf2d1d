package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecretHash(t *testing.T) {
	const (
		clientID     = "client123"
		clientSecret = "secret456"
	)

	t.Run("known vector", func(t *testing.T) {
		hash, err := SecretHash("jane@example.com", clientID, clientSecret)
		require.NoError(t, err)
		require.Equal(t, "CTVxRO4jDOXUM40fBgzbrByg2wlwcUjdlj7yR3g0Evo=", hash)
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := SecretHash("jane@example.com", clientID, clientSecret)
		require.NoError(t, err)
		second, err := SecretHash("jane@example.com", clientID, clientSecret)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("any input change changes the output", func(t *testing.T) {
		base, err := SecretHash("jane@example.com", clientID, clientSecret)
		require.NoError(t, err)

		otherValue, err := SecretHash("john@example.com", clientID, clientSecret)
		require.NoError(t, err)
		require.NotEqual(t, base, otherValue)

		otherClient, err := SecretHash("jane@example.com", "client124", clientSecret)
		require.NoError(t, err)
		require.NotEqual(t, base, otherClient)

		otherSecret, err := SecretHash("jane@example.com", clientID, "secret457")
		require.NoError(t, err)
		require.NotEqual(t, base, otherSecret)
	})

	t.Run("empty value", func(t *testing.T) {
		_, err := SecretHash("", clientID, clientSecret)
		require.ErrorIs(t, err, ErrInvalidHashValue)
	})

	t.Run("missing client secret", func(t *testing.T) {
		_, err := SecretHash("jane@example.com", clientID, "")
		require.ErrorIs(t, err, ErrMissingClientSecret)
	})
}
