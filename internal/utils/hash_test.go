package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secr3t!")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	require.True(t, VerifyPassword("Secr3t!", hash))
	require.False(t, VerifyPassword("secr3t!", hash))
	require.False(t, VerifyPassword("", hash))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.True(t, VerifyPassword("same password", h1))
	require.True(t, VerifyPassword("same password", h2))
}

func TestVerifyPasswordFailsClosed(t *testing.T) {
	for _, encoded := range []string{
		"",
		"not a hash",
		"$argon2id$",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$AAAA",
		"$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!",
		"$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=0$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=4,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2i$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$2a$10$abcdefghijklmnopqrstuv", // bcrypt
	} {
		require.False(t, VerifyPassword("whatever", encoded), "encoded=%q", encoded)
	}
}
