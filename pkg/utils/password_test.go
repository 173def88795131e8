package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCheck(t *testing.T) {
	h := HashPassword("secret123")
	require.NotEqual(t, "secret123", h)
	require.True(t, CheckPassword("secret123", h))
	require.False(t, CheckPassword("wrong", h))
	require.False(t, CheckPassword("secret123", "not-a-hash"))
}

func TestPasswordHashIsSalted(t *testing.T) {
	require.NotEqual(t, HashPassword("secret123"), HashPassword("secret123"))
}
