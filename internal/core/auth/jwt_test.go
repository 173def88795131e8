package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestJWTer() *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "jade-commerce", TTL: time.Hour}
}

func TestJWTRoundTrip(t *testing.T) {
	j := newTestJWTer()

	tok, err := j.Issue(42, "lin@example.com", "admin")
	require.NoError(t, err)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UID)
	require.Equal(t, "lin@example.com", claims.Email)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "jade-commerce", claims.Issuer)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue(1, "a@b.c", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("another"), Issuer: j.Issuer, TTL: j.TTL}
	_, err = other.Parse(tok)
	require.Error(t, err)
}

func TestJWTRejectsWrongIssuer(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue(1, "a@b.c", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: j.Secret, Issuer: "someone-else", TTL: j.TTL}
	_, err = other.Parse(tok)
	require.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	// 过期超出 60s 宽限
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "jade-commerce", TTL: -2 * time.Minute}
	tok, err := j.Issue(1, "a@b.c", "user")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	require.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	j := newTestJWTer()
	_, err := j.Parse("not-a-token")
	require.Error(t, err)
}
