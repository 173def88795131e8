package handler

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestLoginFlow(t *testing.T) {
	env := newTestEnv(t)
	uid, tok := env.registerAndLogin(t, "lin", "lin@example.com", "secret123")
	require.NotZero(t, uid)

	claims, err := env.jwter.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "lin@example.com", claims.Email)
	require.Equal(t, "user", claims.Role)

	w := env.do(t, "POST", "/auth/login", gin.H{"email": "lin@example.com", "password": "secret123"}, "")
	require.Equal(t, 200, w.Code)
	require.Equal(t, "Login successful", decode(t, w)["message"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "lin", "lin@example.com", "secret123")

	w := env.do(t, "POST", "/auth/login", gin.H{"email": "lin@example.com", "password": "wrong"}, "")
	require.Equal(t, 401, w.Code)
	require.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())

	w = env.do(t, "POST", "/auth/login", gin.H{"email": "nobody@example.com", "password": "x"}, "")
	require.Equal(t, 401, w.Code)
}

func TestLoginRequiresFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/auth/login", gin.H{"email": "lin@example.com"}, "")
	require.Equal(t, 400, w.Code)
	require.JSONEq(t, `{"error":"Email and password are required"}`, w.Body.String())

	w = env.do(t, "POST", "/auth/login", nil, "")
	require.Equal(t, 400, w.Code)
}

func TestLogoutNeedsToken(t *testing.T) {
	env := newTestEnv(t)
	_, tok := env.registerAndLogin(t, "lin", "lin@example.com", "secret123")

	w := env.do(t, "POST", "/auth/logout", nil, "")
	require.Equal(t, 401, w.Code)

	w = env.do(t, "POST", "/auth/logout", nil, tok)
	require.Equal(t, 200, w.Code)
	require.Equal(t, "Logged out successfully", decode(t, w)["message"])
}
