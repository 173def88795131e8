package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"jade-commerce/internal/core/auth"
)

func init() { gin.SetMode(gin.TestMode) }

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "jade-commerce", TTL: time.Hour}
}

func newGuardedRouter(j *auth.JWTer, requireRole string) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthJWT(j, requireRole), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.MustGet("userId"),
			"role":   c.MustGet("role"),
		})
	})
	r.PUT("/users/:id", AuthJWT(j, ""), RequireSelf("id"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": 1})
	})
	return r
}

func doReq(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthJWTMissingToken(t *testing.T) {
	r := newGuardedRouter(testJWTer(), "")
	w := doReq(r, http.MethodGet, "/me", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"Invalid or missing token"}`, w.Body.String())
}

func TestAuthJWTBadToken(t *testing.T) {
	r := newGuardedRouter(testJWTer(), "")
	w := doReq(r, http.MethodGet, "/me", "garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthJWTSetsIdentity(t *testing.T) {
	j := testJWTer()
	tok, err := j.Issue(7, "lin@example.com", "user")
	require.NoError(t, err)

	w := doReq(newGuardedRouter(j, ""), http.MethodGet, "/me", tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"userId":7,"role":"user"}`, w.Body.String())
}

func TestAuthJWTRoleGate(t *testing.T) {
	j := testJWTer()
	userTok, err := j.Issue(7, "lin@example.com", "user")
	require.NoError(t, err)
	adminTok, err := j.Issue(1, "root@example.com", "admin")
	require.NoError(t, err)

	r := newGuardedRouter(j, "admin")
	w := doReq(r, http.MethodGet, "/me", userTok)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t, `{"error":"You do not have permission to perform this action."}`, w.Body.String())

	w = doReq(r, http.MethodGet, "/me", adminTok)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSelf(t *testing.T) {
	j := testJWTer()
	tok, err := j.Issue(7, "lin@example.com", "user")
	require.NoError(t, err)
	r := newGuardedRouter(j, "")

	w := doReq(r, http.MethodPut, "/users/7", tok)
	require.Equal(t, http.StatusOK, w.Code)

	// 改别人的账号：即便令牌有效也要拒绝
	w = doReq(r, http.MethodPut, "/users/8", tok)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doReq(r, http.MethodPut, "/users/abc", tok)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
