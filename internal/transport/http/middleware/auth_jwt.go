package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jade-commerce/internal/core/auth"
	resp "jade-commerce/internal/transport/http/response"
)

// AuthJWT 校验 Bearer 凭证并把身份 {id, email, role} 放进上下文；
// requireRole 非空时再做角色闸
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortErr(c, http.StatusUnauthorized, "Invalid or missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortErr(c, http.StatusUnauthorized, "Invalid or missing token")
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.AbortErr(c, http.StatusForbidden, "You do not have permission to perform this action.")
			return
		}
		c.Set("claims", claims)
		c.Set("userId", claims.UID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireSelf 归属闸：路径参数里的资源 id 必须等于登录者 id
// （admin 不豁免——改自己之外的账号走后台）
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(param), 10, 32)
		if err != nil {
			resp.AbortErr(c, http.StatusBadRequest, "Invalid id")
			return
		}
		uid, ok := c.Get("userId")
		if !ok {
			resp.AbortErr(c, http.StatusUnauthorized, "Invalid or missing token")
			return
		}
		if uid.(uint) != uint(id) {
			resp.AbortErr(c, http.StatusForbidden, "You do not have permission to perform this action.")
			return
		}
		c.Next()
	}
}
