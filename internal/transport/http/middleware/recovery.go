package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "jade-commerce/internal/transport/http/response"
)

func SimpleRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				resp.AbortErr(c, http.StatusInternalServerError, "internal error")
			}
		}()
		c.Next()
	}
}
