package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jade-commerce/internal/core/apperr"
)

// OK data 原样下发，状态码由调用方给（200/201）
func OK(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Fail 错误统一成 {"error": msg} 体
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// Err 业务错误在路由边界落地为 HTTP 状态码；未知错误一律 500
func Err(c *gin.Context, err error) {
	var ae *apperr.Err
	if errors.As(err, &ae) {
		Fail(c, ae.Status, ae.Error())
		return
	}
	Fail(c, http.StatusInternalServerError, err.Error())
}

// AbortErr 中间件用：写响应并截断后续 handler
func AbortErr(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
