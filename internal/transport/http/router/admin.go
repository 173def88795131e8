package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jade-commerce/internal/core/auth"
	"jade-commerce/internal/core/server"
	"jade-commerce/internal/transport/http/handler"
	mdw "jade-commerce/internal/transport/http/middleware"
)

// NewAdminEngine 后台端：基础引擎走 ginzap，整组要求 admin 角色
func NewAdminEngine(l *zap.Logger, adminH *handler.AdminHandler, jwter *auth.JWTer) *gin.Engine {
	r := server.NewRouter(l)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, "admin"))
	{
		admin.GET("/users", adminH.ListUsers)
		admin.POST("/users/:id/ban", adminH.BanUser)
		admin.GET("/orders", adminH.ListOrders)
	}

	return r
}
