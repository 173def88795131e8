package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jade-commerce/internal/core/auth"
	"jade-commerce/internal/transport/http/handler"
	mdw "jade-commerce/internal/transport/http/middleware"
)

// Handlers 面向用户端的全部处理器，由 main 显式构造注入
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGrp := r.Group("/auth")
	{
		authGrp.POST("/login", h.Auth.Login)
		authGrp.POST("/logout", mdw.AuthJWT(jwter, ""), h.Auth.Logout)
	}

	users := r.Group("/users")
	{
		users.GET("/all", h.User.GetAll)
		users.GET("/", h.User.List)
		users.GET("/:id", h.User.Get)
		users.POST("/add", h.User.Add)
		// 只能改自己的账号
		users.PUT("/:id", mdw.AuthJWT(jwter, ""), mdw.RequireSelf("id"), h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	products := r.Group("/products")
	{
		products.GET("/all", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.POST("/add", h.Product.Add)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	cart := r.Group("/cart")
	{
		cart.POST("/add", h.Cart.Add)
		cart.PUT("/update", h.Cart.Update)
		cart.DELETE("/delete", h.Cart.Delete)
		cart.DELETE("/clear/:userId", h.Cart.Clear)
		cart.GET("/:userId", h.Cart.Get)
		cart.POST("/select-items", h.Cart.SelectItems)
	}

	orders := r.Group("/orders")
	{
		orders.GET("/all", h.Order.List)
		orders.POST("/create", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.DELETE("/:id", h.Order.Delete)
	}

	return r
}
