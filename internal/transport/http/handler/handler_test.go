package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jade-commerce/internal/core/auth"
	"jade-commerce/internal/core/database"
	"jade-commerce/internal/domain"
	"jade-commerce/internal/repo"
	"jade-commerce/internal/service"
	mdw "jade-commerce/internal/transport/http/middleware"
)

func init() { gin.SetMode(gin.TestMode) }

var handlerDBSeq int64

type testEnv struct {
	engine *gin.Engine
	db     *gorm.DB
	jwter  *auth.JWTer
}

// newTestEnv 内存库 + 与生产同构的路由表（去掉限流类中间件）
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:h%d?mode=memory&cache=shared", atomic.AddInt64(&handlerDBSeq, 1))
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          dsn,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
	))

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "jade-commerce", TTL: time.Hour}

	userRepo := repo.NewUserRepo(db)
	productRepo := repo.NewProductRepo(db)
	cartRepo := repo.NewCartRepo(db)
	orderRepo := repo.NewOrderRepo(db)

	userSvc := service.NewUserService(userRepo)
	productSvc := service.NewProductService(productRepo, nil, 0)
	cartSvc := service.NewCartService(db, cartRepo, productRepo)
	orderSvc := service.NewOrderService(db, orderRepo, productRepo, cartRepo)

	authH := NewAuthHandler(userSvc, jwter)
	userH := NewUserHandler(userSvc)
	productH := NewProductHandler(productSvc)
	cartH := NewCartHandler(cartSvc)
	orderH := NewOrderHandler(orderSvc)

	r := gin.New()
	r.POST("/auth/login", authH.Login)
	r.POST("/auth/logout", mdw.AuthJWT(jwter, ""), authH.Logout)

	r.GET("/users/all", userH.GetAll)
	r.GET("/users/", userH.List)
	r.GET("/users/:id", userH.Get)
	r.POST("/users/add", userH.Add)
	r.PUT("/users/:id", mdw.AuthJWT(jwter, ""), mdw.RequireSelf("id"), userH.Update)
	r.DELETE("/users/:id", userH.Delete)

	r.GET("/products/all", productH.List)
	r.GET("/products/:id", productH.Get)
	r.POST("/products/add", productH.Add)
	r.PUT("/products/:id", productH.Update)
	r.DELETE("/products/:id", productH.Delete)

	r.POST("/cart/add", cartH.Add)
	r.PUT("/cart/update", cartH.Update)
	r.DELETE("/cart/delete", cartH.Delete)
	r.DELETE("/cart/clear/:userId", cartH.Clear)
	r.GET("/cart/:userId", cartH.Get)
	r.POST("/cart/select-items", cartH.SelectItems)

	r.GET("/orders/all", orderH.List)
	r.POST("/orders/create", orderH.Create)
	r.GET("/orders/:id", orderH.Get)
	r.PUT("/orders/:id/status", orderH.UpdateStatus)
	r.DELETE("/orders/:id", orderH.Delete)

	return &testEnv{engine: r, db: db, jwter: jwter}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (e *testEnv) seedProduct(t *testing.T, name string, price float64, stock int) *domain.Product {
	t.Helper()
	p := &domain.Product{Name: name, Price: price, Stock: stock}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

// registerAndLogin 建号并登录，返回 (userID, token)
func (e *testEnv) registerAndLogin(t *testing.T, username, email, password string) (uint, string) {
	t.Helper()
	w := e.do(t, "POST", "/users/add", gin.H{
		"username": username, "email": email, "password": password,
	}, "")
	require.Equal(t, 201, w.Code)

	w = e.do(t, "POST", "/auth/login", gin.H{"email": email, "password": password}, "")
	require.Equal(t, 200, w.Code)
	body := decode(t, w)
	tok, _ := body["access_token"].(string)
	require.NotEmpty(t, tok)

	claims, err := e.jwter.Parse(tok)
	require.NoError(t, err)
	return claims.UID, tok
}
