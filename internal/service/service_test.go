package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jade-commerce/internal/core/database"
	"jade-commerce/internal/domain"
	"jade-commerce/internal/repo"
)

var testDBSeq int64

// newTestDB 每个测试独立的内存库（cache=shared 保活于连接池）
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
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
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *domain.Product {
	t.Helper()
	p := &domain.Product{Name: name, Price: price, Stock: stock}
	require.NoError(t, db.Create(p).Error)
	return p
}

func productStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var p domain.Product
	require.NoError(t, db.First(&p, id).Error)
	return p.Stock
}

func newOrderDeps(t *testing.T) (*gorm.DB, *OrderService, *CartService) {
	t.Helper()
	db := newTestDB(t)
	products := repo.NewProductRepo(db)
	carts := repo.NewCartRepo(db)
	orders := repo.NewOrderRepo(db)
	return db,
		NewOrderService(db, orders, products, carts),
		NewCartService(db, carts, products)
}
