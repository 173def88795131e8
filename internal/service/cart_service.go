package service

import (
	"fmt"

	"gorm.io/gorm"

	"jade-commerce/internal/core/apperr"
	"jade-commerce/internal/domain"
	"jade-commerce/internal/repo"
)

// CartService 购物车加购即预占库存（stock 直接扣减）；
// 行被移出购物车（delete/clear/update 减量）时预占同事务内归还
type CartService struct {
	db       *gorm.DB
	carts    *repo.CartRepo
	products *repo.ProductRepo
}

func NewCartService(db *gorm.DB, carts *repo.CartRepo, products *repo.ProductRepo) *CartService {
	return &CartService{db: db, carts: carts, products: products}
}

type CartView struct {
	Lines      []domain.CartLineDTO
	TotalPrice float64
}

type SelectedItem struct {
	CartItemID uint `json:"cartItemId"`
	ProductID  uint `json:"productId"`
	Quantity   int  `json:"quantity"`
}

func (s *CartService) Add(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 || quantity == 0 {
		return apperr.BadRequest("Missing required fields")
	}
	if quantity < 0 {
		return apperr.BadRequest("Quantity must be greater than 0")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		products := s.products.WithTx(tx)
		carts := s.carts.WithTx(tx)

		product, err := products.FindForUpdate(productID)
		if err != nil {
			return apperr.Internal("db error", err)
		}
		if product == nil {
			return apperr.NotFound("Product not found")
		}
		if quantity > product.Stock {
			return apperr.InsufficientStock("Insufficient stock")
		}

		line, err := carts.Find(userID, productID)
		if err != nil {
			return apperr.Internal("db error", err)
		}
		if line != nil {
			if line.Quantity+quantity > product.Stock {
				return apperr.InsufficientStock(fmt.Sprintf(
					"Insufficient stock. Available stock: %d", product.Stock-line.Quantity))
			}
			line.Quantity += quantity
			if err := carts.Save(line); err != nil {
				return apperr.Internal("update cart failed", err)
			}
		} else {
			line = &domain.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
			if err := carts.Create(line); err != nil {
				return apperr.Internal("add to cart failed", err)
			}
		}

		product.Stock -= quantity
		if err := products.Save(product); err != nil {
			return apperr.Internal("reserve stock failed", err)
		}
		return nil
	})
}

// Update 设置绝对数量，预占随差额调整
func (s *CartService) Update(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 || quantity == 0 {
		return apperr.BadRequest("Missing required fields")
	}
	if quantity < 0 {
		return apperr.BadRequest("Quantity must be greater than 0")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		carts := s.carts.WithTx(tx)
		products := s.products.WithTx(tx)

		line, err := carts.Find(userID, productID)
		if err != nil {
			return apperr.Internal("db error", err)
		}
		if line == nil {
			return apperr.NotFound("Cart item not found")
		}
		product, err := products.FindForUpdate(productID)
		if err != nil {
			return apperr.Internal("db error", err)
		}
		if product == nil {
			return apperr.NotFound("Product not found")
		}
		if quantity > product.Stock {
			return apperr.InsufficientStock("Insufficient stock")
		}

		product.Stock += line.Quantity - quantity
		line.Quantity = quantity
		if err := carts.Save(line); err != nil {
			return apperr.Internal("update cart failed", err)
		}
		if err := products.Save(product); err != nil {
			return apperr.Internal("adjust stock failed", err)
		}
		return nil
	})
}

// Remove 删行并归还预占（商品已软删则无库存可还）
func (s *CartService) Remove(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return apperr.BadRequest("Missing required fields")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		carts := s.carts.WithTx(tx)
		products := s.products.WithTx(tx)

		line, err := carts.Find(userID, productID)
		if err != nil {
			return apperr.Internal("db error", err)
		}
		if line == nil {
			return apperr.NotFound("Cart item not found")
		}
		product, err := products.FindForUpdate(productID)
		if err != nil {
			return apperr.Internal("db error", err)
		}
		if product != nil {
			product.Stock += line.Quantity
			if err := products.Save(product); err != nil {
				return apperr.Internal("release stock failed", err)
			}
		}
		if err := carts.Delete(line); err != nil {
			return apperr.Internal("remove from cart failed", err)
		}
		return nil
	})
}

// Clear 清空；返回是否确有行被清除
func (s *CartService) Clear(userID uint) (bool, error) {
	cleared := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		carts := s.carts.WithTx(tx)
		products := s.products.WithTx(tx)

		lines, err := carts.ListByUser(userID)
		if err != nil {
			return apperr.Internal("db error", err)
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			product, err := products.FindForUpdate(lines[i].ProductID)
			if err != nil {
				return apperr.Internal("db error", err)
			}
			if product != nil {
				product.Stock += lines[i].Quantity
				if err := products.Save(product); err != nil {
					return apperr.Internal("release stock failed", err)
				}
			}
			if err := carts.Delete(&lines[i]); err != nil {
				return apperr.Internal("clear cart failed", err)
			}
		}
		cleared = true
		return nil
	})
	return cleared, err
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	lines, err := s.carts.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	view := &CartView{Lines: []domain.CartLineDTO{}}
	for i := range lines {
		product, err := s.products.FindByID(lines[i].ProductID)
		if err != nil {
			return nil, apperr.Internal("db error", err)
		}
		if product == nil {
			continue // 商品已下架，行不计入
		}
		lineTotal := product.Price * float64(lines[i].Quantity)
		view.Lines = append(view.Lines, domain.CartLineDTO{
			ProductID:  product.ID,
			Name:       product.Name,
			UnitPrice:  product.Price,
			Quantity:   lines[i].Quantity,
			TotalPrice: lineTotal,
		})
		view.TotalPrice += lineTotal
	}
	return view, nil
}

func (s *CartService) SelectItems(userID uint, ids []uint) ([]SelectedItem, error) {
	if userID == 0 || len(ids) == 0 {
		return nil, apperr.BadRequest("Missing userId or cartItemIds")
	}
	lines, err := s.carts.FindByIDs(userID, ids)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if len(lines) == 0 {
		return nil, apperr.NotFound("No valid items found in cart")
	}
	out := make([]SelectedItem, 0, len(lines))
	for i := range lines {
		out = append(out, SelectedItem{
			CartItemID: lines[i].ID,
			ProductID:  lines[i].ProductID,
			Quantity:   lines[i].Quantity,
		})
	}
	return out, nil
}
