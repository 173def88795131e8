package service

import (
	"context"
	"fmt"
	"time"

	"jade-commerce/internal/core/apperr"
	"jade-commerce/internal/core/cache"
	"jade-commerce/internal/domain"
	"jade-commerce/internal/repo"
	"jade-commerce/pkg/pagination"
)

type ProductService struct {
	products *repo.ProductRepo
	cache    *cache.Cache // 可为 nil（未启用 Redis）
	ttl      time.Duration
}

func NewProductService(products *repo.ProductRepo, c *cache.Cache, ttl time.Duration) *ProductService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ProductService{products: products, cache: c, ttl: ttl}
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

type ProductPage struct {
	Products    []domain.ProductDTO
	Total       int64
	Pages       int
	CurrentPage int
}

func productCacheKey(id uint) string { return fmt.Sprintf("product:%d", id) }

func (s *ProductService) List(page, perPage int, search string) (*ProductPage, error) {
	p := pagination.Normalize(page, perPage)
	products, total, err := s.products.List(p.Offset(), p.PerPage, search)
	if err != nil {
		return nil, apperr.Internal("list products failed", err)
	}
	out := &ProductPage{
		Products:    make([]domain.ProductDTO, 0, len(products)),
		Total:       total,
		Pages:       pagination.Pages(total, p.PerPage),
		CurrentPage: p.Page,
	}
	for i := range products {
		out.Products = append(out.Products, products[i].DTO())
	}
	return out, nil
}

// Get 详情读经过 Redis 读穿缓存（singleflight 合并回源）
func (s *ProductService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	if s.cache == nil {
		return s.getDirect(id)
	}
	p, err := cache.GetOrLoadJSON[domain.Product](s.cache, ctx, productCacheKey(id), s.ttl,
		func(ctx context.Context) (*domain.Product, error) {
			return s.getDirect(id)
		})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Product not found")
	}
	return p, nil
}

func (s *ProductService) getDirect(id uint) (*domain.Product, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if p == nil {
		return nil, apperr.NotFound("Product not found")
	}
	return p, nil
}

func (s *ProductService) Create(name, description string, price float64, stock int) (*domain.Product, error) {
	if name == "" {
		return nil, apperr.BadRequest("Missing product name")
	}
	if price < 0 {
		return nil, apperr.BadRequest("Price must be non-negative")
	}
	if stock < 0 {
		return nil, apperr.BadRequest("Stock must be non-negative")
	}
	p := &domain.Product{Name: name, Description: description, Price: price, Stock: stock}
	if err := s.products.Create(p); err != nil {
		return nil, apperr.Internal("create product failed", err)
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, patch ProductPatch) (*domain.Product, error) {
	p, err := s.getDirect(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, apperr.BadRequest("Price must be non-negative")
		}
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			return nil, apperr.BadRequest("Stock must be non-negative")
		}
		p.Stock = *patch.Stock
	}
	if err := s.products.Save(p); err != nil {
		return nil, apperr.Internal("update product failed", err)
	}
	s.invalidate(ctx, id)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	p, err := s.getDirect(id)
	if err != nil {
		return err
	}
	p.IsDeleted = true
	if err := s.products.Save(p); err != nil {
		return apperr.Internal("delete product failed", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id uint) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, productCacheKey(id))
	}
}
