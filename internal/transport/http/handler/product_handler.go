package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jade-commerce/internal/service"
	resp "jade-commerce/internal/transport/http/response"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List GET /products/all?page&per_page&search
func (h *ProductHandler) List(c *gin.Context) {
	page, err := h.products.List(
		queryInt(c, "page", 1),
		queryInt(c, "per_page", 0),
		c.Query("search"),
	)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{
		"products":     page.Products,
		"total":        page.Total,
		"pages":        page.Pages,
		"current_page": page.CurrentPage,
	})
}

// Get GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, p.DTO())
}

// Add POST /products/add
func (h *ProductHandler) Add(c *gin.Context) {
	var in struct {
		Name        *string  `json:"name"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		Stock       *int     `json:"stock"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Name == nil || in.Price == nil || in.Stock == nil {
		resp.Fail(c, http.StatusBadRequest, "Missing name, price, or stock")
		return
	}
	p, err := h.products.Create(*in.Name, in.Description, *in.Price, *in.Stock)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": p.DTO(),
	})
}

// Update PUT /products/:id（只动提交了的字段）
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Stock       *int     `json:"stock"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	p, err := h.products.Update(c.Request.Context(), id, service.ProductPatch{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": p.DTO(),
	})
}

// Delete DELETE /products/:id（逻辑删除）
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
