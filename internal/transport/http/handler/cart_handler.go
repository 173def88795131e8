package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jade-commerce/internal/service"
	resp "jade-commerce/internal/transport/http/response"
)

type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type cartMutation struct {
	UserID    uint `json:"userId"`
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// Add POST /cart/add
func (h *CartHandler) Add(c *gin.Context) {
	var in cartMutation
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := h.cart.Add(in.UserID, in.ProductID, in.Quantity); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, gin.H{"message": "Product added to cart successfully"})
}

// Update PUT /cart/update（绝对数量）
func (h *CartHandler) Update(c *gin.Context) {
	var in cartMutation
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := h.cart.Update(in.UserID, in.ProductID, in.Quantity); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Cart updated successfully"})
}

// Delete DELETE /cart/delete
func (h *CartHandler) Delete(c *gin.Context) {
	var in struct {
		UserID    uint `json:"userId"`
		ProductID uint `json:"productId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := h.cart.Remove(in.UserID, in.ProductID); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Product removed from cart successfully"})
}

// Clear DELETE /cart/clear/:userId
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	cleared, err := h.cart.Clear(userID)
	if err != nil {
		resp.Err(c, err)
		return
	}
	if !cleared {
		resp.OK(c, http.StatusOK, gin.H{"message": "Cart is already empty"})
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}

// Get GET /cart/:userId
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	view, err := h.cart.Get(userID)
	if err != nil {
		resp.Err(c, err)
		return
	}
	if len(view.Lines) == 0 {
		resp.OK(c, http.StatusOK, gin.H{"message": "Cart is empty"})
		return
	}
	resp.OK(c, http.StatusOK, gin.H{
		"cart":       view.Lines,
		"totalPrice": view.TotalPrice,
	})
}

// SelectItems POST /cart/select-items（结算前勾选）
func (h *CartHandler) SelectItems(c *gin.Context) {
	var in struct {
		UserID      uint   `json:"userId"`
		CartItemIDs []uint `json:"cartItemIds"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Missing userId or cartItemIds")
		return
	}
	items, err := h.cart.SelectItems(in.UserID, in.CartItemIDs)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"selectedItems": items})
}
