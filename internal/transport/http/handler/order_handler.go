package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jade-commerce/internal/service"
	resp "jade-commerce/internal/transport/http/response"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List GET /orders/all?page&per_page&userId
func (h *OrderHandler) List(c *gin.Context) {
	page, err := h.orders.List(
		queryInt(c, "page", 1),
		queryInt(c, "per_page", 0),
		queryUint(c, "userId"),
	)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{
		"orders":       page.Orders,
		"total":        page.Total,
		"pages":        page.Pages,
		"current_page": page.CurrentPage,
	})
}

// Create POST /orders/create
// 请求体二选一：items（直购）或 cartItemIds（购物车结算）
func (h *OrderHandler) Create(c *gin.Context) {
	var in struct {
		UserID      uint                     `json:"userId"`
		Items       []service.OrderLineInput `json:"items"`
		CartItemIDs []uint                   `json:"cartItemIds"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid items format")
		return
	}
	order, err := h.orders.Create(in.UserID, in.Items, in.CartItemIDs)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order.DTO(),
	})
}

// Get GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.orders.Get(id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, o.DTO())
}

// UpdateStatus PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid status")
		return
	}
	o, err := h.orders.UpdateStatus(id, in.Status)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"order":   o.DTO(),
	})
}

// Delete DELETE /orders/:id（逻辑删除）
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.orders.Delete(id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{
		"message": "Order deleted successfully",
		"order":   o.DTO(),
	})
}
