package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jade-commerce/internal/service"
	resp "jade-commerce/internal/transport/http/response"
)

// AdminHandler 后台接口，整组路由挂在 admin 角色闸之后
type AdminHandler struct {
	users  *service.UserService
	orders *service.OrderService
}

func NewAdminHandler(users *service.UserService, orders *service.OrderService) *AdminHandler {
	return &AdminHandler{users: users, orders: orders}
}

// ListUsers GET /admin/v1/users?offset&limit&q&with_deleted
func (h *AdminHandler) ListUsers(c *gin.Context) {
	withDeleted := c.Query("with_deleted") == "true" || c.Query("with_deleted") == "1"
	items, total, err := h.users.ListAdmin(
		queryInt(c, "offset", 0),
		queryInt(c, "limit", 20),
		c.Query("q"),
		withDeleted,
	)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"total": total, "items": items})
}

// BanUser POST /admin/v1/users/:id/ban（封禁即软删）
func (h *AdminHandler) BanUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.users.Delete(id); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"id": id})
}

// ListOrders GET /admin/v1/orders?page&per_page&userId（含软删单）
func (h *AdminHandler) ListOrders(c *gin.Context) {
	page, err := h.orders.ListAdmin(
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
