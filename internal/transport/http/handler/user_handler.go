package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jade-commerce/internal/service"
	resp "jade-commerce/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		resp.Fail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string, def int) int {
	if v, err := strconv.Atoi(c.Query(name)); err == nil {
		return v
	}
	return def
}

// queryUint 负数按 0（不过滤）处理，避免直接转 uint 回绕
func queryUint(c *gin.Context, name string) uint {
	v := queryInt(c, name, 0)
	if v < 0 {
		return 0
	}
	return uint(v)
}

// GetAll GET /users/all
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.users.ListAll()
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"users": users})
}

// List GET /users/?page&per_page&search
func (h *UserHandler) List(c *gin.Context) {
	page, err := h.users.List(
		queryInt(c, "page", 1),
		queryInt(c, "per_page", 0),
		c.Query("search"),
	)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{
		"users":        page.Users,
		"total":        page.Total,
		"pages":        page.Pages,
		"current_page": page.CurrentPage,
	})
}

// Get GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := h.users.Get(id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, u.DTO())
}

// Add POST /users/add
func (h *UserHandler) Add(c *gin.Context) {
	var in struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Missing username, email, or password")
		return
	}
	if _, err := h.users.Create(in.Username, in.Email, in.Password); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, gin.H{"message": "User created successfully"})
}

// Update PUT /users/:id（归属闸在路由层，仅本人可改）
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, err := h.users.Update(id, service.UserPatch{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    u.DTO(),
	})
}

// Delete DELETE /users/:id（逻辑删除）
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	msg, err := h.users.Delete(id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": msg})
}
