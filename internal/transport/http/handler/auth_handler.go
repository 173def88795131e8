package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jade-commerce/internal/core/auth"
	"jade-commerce/internal/service"
	resp "jade-commerce/internal/transport/http/response"
)

type AuthHandler struct {
	users *service.UserService
	jwter *auth.JWTer
}

func NewAuthHandler(users *service.UserService, jwter *auth.JWTer) *AuthHandler {
	return &AuthHandler{users: users, jwter: jwter}
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Email == "" || in.Password == "" {
		resp.Fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	u, err := h.users.Authenticate(in.Email, in.Password)
	if err != nil {
		resp.Err(c, err)
		return
	}
	tok, err := h.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		resp.Fail(c, http.StatusInternalServerError, "issue token failed")
		return
	}
	resp.OK(c, http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": tok,
	})
}

// Logout POST /auth/logout（令牌失效由客户端丢弃实现）
func (h *AuthHandler) Logout(c *gin.Context) {
	resp.OK(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}
