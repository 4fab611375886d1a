package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nugrahsdhka/job-portal-api/internal/service"
)

type AuthHandler struct {
	svc *service.AuthSvc
}

func NewAuthHandler(s *service.AuthSvc) *AuthHandler {
	return &AuthHandler{svc: s}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Register(c.Request.Context(), in.Name, in.Email, in.Password, in.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"data":    u.Public(),
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, token, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"data": gin.H{
			"user":  u.Public(),
			"token": token,
		},
	})
}

// GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	sub, _ := c.Get("sub")
	role, _ := c.Get("role")
	c.JSON(http.StatusOK, gin.H{
		"message":            "this is your profile data",
		"user_id_from_token": sub,
		"role_from_token":    role,
	})
}
