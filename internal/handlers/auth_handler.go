package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/middleware"
	"rentadmin/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	adminService services.AdminServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(adminService services.AdminServicer) *AuthHandler {
	return &AuthHandler{adminService: adminService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminResponse represents the admin data in the response
type AdminResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse represents the authentication response with token
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// Login handles admin login
// @Summary     Login admin
// @Description Authenticate an admin and get a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Admin login credentials"
// @Success     200 {object} LoginResponse "Admin authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	admin, err := h.adminService.AttemptLogin(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(admin)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"role":     admin.Role,
		},
	})
}

// GetProfile returns the authenticated admin's profile
// @Summary     Get admin profile
// @Description Get the authenticated admin's profile information
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} AdminResponse "Admin profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	adminID, err := getAdminID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	admin, err := h.adminService.GetAdminByID(adminID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"role":     admin.Role,
		},
	})
}
