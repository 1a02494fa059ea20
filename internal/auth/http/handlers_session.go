package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya-2529/portfolio/internal/auth"
	"github.com/aditya-2529/portfolio/internal/auth/domain"
)

// Login exchanges admin credentials for a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required", "code": "validation"})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password", "code": "unauthorized"})
		return
	case errors.Is(err, domain.ErrAuthDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured", "code": "unavailable"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in", "code": "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
	})
}

// Session reports who the presented token belongs to.
func (h *Handler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"email":   auth.AdminEmail(c),
	})
}
