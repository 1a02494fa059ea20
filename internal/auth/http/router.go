package http

import (
	"github.com/gin-gonic/gin"

	"github.com/aditya-2529/portfolio/internal/auth/middleware"
)

// Register mounts /auth/login and the token-guarded /auth/session.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.GET("/session", middleware.RequireAdmin(h.tokens), h.Session)
}
