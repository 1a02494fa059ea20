package http

import (
	"github.com/aditya-2529/portfolio/internal/auth"
	"github.com/aditya-2529/portfolio/internal/auth/service"
)

type Handler struct {
	authService *service.AuthService
	tokens      *auth.Tokens
}

func New(authService *service.AuthService, tokens *auth.Tokens) *Handler {
	return &Handler{
		authService: authService,
		tokens:      tokens,
	}
}
