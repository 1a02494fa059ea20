// Package http exposes the portfolio services over the public REST contract.
package http

import (
	"log/slog"

	"github.com/aditya-2529/portfolio/internal/portfolio/service"
)

type Handler struct {
	projects     *service.ProjectService
	remarks      *service.RemarkService
	contacts     *service.ContactService
	exposeErrors bool
	logger       *slog.Logger
}

type Options struct {
	// ExposeErrors echoes the underlying error message on 500 responses.
	ExposeErrors bool
	Logger       *slog.Logger
}

func New(projects *service.ProjectService, remarks *service.RemarkService, contacts *service.ContactService, opt Options) *Handler {
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		projects:     projects,
		remarks:      remarks,
		contacts:     contacts,
		exposeErrors: opt.ExposeErrors,
		logger:       logger,
	}
}
