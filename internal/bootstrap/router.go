package bootstrap

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/aditya-2529/portfolio/internal/api/http"
	reqmw "github.com/aditya-2529/portfolio/internal/api/http/middleware"
	"github.com/aditya-2529/portfolio/internal/auth"
	authhttp "github.com/aditya-2529/portfolio/internal/auth/http"
	authmw "github.com/aditya-2529/portfolio/internal/auth/middleware"
	authsvc "github.com/aditya-2529/portfolio/internal/auth/service"
	porthttp "github.com/aditya-2529/portfolio/internal/portfolio/http"
	"github.com/aditya-2529/portfolio/internal/portfolio/service"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	Store        service.Store
	Auth         *authsvc.AuthService
	Tokens       *auth.Tokens
	CORSOrigins  []string
	ExposeErrors bool
	Logger       *slog.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	logger := dep.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))
	r.Use(reqmw.RequestIDMiddleware(logger))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	authHandler := authhttp.New(dep.Auth, dep.Tokens)
	authHandler.Register(r.Group("/auth"))

	portfolio := porthttp.New(
		service.NewProjectService(dep.Store, logger),
		service.NewRemarkService(dep.Store, logger),
		service.NewContactService(dep.Store, logger),
		porthttp.Options{ExposeErrors: dep.ExposeErrors, Logger: logger},
	)
	portfolio.RegisterPublic(r)

	admin := r.Group("")
	admin.Use(authmw.RequireAdmin(dep.Tokens))
	portfolio.RegisterAdmin(admin)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", reqmw.HeaderRequestID},
		ExposeHeaders: []string{reqmw.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
