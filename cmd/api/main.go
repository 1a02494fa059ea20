package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aditya-2529/portfolio/config"
	"github.com/aditya-2529/portfolio/internal/auth"
	authsvc "github.com/aditya-2529/portfolio/internal/auth/service"
	"github.com/aditya-2529/portfolio/internal/bootstrap"
)

const serviceName = "portfolio-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := bootstrap.NewLogger(os.Stdout, cfg.App.Environment, cfg.App.LogLevel)
	slog.SetDefault(logger)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := bootstrap.OpenStore(ctx, bootstrap.StoreOptions{
		URL:       cfg.Store.URL,
		ConnectTO: cfg.Store.ConnectTimeout,
		PingTO:    cfg.Store.PingTimeout,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if !cfg.AdminEnabled() {
		logger.Warn("ADMIN_EMAIL not set, admin login is disabled")
	}

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		Store:        store,
		Auth:         authsvc.NewAuthService(cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash, tokens, logger),
		Tokens:       tokens,
		CORSOrigins:  cfg.Server.CORSOrigins,
		ExposeErrors: cfg.ExposeErrors(),
		Logger:       logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", httpServer.Addr, "env", cfg.App.Environment, "version", cfg.App.Version)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
