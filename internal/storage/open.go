// Package storage selects a service.Store backend from a connection URL.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aditya-2529/portfolio/internal/portfolio/service"
	"github.com/aditya-2529/portfolio/internal/storage/postgres"
	"github.com/aditya-2529/portfolio/internal/storage/redisstore"
	"github.com/aditya-2529/portfolio/internal/storage/sqlite"
)

type Options struct {
	ConnectTimeout time.Duration
	PingTimeout    time.Duration
}

// Backend names the store implementation a URL resolves to.
type Backend string

const (
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Resolve maps a store URL to its backend and the address that backend expects.
//
//	redis://host:6379/0, rediss://...   -> redis, url unchanged
//	postgres://..., postgresql://...    -> postgres, url unchanged
//	sqlite://path/to.db, file:path.db   -> sqlite, path
func Resolve(url string) (Backend, string, error) {
	url = strings.TrimSpace(url)
	switch {
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return BackendRedis, url, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return BackendPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		return BackendSQLite, strings.TrimPrefix(url, "sqlite://"), nil
	case strings.HasPrefix(url, "file:"):
		return BackendSQLite, strings.TrimPrefix(url, "file:"), nil
	case url == "":
		return "", "", fmt.Errorf("store url is empty")
	default:
		return "", "", fmt.Errorf("unsupported store url scheme: %q", url)
	}
}

// Open connects to the backend named by url.
func Open(ctx context.Context, url string, opt Options) (service.Store, error) {
	backend, addr, err := Resolve(url)
	if err != nil {
		return nil, err
	}

	if opt.ConnectTimeout == 0 {
		opt.ConnectTimeout = 5 * time.Second
	}
	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTimeout)
	defer cancel()

	var store service.Store
	switch backend {
	case BackendRedis:
		store, err = redisstore.Open(cctx, addr)
	case BackendPostgres:
		store, err = postgres.Open(cctx, postgres.Options{
			DSN:       addr,
			ConnectTO: opt.ConnectTimeout,
			PingTO:    opt.PingTimeout,
		})
	default:
		store, err = sqlite.Open(cctx, addr)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", backend, err)
	}
	return store, nil
}
