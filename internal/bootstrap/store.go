package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/aditya-2529/portfolio/internal/portfolio/service"
	"github.com/aditya-2529/portfolio/internal/storage"
)

type StoreOptions struct {
	URL       string
	ConnectTO time.Duration
	PingTO    time.Duration
}

// OpenStore connects the backend behind URL and fails fast if it does not answer a ping.
func OpenStore(ctx context.Context, opt StoreOptions) (service.Store, error) {
	if opt.URL == "" {
		return nil, fmt.Errorf("STORE_URL is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	store, err := storage.Open(ctx, opt.URL, storage.Options{
		ConnectTimeout: opt.ConnectTO,
		PingTimeout:    opt.PingTO,
	})
	if err != nil {
		return nil, err
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := store.Ping(pctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("store ping: %w", err)
	}

	return store, nil
}
