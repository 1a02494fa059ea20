package service

import (
	"context"
	"log/slog"

	"github.com/aditya-2529/portfolio/internal/reqctx"
)

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

// withRequest tags log lines with the request id carried by ctx.
func withRequest(ctx context.Context, l *slog.Logger, operation string) *slog.Logger {
	attrs := []any{"operation", operation}
	if rid := reqctx.RequestID(ctx); rid != "" {
		attrs = append(attrs, "request_id", rid)
	}
	return l.With(attrs...)
}
