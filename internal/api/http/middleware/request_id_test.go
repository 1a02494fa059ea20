package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-2529/portfolio/internal/api/http/middleware"
	"github.com/aditya-2529/portfolio/internal/reqctx"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	var seenGin, seenCtx string
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		seenGin = c.GetString("request_id")
		seenCtx = reqctx.RequestID(c.Request.Context())
		c.Status(http.StatusTeapot)
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		logs.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))
		assert.Equal(t, "abc-123", seenGin)
		assert.Equal(t, "abc-123", seenCtx)
		assert.Contains(t, logs.String(), "request_id=abc-123")
		assert.Contains(t, logs.String(), "status=418")
		assert.Contains(t, logs.String(), "level=WARN")
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		rid := w.Header().Get(middleware.HeaderRequestID)
		require.Len(t, rid, 32)
		assert.Equal(t, rid, seenCtx)
	})
}
