package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aditya-2529/portfolio/internal/auth"
	authsvc "github.com/aditya-2529/portfolio/internal/auth/service"
)

func newTestRouter(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	return newRouterWithAdmin(t, origins, "admin@example.com", string(hash))
}

func newRouterWithAdmin(t *testing.T, origins []string, email, hash string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := OpenStore(context.Background(), StoreOptions{URL: "sqlite://:memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	tokens := auth.NewTokens("test-secret", time.Hour)

	return BuildRouter(RouterDeps{
		ServiceName: "portfolio-api",
		Version:     "test",
		Store:       store,
		Auth:        authsvc.NewAuthService(email, hash, tokens, nil),
		Tokens:      tokens,
		CORSOrigins: origins,
		Logger:      NewLogger(io.Discard, "development", "error"),
	})
}

func TestBuildRouter_LoginGrantsAdminAccess(t *testing.T) {
	r := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	body, _ := json.Marshal(map[string]string{"email": "admin@example.com", "password": "hunter2"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	req = httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestBuildRouter_WithoutAdmin(t *testing.T) {
	r := newRouterWithAdmin(t, nil, "", "")

	body, _ := json.Marshal(map[string]string{"email": "admin@example.com", "password": "hunter2"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBuildRouter_HealthAndPublicRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, path := range []string{"/health", "/healthz", "/projects", "/remarks"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestBuildRouter_CORS(t *testing.T) {
	r := newTestRouter(t, []string{"https://portfolio.example.com"})

	req := httptest.NewRequest(http.MethodOptions, "/saveproject", nil)
	req.Header.Set("Origin", "https://portfolio.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://portfolio.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOpenStore_Errors(t *testing.T) {
	_, err := OpenStore(context.Background(), StoreOptions{})
	assert.Error(t, err)

	_, err = OpenStore(context.Background(), StoreOptions{URL: "mongodb://localhost"})
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLogLevel("debug").String())
	assert.Equal(t, "WARN", ParseLogLevel(" WARN ").String())
	assert.Equal(t, "ERROR", ParseLogLevel("error").String())
	assert.Equal(t, "INFO", ParseLogLevel("").String())
}

func TestNewLogger_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "production", "info").Info("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "v", line["k"])
}
