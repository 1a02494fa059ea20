package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAdmin(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
}

func TestLoad_Defaults(t *testing.T) {
	setAdmin(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Store.URL)
	assert.Equal(t, 5*time.Second, cfg.Store.ConnectTimeout)
	assert.Equal(t, 2*time.Second, cfg.Store.PingTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, devJWTSecret, cfg.Auth.JWTSecret)
	assert.True(t, cfg.ExposeErrors())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	setAdmin(t)
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_URL", "sqlite://portfolio.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("JWT_SECRET", "real-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, "sqlite://portfolio.db", cfg.Store.URL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 2*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, "real-secret", cfg.Auth.JWTSecret)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	setAdmin(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "prod-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.ExposeErrors())
}

func TestExposeErrors_Explicit(t *testing.T) {
	setAdmin(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("EXPOSE_ERRORS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.ExposeErrors())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "3000"},
			Store:  StoreConfig{URL: "redis://localhost:6379"},
			Auth:   AuthConfig{AdminEmail: "a@b.c", AdminPasswordHash: "h", JWTSecret: "s"},
		}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(*Config){
		"empty port":   func(c *Config) { c.Server.Port = "" },
		"bad port":     func(c *Config) { c.Server.Port = "http" },
		"port range":   func(c *Config) { c.Server.Port = "70000" },
		"no store":     func(c *Config) { c.Store.URL = " " },
		"email only":   func(c *Config) { c.Auth.AdminPasswordHash = "" },
		"hash only":    func(c *Config) { c.Auth.AdminEmail = "" },
		"no jwtsecret": func(c *Config) { c.Auth.JWTSecret = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestValidate_WithoutAdmin(t *testing.T) {
	c := &Config{
		Server: ServerConfig{Port: "3000"},
		Store:  StoreConfig{URL: "redis://localhost:6379"},
		Auth:   AuthConfig{JWTSecret: "s"},
	}
	require.NoError(t, c.Validate())
	assert.False(t, c.AdminEnabled())

	c.Auth.AdminEmail, c.Auth.AdminPasswordHash = "a@b.c", "h"
	assert.True(t, c.AdminEnabled())
}

func TestLoadClient(t *testing.T) {
	t.Setenv("PORTFOLIO_API_URL", "https://api.example.com/ ")
	t.Setenv("PORTFOLIO_TOKEN", "tok")

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}
