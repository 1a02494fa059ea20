package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// devJWTSecret signs tokens when JWT_SECRET is unset outside production.
const devJWTSecret = "portfolio-dev-secret"

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	App    AppConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port        string   `env:"PORT" envDefault:"3000"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type StoreConfig struct {
	URL            string        `env:"STORE_URL" envDefault:"redis://localhost:6379/0"`
	ConnectTimeout time.Duration `env:"STORE_CONNECT_TIMEOUT" envDefault:"5s"`
	PingTimeout    time.Duration `env:"STORE_PING_TIMEOUT" envDefault:"2s"`
}

type AppConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
	// Unset means "expose outside production".
	ExposeErrors *bool `env:"EXPOSE_ERRORS"`
}

type AuthConfig struct {
	AdminEmail        string        `env:"ADMIN_EMAIL"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string        `env:"JWT_SECRET"`
	JWTTTL            time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// ClientConfig is what portfolioctl needs to reach the API.
type ClientConfig struct {
	APIURL  string        `env:"PORTFOLIO_API_URL" envDefault:"http://localhost:3000"`
	Token   string        `env:"PORTFOLIO_TOKEN"`
	Timeout time.Duration `env:"PORTFOLIO_TIMEOUT" envDefault:"10s"`
}

// Load reads .env (when present) and the environment, then validates the result.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret == "" && !cfg.IsProduction() {
		slog.Warn("JWT_SECRET not set, using an insecure development secret")
		cfg.Auth.JWTSecret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads the environment without loading .env or validating.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func LoadClient() (*ClientConfig, error) {
	_ = godotenv.Load()

	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("PORTFOLIO_API_URL is required")
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if p, err := strconv.Atoi(c.Server.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Server.Port)
	}

	if strings.TrimSpace(c.Store.URL) == "" {
		return fmt.Errorf("STORE_URL is required")
	}

	// Both unset boots a public-only API; one without the other is a typo.
	if (c.Auth.AdminEmail == "") != (c.Auth.AdminPasswordHash == "") {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be set together")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}

	return nil
}

// AdminEnabled reports whether an admin account is configured.
func (c *Config) AdminEnabled() bool {
	return c.Auth.AdminEmail != "" && c.Auth.AdminPasswordHash != ""
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

// ExposeErrors reports whether 500 responses carry the underlying error.
func (c *Config) ExposeErrors() bool {
	if c.App.ExposeErrors != nil {
		return *c.App.ExposeErrors
	}
	return !c.IsProduction()
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
