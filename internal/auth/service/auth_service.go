package service

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/aditya-2529/portfolio/internal/auth"
	"github.com/aditya-2529/portfolio/internal/auth/domain"
	"github.com/aditya-2529/portfolio/internal/reqctx"
)

// dummyHash keeps a failed email match as slow as a failed password match.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-dummy-password"), bcrypt.DefaultCost)

// AuthService authenticates the single configured admin account.
type AuthService struct {
	email        string
	passwordHash []byte
	tokens       *auth.Tokens
	logger       *slog.Logger
}

func NewAuthService(email, passwordHash string, tokens *auth.Tokens, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
		logger:       logger,
	}
}

// Enabled reports whether an admin account is configured.
func (s *AuthService) Enabled() bool {
	return s.email != "" && len(s.passwordHash) > 0
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error) {
	log := s.logger.With("operation", "auth.login", "request_id", reqctx.RequestID(ctx))
	if !s.Enabled() {
		return nil, domain.ErrAuthDisabled
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1

	hash := s.passwordHash
	if !emailOK {
		hash = dummyHash
	}
	passwordOK := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) == nil

	if !emailOK || !passwordOK {
		log.Warn("admin login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	token, expires, err := s.tokens.CreateJWT(s.email)
	if err != nil {
		return nil, err
	}
	log.Info("admin logged in", "expires_at", expires)
	return &domain.Session{Email: s.email, Token: token, ExpiresAt: expires}, nil
}

// HashPassword returns the bcrypt hash to put in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
