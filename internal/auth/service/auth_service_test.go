package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aditya-2529/portfolio/internal/auth"
	"github.com/aditya-2529/portfolio/internal/auth/domain"
	"github.com/aditya-2529/portfolio/internal/auth/service"
)

func newService(t *testing.T) (*service.AuthService, *auth.Tokens) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := auth.NewTokens("s3cret", time.Hour)
	return service.NewAuthService(" Admin@Example.com ", string(hash), tokens, nil), tokens
}

func TestLogin_Success(t *testing.T) {
	svc, tokens := newService(t)

	session, err := svc.Login(context.Background(), domain.LoginRequest{Email: "admin@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", session.Email)

	claims, err := tokens.ValidateJWT(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLogin_Rejects(t *testing.T) {
	svc, _ := newService(t)

	cases := map[string]domain.LoginRequest{
		"wrong password": {Email: "admin@example.com", Password: "nope"},
		"wrong email":    {Email: "someone@example.com", Password: "hunter2"},
		"empty":          {},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestLogin_DisabledWithoutConfig(t *testing.T) {
	svc := service.NewAuthService("", "", auth.NewTokens("s3cret", time.Hour), nil)
	assert.False(t, svc.Enabled())

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrAuthDisabled)
}

func TestHashPassword(t *testing.T) {
	hash, err := service.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")))
}
