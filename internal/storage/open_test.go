package storage_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-2529/portfolio/internal/storage"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		url     string
		backend storage.Backend
		addr    string
	}{
		{"redis://localhost:6379/0", storage.BackendRedis, "redis://localhost:6379/0"},
		{"rediss://cache.internal:6380", storage.BackendRedis, "rediss://cache.internal:6380"},
		{"postgres://u:p@db/portfolio", storage.BackendPostgres, "postgres://u:p@db/portfolio"},
		{"postgresql://db/portfolio?sslmode=disable", storage.BackendPostgres, "postgresql://db/portfolio?sslmode=disable"},
		{"sqlite://data/portfolio.db", storage.BackendSQLite, "data/portfolio.db"},
		{"sqlite://:memory:", storage.BackendSQLite, ":memory:"},
		{"file:portfolio.db", storage.BackendSQLite, "portfolio.db"},
	}
	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			backend, addr, err := storage.Resolve(tc.url)
			require.NoError(t, err)
			assert.Equal(t, tc.backend, backend)
			assert.Equal(t, tc.addr, addr)
		})
	}
}

func TestResolve_Rejects(t *testing.T) {
	for _, url := range []string{"", "mongodb://localhost/portfolio", "mysql://db"} {
		_, _, err := storage.Resolve(url)
		assert.Error(t, err, url)
	}
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := storage.Open(context.Background(), "redis://"+mr.Addr(), storage.Options{})
	require.NoError(t, err)
	defer s.Close()

	assert.NoError(t, s.Ping(context.Background()))
}

func TestOpen_SQLiteMemory(t *testing.T) {
	s, err := storage.Open(context.Background(), "sqlite://:memory:", storage.Options{})
	require.NoError(t, err)
	defer s.Close()

	list, err := s.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
