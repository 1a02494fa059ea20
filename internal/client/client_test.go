package client_test

import (
	"context"
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
	"github.com/aditya-2529/portfolio/internal/bootstrap"
	"github.com/aditya-2529/portfolio/internal/client"
	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

func startAPI(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := bootstrap.OpenStore(context.Background(), bootstrap.StoreOptions{URL: "sqlite://:memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	tokens := auth.NewTokens("test-secret", time.Hour)

	srv := httptest.NewServer(bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-api",
		Version:     "test",
		Store:       store,
		Auth:        authsvc.NewAuthService("admin@example.com", string(hash), tokens, nil),
		Tokens:      tokens,
		Logger:      bootstrap.NewLogger(io.Discard, "development", "error"),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, c *client.Client) {
	t.Helper()
	_, err := c.Login(context.Background(), "admin@example.com", "hunter2")
	require.NoError(t, err)
}

func TestClient_ProjectLifecycle(t *testing.T) {
	srv := startAPI(t)
	c := client.New(srv.URL + "/")
	ctx := context.Background()

	_, err := c.CreateProject(ctx, domain.ProjectInput{Title: "Crypto", Description: "d", GithubURL: "g"})
	assert.True(t, client.IsKind(err, client.KindUnauthorized), "got %v", err)

	login(t, c)
	email, err := c.SessionEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)

	p, err := c.CreateProject(ctx, domain.ProjectInput{Title: "Crypto", Description: "d", GithubURL: "g", Tags: domain.Tags{"Go"}})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.Tags{"Go"}, p.Tags)

	_, err = c.CreateProject(ctx, domain.ProjectInput{Title: "crypto", Description: "d", GithubURL: "g"})
	assert.True(t, client.IsKind(err, client.KindConflict), "got %v", err)

	_, err = c.CreateProject(ctx, domain.ProjectInput{Title: "No description"})
	assert.True(t, client.IsKind(err, client.KindValidation), "got %v", err)

	updated, err := c.UpdateProject(ctx, p.ID, domain.ProjectInput{Title: "Crypto v2", Description: "d2", GithubURL: "g"})
	require.NoError(t, err)
	assert.Equal(t, "Crypto v2", updated.Title)

	list, err := c.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "d2", list[0].Description)

	require.NoError(t, c.DeleteProject(ctx, p.ID))
	err = c.DeleteProject(ctx, p.ID)
	assert.True(t, client.IsKind(err, client.KindNotFound), "got %v", err)
}

func TestClient_RemarksAndContacts(t *testing.T) {
	srv := startAPI(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	r, err := c.AddRemark(ctx, domain.RemarkInput{ClientName: "Ada", Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	assert.False(t, r.IsApproved)

	_, err = c.AddRemark(ctx, domain.RemarkInput{ClientName: "Bob", Rating: 9, Comment: "Too good"})
	var apiErr *client.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindValidation, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, domain.ErrInvalidRating.Error(), apiErr.Message)

	approved, err := c.ListApprovedRemarks(ctx)
	require.NoError(t, err)
	assert.Empty(t, approved)

	login(t, c)
	r, err = c.SetRemarkApproval(ctx, r.ID, true)
	require.NoError(t, err)
	assert.True(t, r.IsApproved)

	approved, err = c.ListApprovedRemarks(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)

	require.NoError(t, c.SendContact(ctx, domain.ContactInput{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Subject: "Hi", Message: "Hello",
	}))
	msgs, err := c.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.NoError(t, c.DeleteContact(ctx, msgs[0].ID))

	require.NoError(t, c.DeleteRemark(ctx, r.ID))
	all, err := c.ListRemarks(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestClient_Health(t *testing.T) {
	srv := startAPI(t)

	h, err := client.New(srv.URL).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, "up", h.Store)
}

func TestClient_ServerErrorKinds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"list projects: boom","code":"internal"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL)

	_, err := c.ListProjects(context.Background())
	var apiErr *client.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindServer, apiErr.Kind)
	assert.Equal(t, "list projects: boom", apiErr.Message)

	_, err = c.ListRemarks(context.Background())
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindServer, apiErr.Kind)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := client.New(url).ListProjects(context.Background())
	assert.True(t, client.IsKind(err, client.KindTransport), "got %v", err)
}

func TestClient_SendsToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, client.WithToken("tok")).ListContacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", got)
}
