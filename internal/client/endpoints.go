package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	httpapi "github.com/aditya-2529/portfolio/internal/api/http"
	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
	"github.com/aditya-2529/portfolio/internal/portfolio/service"
)

type ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (c *Client) Health(ctx context.Context) (*httpapi.HealthResponse, error) {
	var out httpapi.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges admin credentials for a token. The client keeps using it.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out Session
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// SessionEmail returns the admin the current token belongs to.
func (c *Client) SessionEmail(ctx context.Context) (string, error) {
	var out struct {
		Email string `json:"email"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/session", nil, &out); err != nil {
		return "", err
	}
	return out.Email, nil
}

// --- projects ---

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	var out domain.Project
	if err := c.do(ctx, http.MethodPost, "/saveproject", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	var out struct {
		Project domain.Project `json:"project"`
	}
	if err := c.do(ctx, http.MethodPut, "/updateproject/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out.Project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/deleteproject/"+url.PathEscape(id), nil, &ack{})
}

// --- remarks ---

// ListRemarks returns every remark. Use ListApprovedRemarks for public display.
func (c *Client) ListRemarks(ctx context.Context) ([]domain.Remark, error) {
	var out []domain.Remark
	if err := c.do(ctx, http.MethodGet, "/remarks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListApprovedRemarks(ctx context.Context) ([]domain.Remark, error) {
	all, err := c.ListRemarks(ctx)
	if err != nil {
		return nil, err
	}
	return service.FilterApproved(all), nil
}

func (c *Client) AddRemark(ctx context.Context, in domain.RemarkInput) (*domain.Remark, error) {
	var out struct {
		Remark domain.Remark `json:"remark"`
	}
	if err := c.do(ctx, http.MethodPost, "/addremark", in, &out); err != nil {
		return nil, err
	}
	return &out.Remark, nil
}

func (c *Client) SetRemarkApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error) {
	var out struct {
		Remark domain.Remark `json:"remark"`
	}
	body := map[string]bool{"isApproved": approved}
	if err := c.do(ctx, http.MethodPut, "/toggleapproval/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	return &out.Remark, nil
}

func (c *Client) DeleteRemark(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/deleteremark/"+url.PathEscape(id), nil, &ack{})
}

// --- contact messages ---

func (c *Client) SendContact(ctx context.Context, in domain.ContactInput) error {
	return c.do(ctx, http.MethodPost, "/contact", in, &ack{})
}

func (c *Client) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	if err := c.do(ctx, http.MethodGet, "/contacts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/deletecontact/"+url.PathEscape(id), nil, &ack{})
}
