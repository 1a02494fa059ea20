package service

import (
	"context"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

// ProjectStore persists projects.
//
// CreateProject assigns ID and CreatedAt when they are empty and must fail with
// domain.ErrProjectTitleTaken when another project has the same domain.TitleKey.
// Lookups, updates and deletes of unknown ids fail with domain.ErrProjectNotFound.
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	FindProjectByTitle(ctx context.Context, title string) (*domain.Project, error)
	CreateProject(ctx context.Context, p *domain.Project) error
	UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// RemarkStore persists remarks. Unknown ids fail with domain.ErrRemarkNotFound.
type RemarkStore interface {
	ListRemarks(ctx context.Context) ([]domain.Remark, error)
	CreateRemark(ctx context.Context, r *domain.Remark) error
	SetRemarkApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error)
	DeleteRemark(ctx context.Context, id string) error
}

// ContactStore persists contact messages. Unknown ids fail with domain.ErrContactNotFound.
type ContactStore interface {
	ListContacts(ctx context.Context) ([]domain.ContactMessage, error)
	CreateContact(ctx context.Context, m *domain.ContactMessage) error
	DeleteContact(ctx context.Context, id string) error
}

// Store is a complete document store backend.
// All List methods return records newest first.
type Store interface {
	ProjectStore
	RemarkStore
	ContactStore
	Ping(ctx context.Context) error
	Close() error
}
