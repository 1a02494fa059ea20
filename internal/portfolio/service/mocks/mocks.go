// Package mocks provides testify mocks for the service store interfaces.
package mocks

import (
	"context"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
	"github.com/stretchr/testify/mock"
)

// ProjectStore is a mock for service.ProjectStore.
type ProjectStore struct {
	mock.Mock
}

func (m *ProjectStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]domain.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) FindProjectByTitle(ctx context.Context, title string) (*domain.Project, error) {
	args := m.Called(ctx, title)
	if p, ok := args.Get(0).(*domain.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) CreateProject(ctx context.Context, p *domain.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectStore) UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	args := m.Called(ctx, id, in)
	if p, ok := args.Get(0).(*domain.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) DeleteProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// RemarkStore is a mock for service.RemarkStore.
type RemarkStore struct {
	mock.Mock
}

func (m *RemarkStore) ListRemarks(ctx context.Context) ([]domain.Remark, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]domain.Remark); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RemarkStore) CreateRemark(ctx context.Context, r *domain.Remark) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *RemarkStore) SetRemarkApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error) {
	args := m.Called(ctx, id, approved)
	if r, ok := args.Get(0).(*domain.Remark); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RemarkStore) DeleteRemark(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ContactStore is a mock for service.ContactStore.
type ContactStore struct {
	mock.Mock
}

func (m *ContactStore) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]domain.ContactMessage); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContactStore) CreateContact(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *ContactStore) DeleteContact(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
