package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
	"github.com/aditya-2529/portfolio/internal/portfolio/service"
	"github.com/aditya-2529/portfolio/internal/portfolio/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validProject() domain.ProjectInput {
	return domain.ProjectInput{
		Title:       "  Crypto Dashboard ",
		Description: "Real-time tracking",
		GithubURL:   "https://github.com/example/crypto",
		Tags:        domain.Tags{"React", " WebSocket "},
	}
}

func TestProjectService_CreateTrimsAndStores(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("FindProjectByTitle", ctx, "Crypto Dashboard").Return(nil, domain.ErrProjectNotFound)
	store.On("CreateProject", ctx, mock.MatchedBy(func(p *domain.Project) bool {
		return p.Title == "Crypto Dashboard" && len(p.Tags) == 2 && p.Tags[1] == "WebSocket"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Project).ID = "p1"
	}).Return(nil)

	svc := service.NewProjectService(store, nil)
	p, err := svc.Create(ctx, validProject())
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	store.AssertExpectations(t)
}

func TestProjectService_CreateDuplicateTitle(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("FindProjectByTitle", ctx, "Crypto Dashboard").Return(&domain.Project{ID: "other", Title: "crypto dashboard"}, nil)

	svc := service.NewProjectService(store, nil)
	_, err := svc.Create(ctx, validProject())
	require.ErrorIs(t, err, domain.ErrProjectTitleTaken)
	store.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
}

func TestProjectService_CreateRaceReportsConflict(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("FindProjectByTitle", ctx, "Crypto Dashboard").Return(nil, domain.ErrProjectNotFound)
	store.On("CreateProject", ctx, mock.Anything).Return(domain.ErrProjectTitleTaken)

	svc := service.NewProjectService(store, nil)
	_, err := svc.Create(ctx, validProject())
	require.ErrorIs(t, err, domain.ErrProjectTitleTaken)
}

func TestProjectService_CreateValidation(t *testing.T) {
	store := &mocks.ProjectStore{}
	svc := service.NewProjectService(store, nil)

	_, err := svc.Create(context.Background(), domain.ProjectInput{Title: "x"})
	require.ErrorIs(t, err, domain.ErrValidation)
	store.AssertNotCalled(t, "FindProjectByTitle", mock.Anything, mock.Anything)
}

func TestProjectService_CreateStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("FindProjectByTitle", ctx, "Crypto Dashboard").Return(nil, errors.New("connection refused"))

	svc := service.NewProjectService(store, nil)
	_, err := svc.Create(ctx, validProject())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.False(t, errors.Is(err, domain.ErrProjectTitleTaken))
}

func TestProjectService_UpdateKeepsOwnTitle(t *testing.T) {
	ctx := context.Background()
	in := validProject()
	store := &mocks.ProjectStore{}
	store.On("FindProjectByTitle", ctx, "Crypto Dashboard").Return(&domain.Project{ID: "p1"}, nil)
	store.On("UpdateProject", ctx, "p1", in.Normalize()).Return(&domain.Project{ID: "p1", Title: "Crypto Dashboard"}, nil)

	svc := service.NewProjectService(store, nil)
	p, err := svc.Update(ctx, "p1", in)
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestProjectService_UpdateOntoOtherTitle(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("FindProjectByTitle", ctx, "Crypto Dashboard").Return(&domain.Project{ID: "p2"}, nil)

	svc := service.NewProjectService(store, nil)
	_, err := svc.Update(ctx, "p1", validProject())
	require.ErrorIs(t, err, domain.ErrProjectTitleTaken)
}

func TestProjectService_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("FindProjectByTitle", ctx, "Crypto Dashboard").Return(nil, domain.ErrProjectNotFound)
	store.On("UpdateProject", ctx, "missing", mock.Anything).Return(nil, domain.ErrProjectNotFound)

	svc := service.NewProjectService(store, nil)
	_, err := svc.Update(ctx, "missing", validProject())
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("DeleteProject", ctx, "p1").Return(nil)
	store.On("DeleteProject", ctx, "missing").Return(domain.ErrProjectNotFound)

	svc := service.NewProjectService(store, nil)
	require.NoError(t, svc.Delete(ctx, "p1"))
	require.ErrorIs(t, svc.Delete(ctx, "missing"), domain.ErrNotFound)
}
