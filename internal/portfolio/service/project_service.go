package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

// ProjectService handles project curation.
type ProjectService struct {
	store  ProjectStore
	logger *slog.Logger
}

func NewProjectService(store ProjectStore, logger *slog.Logger) *ProjectService {
	return &ProjectService{store: store, logger: loggerOrDefault(logger)}
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	items, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return items, nil
}

// Create stores a new project. A project with the same title fails with
// domain.ErrProjectTitleTaken regardless of the other fields.
func (s *ProjectService) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	log := withRequest(ctx, s.logger, "project.create")

	in = in.Normalize()
	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	existing, err := s.store.FindProjectByTitle(ctx, in.Title)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrProjectTitleTaken
	case err != nil && !errors.Is(err, domain.ErrProjectNotFound):
		log.Error("title lookup failed", "error", err)
		return nil, fmt.Errorf("find project by title: %w", err)
	}

	p := &domain.Project{}
	in.Apply(p)
	if err := s.store.CreateProject(ctx, p); err != nil {
		if errors.Is(err, domain.ErrProjectTitleTaken) {
			return nil, err
		}
		log.Error("create failed", "error", err)
		return nil, fmt.Errorf("create project: %w", err)
	}

	log.Info("project created", "project_id", p.ID, "title", p.Title)
	return p, nil
}

// Update replaces every mutable field of the project identified by id.
func (s *ProjectService) Update(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	log := withRequest(ctx, s.logger, "project.update")

	in = in.Normalize()
	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	existing, err := s.store.FindProjectByTitle(ctx, in.Title)
	switch {
	case err == nil && existing != nil && existing.ID != id:
		return nil, domain.ErrProjectTitleTaken
	case err != nil && !errors.Is(err, domain.ErrProjectNotFound):
		log.Error("title lookup failed", "error", err)
		return nil, fmt.Errorf("find project by title: %w", err)
	}

	p, err := s.store.UpdateProject(ctx, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) || errors.Is(err, domain.ErrProjectTitleTaken) {
			return nil, err
		}
		log.Error("update failed", "project_id", id, "error", err)
		return nil, fmt.Errorf("update project: %w", err)
	}

	log.Info("project updated", "project_id", p.ID)
	return p, nil
}

// Delete removes a project permanently.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return err
		}
		withRequest(ctx, s.logger, "project.delete").Error("delete failed", "project_id", id, "error", err)
		return fmt.Errorf("delete project: %w", err)
	}
	withRequest(ctx, s.logger, "project.delete").Info("project deleted", "project_id", id)
	return nil
}
