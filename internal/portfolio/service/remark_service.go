package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

// RemarkService handles testimonials and their approval.
type RemarkService struct {
	store  RemarkStore
	logger *slog.Logger
}

func NewRemarkService(store RemarkStore, logger *slog.Logger) *RemarkService {
	return &RemarkService{store: store, logger: loggerOrDefault(logger)}
}

// List returns every remark, approved or not, newest first.
func (s *RemarkService) List(ctx context.Context) ([]domain.Remark, error) {
	items, err := s.store.ListRemarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list remarks: %w", err)
	}
	return items, nil
}

// ListApproved returns only remarks that may be shown publicly.
func (s *RemarkService) ListApproved(ctx context.Context) ([]domain.Remark, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterApproved(items), nil
}

// Create stores a visitor remark. New remarks are never approved.
func (s *RemarkService) Create(ctx context.Context, in domain.RemarkInput) (*domain.Remark, error) {
	log := withRequest(ctx, s.logger, "remark.create")

	in = in.Normalize()
	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	r := &domain.Remark{
		ClientName:  in.ClientName,
		CompanyName: in.CompanyName,
		Rating:      in.Rating,
		Comment:     in.Comment,
		IsApproved:  false,
	}
	if err := s.store.CreateRemark(ctx, r); err != nil {
		log.Error("create failed", "error", err)
		return nil, fmt.Errorf("create remark: %w", err)
	}

	log.Info("remark created", "remark_id", r.ID, "rating", r.Rating)
	return r, nil
}

// SetApproval sets the approval flag to the given value. It is not relative to the current state.
func (s *RemarkService) SetApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error) {
	log := withRequest(ctx, s.logger, "remark.approval")

	r, err := s.store.SetRemarkApproval(ctx, id, approved)
	if err != nil {
		if errors.Is(err, domain.ErrRemarkNotFound) {
			return nil, err
		}
		log.Error("set approval failed", "remark_id", id, "error", err)
		return nil, fmt.Errorf("set remark approval: %w", err)
	}

	log.Info("remark approval set", "remark_id", id, "approved", approved)
	return r, nil
}

func (s *RemarkService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteRemark(ctx, id); err != nil {
		if errors.Is(err, domain.ErrRemarkNotFound) {
			return err
		}
		withRequest(ctx, s.logger, "remark.delete").Error("delete failed", "remark_id", id, "error", err)
		return fmt.Errorf("delete remark: %w", err)
	}
	withRequest(ctx, s.logger, "remark.delete").Info("remark deleted", "remark_id", id)
	return nil
}

// FilterApproved keeps the approved remarks, preserving order.
func FilterApproved(items []domain.Remark) []domain.Remark {
	out := make([]domain.Remark, 0, len(items))
	for _, r := range items {
		if r.IsApproved {
			out = append(out, r)
		}
	}
	return out
}
