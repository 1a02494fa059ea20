package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

// ContactService handles messages from the contact form.
type ContactService struct {
	store  ContactStore
	logger *slog.Logger
}

func NewContactService(store ContactStore, logger *slog.Logger) *ContactService {
	return &ContactService{store: store, logger: loggerOrDefault(logger)}
}

// Send stores a message. Apart from required fields there are no checks, duplicates included.
func (s *ContactService) Send(ctx context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
	log := withRequest(ctx, s.logger, "contact.send")

	in = in.Normalize()
	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	m := &domain.ContactMessage{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
	}
	if err := s.store.CreateContact(ctx, m); err != nil {
		log.Error("create failed", "error", err)
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	log.Info("contact message stored", "message_id", m.ID)
	return m, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	items, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return items, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteContact(ctx, id); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return err
		}
		withRequest(ctx, s.logger, "contact.delete").Error("delete failed", "message_id", id, "error", err)
		return fmt.Errorf("delete contact message: %w", err)
	}
	withRequest(ctx, s.logger, "contact.delete").Info("contact message deleted", "message_id", id)
	return nil
}
