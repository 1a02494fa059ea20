// Package redisstore keeps portfolio records as JSON documents in Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

const (
	projectPrefix  = "portfolio:project"       // portfolio:project:{id}
	projectIndex   = "portfolio:projects"      // zset of project ids by createdAt
	titlePrefix    = "portfolio:project:title" // portfolio:project:title:{title key} -> id
	remarkPrefix   = "portfolio:remark"
	remarkIndex    = "portfolio:remarks"
	contactPrefix  = "portfolio:contact"
	contactIndex   = "portfolio:contacts"
	defaultTimeout = 5 * time.Second
	maxTxRetries   = 5
)

// Store implements service.Store on top of a Redis client.
type Store struct {
	client   *redis.Client
	projects collection[domain.Project]
	remarks  collection[domain.Remark]
	contacts collection[domain.ContactMessage]
	now      func() time.Time
}

// New wraps an existing client.
func New(client *redis.Client) *Store {
	return &Store{
		client:   client,
		projects: collection[domain.Project]{client: client, prefix: projectPrefix, index: projectIndex, notFound: domain.ErrProjectNotFound},
		remarks:  collection[domain.Remark]{client: client, prefix: remarkPrefix, index: remarkIndex, notFound: domain.ErrRemarkNotFound},
		contacts: collection[domain.ContactMessage]{client: client, prefix: contactPrefix, index: contactIndex, notFound: domain.ErrContactNotFound},
		now:      time.Now,
	}
}

// Open connects to the Redis server described by a redis:// or rediss:// URL.
func Open(ctx context.Context, url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	pctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return New(client), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) titleKey(title string) string {
	return fmt.Sprintf("%s:%s", titlePrefix, domain.TitleKey(title))
}

func (s *Store) stamp(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if createdAt.IsZero() {
		*createdAt = s.now().UTC()
	}
}

// --- projects ---

func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.list(ctx)
}

func (s *Store) FindProjectByTitle(ctx context.Context, title string) (*domain.Project, error) {
	id, err := s.client.Get(ctx, s.titleKey(title)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project title: %w", err)
	}
	return s.projects.get(ctx, id)
}

// CreateProject claims the title key with SETNX before writing the document,
// so two concurrent creates with the same title cannot both succeed.
func (s *Store) CreateProject(ctx context.Context, p *domain.Project) error {
	s.stamp(&p.ID, &p.CreatedAt)

	titleKey := s.titleKey(p.Title)
	claimed, err := s.client.SetNX(ctx, titleKey, p.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim project title: %w", err)
	}
	if !claimed {
		return domain.ErrProjectTitleTaken
	}

	pipe := s.client.TxPipeline()
	if err := s.projects.put(ctx, pipe, p.ID, p.CreatedAt, p); err != nil {
		s.client.Del(ctx, titleKey)
		return err
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.client.Del(ctx, titleKey)
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// UpdateProject rewrites the document under WATCH, so a concurrent delete
// either wins outright or sees the renamed title.
func (s *Store) UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	var updated *domain.Project
	err := s.watch(ctx, s.projects.key(id), func(tx *redis.Tx) error {
		p, err := s.projects.getFrom(ctx, tx, id)
		if err != nil {
			return err
		}

		oldTitleKey := s.titleKey(p.Title)
		newTitleKey := s.titleKey(in.Title)
		claimed := false
		if newTitleKey != oldTitleKey {
			claimed, err = s.client.SetNX(ctx, newTitleKey, id, 0).Result()
			if err != nil {
				return fmt.Errorf("failed to claim project title: %w", err)
			}
			if !claimed {
				owner, err := s.client.Get(ctx, newTitleKey).Result()
				if err != nil && !errors.Is(err, redis.Nil) {
					return fmt.Errorf("failed to resolve project title: %w", err)
				}
				if owner != id {
					return domain.ErrProjectTitleTaken
				}
			}
		}

		in.Apply(p)
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := s.projects.overwrite(ctx, pipe, id, p); err != nil {
				return err
			}
			if newTitleKey != oldTitleKey {
				pipe.Del(ctx, oldTitleKey)
			}
			return nil
		})
		if err != nil {
			if claimed {
				s.client.Del(ctx, newTitleKey)
			}
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, wrapTx("update project", err)
	}
	return updated, nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	err := s.watch(ctx, s.projects.key(id), func(tx *redis.Tx) error {
		p, err := s.projects.getFrom(ctx, tx, id)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			s.projects.remove(ctx, pipe, id)
			pipe.Del(ctx, s.titleKey(p.Title))
			return nil
		})
		return err
	})
	return wrapTx("delete project", err)
}

// watch runs fn under WATCH key, retrying when another client touched the key first.
func (s *Store) watch(ctx context.Context, key string, fn func(tx *redis.Tx) error) error {
	var err error
	for i := 0; i < maxTxRetries; i++ {
		err = s.client.Watch(ctx, fn, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

// wrapTx leaves domain sentinels untouched and wraps everything else.
func wrapTx(op string, err error) error {
	if err == nil || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrProjectTitleTaken) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// --- remarks ---

func (s *Store) ListRemarks(ctx context.Context) ([]domain.Remark, error) {
	return s.remarks.list(ctx)
}

func (s *Store) CreateRemark(ctx context.Context, r *domain.Remark) error {
	s.stamp(&r.ID, &r.CreatedAt)

	pipe := s.client.TxPipeline()
	if err := s.remarks.put(ctx, pipe, r.ID, r.CreatedAt, r); err != nil {
		return err
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create remark: %w", err)
	}
	return nil
}

func (s *Store) SetRemarkApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error) {
	var updated *domain.Remark
	err := s.watch(ctx, s.remarks.key(id), func(tx *redis.Tx) error {
		r, err := s.remarks.getFrom(ctx, tx, id)
		if err != nil {
			return err
		}
		r.IsApproved = approved
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return s.remarks.overwrite(ctx, pipe, id, r)
		})
		if err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, wrapTx("update remark", err)
	}
	return updated, nil
}

func (s *Store) DeleteRemark(ctx context.Context, id string) error {
	if _, err := s.remarks.get(ctx, id); err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	s.remarks.remove(ctx, pipe, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete remark: %w", err)
	}
	return nil
}

// --- contact messages ---

func (s *Store) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contacts.list(ctx)
}

func (s *Store) CreateContact(ctx context.Context, m *domain.ContactMessage) error {
	s.stamp(&m.ID, &m.CreatedAt)

	pipe := s.client.TxPipeline()
	if err := s.contacts.put(ctx, pipe, m.ID, m.CreatedAt, m); err != nil {
		return err
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (s *Store) DeleteContact(ctx context.Context, id string) error {
	if _, err := s.contacts.get(ctx, id); err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	s.contacts.remove(ctx, pipe, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return nil
}
