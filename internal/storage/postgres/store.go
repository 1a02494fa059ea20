package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

const uniqueViolation = "23505"

// Store implements service.Store on a pgx pool.
type Store struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, now: time.Now}
}

// Open connects, ensures the schema and returns a ready store.
func Open(ctx context.Context, opt Options) (*Store, error) {
	pool, err := OpenPool(ctx, opt)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return New(pool), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) stamp(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if createdAt.IsZero() {
		// TIMESTAMPTZ keeps microseconds.
		*createdAt = s.now().UTC().Truncate(time.Microsecond)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func tagArray(t domain.Tags) []string {
	if t == nil {
		return []string{}
	}
	return []string(t)
}

// --- projects ---

const projectColumns = `id, title, description, image_url, github_url, live_url, tags, created_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p    domain.Project
		tags []string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.GithubURL, &p.LiveURL, &tags, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Tags = domain.Tags(tags)
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func (s *Store) FindProjectByTitle(ctx context.Context, title string) (*domain.Project, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE title_key = $1`, domain.TitleKey(title))
	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find project by title: %w", err)
	}
	return p, nil
}

func (s *Store) CreateProject(ctx context.Context, p *domain.Project) error {
	s.stamp(&p.ID, &p.CreatedAt)

	const q = `
INSERT INTO projects (id, title, title_key, description, image_url, github_url, live_url, tags, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`
	_, err := s.pool.Exec(ctx, q, p.ID, p.Title, domain.TitleKey(p.Title), p.Description,
		p.ImageURL, p.GithubURL, p.LiveURL, tagArray(p.Tags), p.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrProjectTitleTaken
	}
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	const q = `
UPDATE projects
SET title = $2, title_key = $3, description = $4, image_url = $5, github_url = $6, live_url = $7, tags = $8
WHERE id = $1
RETURNING ` + projectColumns + `;
`
	row := s.pool.QueryRow(ctx, q, id, in.Title, domain.TitleKey(in.Title), in.Description,
		in.ImageURL, in.GithubURL, in.LiveURL, tagArray(in.Tags))
	p, err := scanProject(row)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, domain.ErrProjectNotFound
	case isUniqueViolation(err):
		return nil, domain.ErrProjectTitleTaken
	case err != nil:
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "projects", id, domain.ErrProjectNotFound)
}

// deleteByID removes one row. table is always a package constant.
func (s *Store) deleteByID(ctx context.Context, table, id string, notFound error) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// --- remarks ---

const remarkColumns = `id, client_name, company_name, rating, comment, is_approved, created_at`

func scanRemark(row pgx.Row) (*domain.Remark, error) {
	var r domain.Remark
	if err := row.Scan(&r.ID, &r.ClientName, &r.CompanyName, &r.Rating, &r.Comment, &r.IsApproved, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.CreatedAt = r.CreatedAt.UTC()
	return &r, nil
}

func (s *Store) ListRemarks(ctx context.Context) ([]domain.Remark, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+remarkColumns+` FROM remarks ORDER BY created_at DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list remarks: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Remark, 0, 16)
	for rows.Next() {
		r, err := scanRemark(rows)
		if err != nil {
			return nil, fmt.Errorf("scan remark: %w", err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list remarks: %w", err)
	}
	return out, nil
}

func (s *Store) CreateRemark(ctx context.Context, r *domain.Remark) error {
	s.stamp(&r.ID, &r.CreatedAt)

	const q = `
INSERT INTO remarks (id, client_name, company_name, rating, comment, is_approved, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	if _, err := s.pool.Exec(ctx, q, r.ID, r.ClientName, r.CompanyName, r.Rating, r.Comment, r.IsApproved, r.CreatedAt); err != nil {
		return fmt.Errorf("create remark: %w", err)
	}
	return nil
}

func (s *Store) SetRemarkApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error) {
	row := s.pool.QueryRow(ctx, `UPDATE remarks SET is_approved = $2 WHERE id = $1 RETURNING `+remarkColumns, id, approved)
	r, err := scanRemark(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRemarkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("set remark approval: %w", err)
	}
	return r, nil
}

func (s *Store) DeleteRemark(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "remarks", id, domain.ErrRemarkNotFound)
}

// --- contact messages ---

func (s *Store) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	const q = `
SELECT id, first_name, last_name, email, subject, message, created_at
FROM contact_messages
ORDER BY created_at DESC, seq DESC;
`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ContactMessage, 0, 16)
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		m.CreatedAt = m.CreatedAt.UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return out, nil
}

func (s *Store) CreateContact(ctx context.Context, m *domain.ContactMessage) error {
	s.stamp(&m.ID, &m.CreatedAt)

	const q = `
INSERT INTO contact_messages (id, first_name, last_name, email, subject, message, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	if _, err := s.pool.Exec(ctx, q, m.ID, m.FirstName, m.LastName, m.Email, m.Subject, m.Message, m.CreatedAt); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

func (s *Store) DeleteContact(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "contact_messages", id, domain.ErrContactNotFound)
}
