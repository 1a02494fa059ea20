// Package sqlite keeps portfolio records in a SQLite file, for single-node
// deployments and local development.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
	"github.com/aditya-2529/portfolio/internal/storage/sqlite/migrations"
)

// Store implements service.Store on database/sql with the modernc driver.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

// Open opens the database at path (":memory:" for a throwaway one) and
// applies the embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	memory := path == ":memory:"
	dsn := path
	if !memory {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Every connection to :memory: is a separate database.
	if memory {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return New(db), nil
}

// New wraps an already migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) stamp(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if createdAt.IsZero() {
		// created_at is stored in milliseconds.
		*createdAt = s.now().UTC().Truncate(time.Millisecond)
	}
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(strings.ToLower(fmt.Sprint(err)), "unique constraint failed")
}

func encodeTags(t domain.Tags) (string, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

type scanner interface {
	Scan(dest ...any) error
}

// --- projects ---

const projectColumns = `id, title, description, image_url, github_url, live_url, tags, created_at`

func scanProject(row scanner) (*domain.Project, error) {
	var (
		p         domain.Project
		tags      string
		createdAt int64
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.GithubURL, &p.LiveURL, &tags, &createdAt); err != nil {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal([]byte(tags), &list); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	p.Tags = domain.Tags(list)
	p.CreatedAt = fromMillis(createdAt)
	return &p, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, rowid DESC`)
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
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE title_key = ?`, domain.TitleKey(title))
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find project by title: %w", err)
	}
	return p, nil
}

func (s *Store) CreateProject(ctx context.Context, p *domain.Project) error {
	s.stamp(&p.ID, &p.CreatedAt)

	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, title_key, description, image_url, github_url, live_url, tags, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, domain.TitleKey(p.Title), p.Description, p.ImageURL, p.GithubURL, p.LiveURL, tags, toMillis(p.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProjectTitleTaken
		}
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	tags, err := encodeTags(in.Tags)
	if err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE projects
		 SET title = ?, title_key = ?, description = ?, image_url = ?, github_url = ?, live_url = ?, tags = ?
		 WHERE id = ?`,
		in.Title, domain.TitleKey(in.Title), in.Description, in.ImageURL, in.GithubURL, in.LiveURL, tags, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrProjectTitleTaken
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	} else if n == 0 {
		return nil, domain.ErrProjectNotFound
	}

	p, err := scanProject(s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("reload project: %w", err)
	}
	return p, nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "projects", id, domain.ErrProjectNotFound)
}

func (s *Store) deleteByID(ctx context.Context, table, id string, notFound error) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// --- remarks ---

const remarkColumns = `id, client_name, company_name, rating, comment, is_approved, created_at`

func scanRemark(row scanner) (*domain.Remark, error) {
	var (
		r         domain.Remark
		createdAt int64
	)
	if err := row.Scan(&r.ID, &r.ClientName, &r.CompanyName, &r.Rating, &r.Comment, &r.IsApproved, &createdAt); err != nil {
		return nil, err
	}
	r.CreatedAt = fromMillis(createdAt)
	return &r, nil
}

func (s *Store) ListRemarks(ctx context.Context) ([]domain.Remark, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+remarkColumns+` FROM remarks ORDER BY created_at DESC, rowid DESC`)
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

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO remarks (id, client_name, company_name, rating, comment, is_approved, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ClientName, r.CompanyName, r.Rating, r.Comment, r.IsApproved, toMillis(r.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create remark: %w", err)
	}
	return nil
}

func (s *Store) SetRemarkApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE remarks SET is_approved = ? WHERE id = ?`, approved, id)
	if err != nil {
		return nil, fmt.Errorf("set remark approval: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("set remark approval: %w", err)
	} else if n == 0 {
		return nil, domain.ErrRemarkNotFound
	}

	r, err := scanRemark(s.db.QueryRowContext(ctx, `SELECT `+remarkColumns+` FROM remarks WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("reload remark: %w", err)
	}
	return r, nil
}

func (s *Store) DeleteRemark(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "remarks", id, domain.ErrRemarkNotFound)
}

// --- contact messages ---

func (s *Store) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, email, subject, message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ContactMessage, 0, 16)
	for rows.Next() {
		var (
			m         domain.ContactMessage
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Subject, &m.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		m.CreatedAt = fromMillis(createdAt)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return out, nil
}

func (s *Store) CreateContact(ctx context.Context, m *domain.ContactMessage) error {
	s.stamp(&m.ID, &m.CreatedAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, first_name, last_name, email, subject, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.FirstName, m.LastName, m.Email, m.Subject, m.Message, toMillis(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

func (s *Store) DeleteContact(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "contact_messages", id, domain.ErrContactNotFound)
}
