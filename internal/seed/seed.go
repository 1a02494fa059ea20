// Package seed loads demo projects and remarks into a running portfolio.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aditya-2529/portfolio/internal/client"
	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
	"github.com/aditya-2529/portfolio/internal/portfolio/service"
)

//go:embed demo.yaml
var demo []byte

type Project struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	ImageURL    string    `yaml:"imageUrl"`
	Tags        []string  `yaml:"tags"`
	GithubURL   string    `yaml:"githubUrl"`
	LiveURL     string    `yaml:"liveUrl"`
	CreatedAt   time.Time `yaml:"createdAt"`
}

type Remark struct {
	ClientName  string    `yaml:"clientName"`
	CompanyName string    `yaml:"companyName"`
	Rating      int       `yaml:"rating"`
	Comment     string    `yaml:"comment"`
	IsApproved  bool      `yaml:"isApproved"`
	CreatedAt   time.Time `yaml:"createdAt"`
}

type Data struct {
	Projects []Project `yaml:"projects"`
	Remarks  []Remark  `yaml:"remarks"`
}

// Demo returns the embedded demo data.
func Demo() (*Data, error) {
	return Load(bytes.NewReader(demo))
}

func Load(r io.Reader) (*Data, error) {
	var d Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return &d, nil
}

// Target is where seed data is written. client.Client satisfies it, and
// Services adapts the in-process services.
type Target interface {
	CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	ListRemarks(ctx context.Context) ([]domain.Remark, error)
	AddRemark(ctx context.Context, in domain.RemarkInput) (*domain.Remark, error)
	SetRemarkApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error)
}

var _ Target = (*client.Client)(nil)

// Result counts what Apply wrote and skipped.
type Result struct {
	ProjectsCreated int
	ProjectsSkipped int
	RemarksCreated  int
	RemarksSkipped  int
}

// Apply writes d oldest first, so newest-first listings keep the demo order.
// Projects whose title exists and remarks already present are skipped.
func Apply(ctx context.Context, t Target, d *Data, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var res Result

	projects := append([]Project(nil), d.Projects...)
	sort.SliceStable(projects, func(i, j int) bool { return projects[i].CreatedAt.Before(projects[j].CreatedAt) })

	for _, p := range projects {
		_, err := t.CreateProject(ctx, domain.ProjectInput{
			Title:       p.Title,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			GithubURL:   p.GithubURL,
			LiveURL:     p.LiveURL,
			Tags:        domain.Tags(p.Tags),
		})
		if isConflict(err) {
			logger.Debug("project exists, skipping", "title", p.Title)
			res.ProjectsSkipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("seed project %q: %w", p.Title, err)
		}
		res.ProjectsCreated++
	}

	existing, err := t.ListRemarks(ctx)
	if err != nil {
		return res, fmt.Errorf("list remarks: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, r := range existing {
		seen[remarkKey(r.ClientName, r.Comment)] = true
	}

	remarks := append([]Remark(nil), d.Remarks...)
	sort.SliceStable(remarks, func(i, j int) bool { return remarks[i].CreatedAt.Before(remarks[j].CreatedAt) })

	for _, r := range remarks {
		if seen[remarkKey(r.ClientName, r.Comment)] {
			res.RemarksSkipped++
			continue
		}
		created, err := t.AddRemark(ctx, domain.RemarkInput{
			ClientName:  r.ClientName,
			CompanyName: r.CompanyName,
			Rating:      r.Rating,
			Comment:     r.Comment,
		})
		if err != nil {
			return res, fmt.Errorf("seed remark from %q: %w", r.ClientName, err)
		}
		if r.IsApproved {
			if _, err := t.SetRemarkApproval(ctx, created.ID, true); err != nil {
				return res, fmt.Errorf("approve remark from %q: %w", r.ClientName, err)
			}
		}
		res.RemarksCreated++
	}

	logger.Info("seed applied",
		"projects_created", res.ProjectsCreated, "projects_skipped", res.ProjectsSkipped,
		"remarks_created", res.RemarksCreated, "remarks_skipped", res.RemarksSkipped,
	)
	return res, nil
}

func remarkKey(clientName, comment string) string {
	return clientName + "\x00" + comment
}

func isConflict(err error) bool {
	return err != nil && (errors.Is(err, domain.ErrProjectTitleTaken) || client.IsKind(err, client.KindConflict))
}

// Services writes seed data straight through the in-process services.
type Services struct {
	Projects *service.ProjectService
	Remarks  *service.RemarkService
}

func (s Services) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	return s.Projects.Create(ctx, in)
}

func (s Services) ListRemarks(ctx context.Context) ([]domain.Remark, error) {
	return s.Remarks.List(ctx)
}

func (s Services) AddRemark(ctx context.Context, in domain.RemarkInput) (*domain.Remark, error) {
	return s.Remarks.Create(ctx, in)
}

func (s Services) SetRemarkApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error) {
	return s.Remarks.SetApproval(ctx, id, approved)
}
