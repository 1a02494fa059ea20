// Package admin drives the admin dashboard: three tabs loaded concurrently and
// mutations that touch local state only after the API confirms them.
package admin

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

// API is the subset of client.Client the dashboard needs.
type API interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListRemarks(ctx context.Context) ([]domain.Remark, error)
	SetRemarkApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error)
	DeleteRemark(ctx context.Context, id string) error

	ListContacts(ctx context.Context) ([]domain.ContactMessage, error)
	DeleteContact(ctx context.Context, id string) error
}

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateError   State = "error"
)

// Tab is the view state of one list.
type Tab[T any] struct {
	State State
	Items []T
	Err   error
}

func (t Tab[T]) clone() Tab[T] {
	t.Items = slices.Clone(t.Items)
	return t
}

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient message for the operator.
type Notification struct {
	Level   Level
	Message string
}

type Dashboard struct {
	api    API
	notify func(Notification)

	mu       sync.Mutex
	projects Tab[domain.Project]
	remarks  Tab[domain.Remark]
	contacts Tab[domain.ContactMessage]
}

// New returns an idle dashboard. notify may be nil.
func New(api API, notify func(Notification)) *Dashboard {
	if notify == nil {
		notify = func(Notification) {}
	}
	return &Dashboard{
		api:      api,
		notify:   notify,
		projects: Tab[domain.Project]{State: StateIdle},
		remarks:  Tab[domain.Remark]{State: StateIdle},
		contacts: Tab[domain.ContactMessage]{State: StateIdle},
	}
}

func (d *Dashboard) Projects() Tab[domain.Project] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.projects.clone()
}

func (d *Dashboard) Remarks() Tab[domain.Remark] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.remarks.clone()
}

func (d *Dashboard) Contacts() Tab[domain.ContactMessage] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contacts.clone()
}

// Load fetches all three lists concurrently. A failing list does not cancel
// the others; each tab ends in loaded or error on its own. The first error is returned.
func (d *Dashboard) Load(ctx context.Context) error {
	d.mu.Lock()
	d.projects.State, d.projects.Err = StateLoading, nil
	d.remarks.State, d.remarks.Err = StateLoading, nil
	d.contacts.State, d.contacts.Err = StateLoading, nil
	d.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error {
		items, err := d.api.ListProjects(ctx)
		d.mu.Lock()
		defer d.mu.Unlock()
		settle(&d.projects, items, err)
		return wrap("projects", err)
	})
	g.Go(func() error {
		items, err := d.api.ListRemarks(ctx)
		d.mu.Lock()
		defer d.mu.Unlock()
		settle(&d.remarks, items, err)
		return wrap("remarks", err)
	})
	g.Go(func() error {
		items, err := d.api.ListContacts(ctx)
		d.mu.Lock()
		defer d.mu.Unlock()
		settle(&d.contacts, items, err)
		return wrap("messages", err)
	})

	if err := g.Wait(); err != nil {
		d.notify(Notification{Level: LevelError, Message: err.Error()})
		return err
	}
	return nil
}

// settle leaves Items untouched on error.
func settle[T any](tab *Tab[T], items []T, err error) {
	if err != nil {
		tab.State, tab.Err = StateError, err
		return
	}
	tab.State, tab.Items, tab.Err = StateLoaded, items, nil
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("load %s: %w", what, err)
}

// fail reports a rejected mutation. Local state is not modified.
func (d *Dashboard) fail(action string, err error) error {
	d.notify(Notification{Level: LevelError, Message: fmt.Sprintf("%s failed: %v", action, err)})
	return err
}

func (d *Dashboard) ok(msg string) {
	d.notify(Notification{Level: LevelSuccess, Message: msg})
}

// --- projects ---

func (d *Dashboard) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	p, err := d.api.CreateProject(ctx, in)
	if err != nil {
		return nil, d.fail("create project", err)
	}

	d.mu.Lock()
	d.projects.Items = append([]domain.Project{*p}, d.projects.Items...)
	d.mu.Unlock()

	d.ok("Project created")
	return p, nil
}

func (d *Dashboard) UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	p, err := d.api.UpdateProject(ctx, id, in)
	if err != nil {
		return nil, d.fail("update project", err)
	}

	d.mu.Lock()
	replace(d.projects.Items, *p, func(x domain.Project) bool { return x.ID == id })
	d.mu.Unlock()

	d.ok("Project updated")
	return p, nil
}

func (d *Dashboard) DeleteProject(ctx context.Context, id string) error {
	if err := d.api.DeleteProject(ctx, id); err != nil {
		return d.fail("delete project", err)
	}

	d.mu.Lock()
	d.projects.Items = slices.DeleteFunc(d.projects.Items, func(x domain.Project) bool { return x.ID == id })
	d.mu.Unlock()

	d.ok("Project deleted")
	return nil
}

// --- remarks ---

func (d *Dashboard) SetRemarkApproval(ctx context.Context, id string, approved bool) (*domain.Remark, error) {
	r, err := d.api.SetRemarkApproval(ctx, id, approved)
	if err != nil {
		return nil, d.fail("update remark", err)
	}

	d.mu.Lock()
	replace(d.remarks.Items, *r, func(x domain.Remark) bool { return x.ID == id })
	d.mu.Unlock()

	if approved {
		d.ok("Remark approved")
	} else {
		d.ok("Remark hidden")
	}
	return r, nil
}

func (d *Dashboard) DeleteRemark(ctx context.Context, id string) error {
	if err := d.api.DeleteRemark(ctx, id); err != nil {
		return d.fail("delete remark", err)
	}

	d.mu.Lock()
	d.remarks.Items = slices.DeleteFunc(d.remarks.Items, func(x domain.Remark) bool { return x.ID == id })
	d.mu.Unlock()

	d.ok("Remark deleted")
	return nil
}

// --- contact messages ---

func (d *Dashboard) DeleteContact(ctx context.Context, id string) error {
	if err := d.api.DeleteContact(ctx, id); err != nil {
		return d.fail("delete message", err)
	}

	d.mu.Lock()
	d.contacts.Items = slices.DeleteFunc(d.contacts.Items, func(x domain.ContactMessage) bool { return x.ID == id })
	d.mu.Unlock()

	d.ok("Message deleted")
	return nil
}

func replace[T any](items []T, v T, match func(T) bool) {
	if i := slices.IndexFunc(items, match); i >= 0 {
		items[i] = v
	}
}
