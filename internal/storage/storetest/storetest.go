// Package storetest holds the behaviour every service.Store backend must share.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
	"github.com/aditya-2529/portfolio/internal/portfolio/service"
)

// Run exercises a fresh, empty store returned by newStore for each subtest.
func Run(t *testing.T, newStore func(t *testing.T) service.Store) {
	t.Helper()

	t.Run("projects", func(t *testing.T) { testProjects(t, newStore(t)) })
	t.Run("project title uniqueness", func(t *testing.T) { testProjectTitles(t, newStore(t)) })
	t.Run("project update", func(t *testing.T) { testProjectUpdate(t, newStore(t)) })
	t.Run("remarks", func(t *testing.T) { testRemarks(t, newStore(t)) })
	t.Run("contacts", func(t *testing.T) { testContacts(t, newStore(t)) })
	t.Run("same instant keeps write order", func(t *testing.T) { testSameInstant(t, newStore(t)) })
	t.Run("stamped records keep write order", func(t *testing.T) { testStampedOrder(t, newStore(t)) })
	t.Run("ping", func(t *testing.T) { require.NoError(t, newStore(t).Ping(context.Background())) })
}

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func project(title string, offset time.Duration) *domain.Project {
	return &domain.Project{
		Title:       title,
		Description: title + " description",
		GithubURL:   "https://github.com/example/" + title,
		Tags:        domain.Tags{"Go", "Redis"},
		CreatedAt:   base.Add(offset),
	}
}

func testProjects(t *testing.T, s service.Store) {
	ctx := context.Background()

	list, err := s.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	older := project("Older", 0)
	newer := project("Newer", time.Minute)
	require.NoError(t, s.CreateProject(ctx, older))
	require.NoError(t, s.CreateProject(ctx, newer))
	assert.NotEmpty(t, older.ID)
	assert.NotEqual(t, older.ID, newer.ID)

	list, err = s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Newer", list[0].Title)
	assert.Equal(t, "Older", list[1].Title)
	assert.Equal(t, []string{"Go", "Redis"}, []string(list[1].Tags))
	assert.True(t, base.Equal(list[1].CreatedAt), "createdAt round-trips")

	fresh := &domain.Project{Title: "Stamped", Description: "d", GithubURL: "g"}
	require.NoError(t, s.CreateProject(ctx, fresh))
	assert.False(t, fresh.CreatedAt.IsZero())

	require.NoError(t, s.DeleteProject(ctx, older.ID))
	list, err = s.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	assert.ErrorIs(t, s.DeleteProject(ctx, older.ID), domain.ErrProjectNotFound)
	assert.ErrorIs(t, s.DeleteProject(ctx, "missing"), domain.ErrNotFound)
}

func testProjectTitles(t *testing.T, s service.Store) {
	ctx := context.Background()

	p := project("Crypto Dashboard", 0)
	require.NoError(t, s.CreateProject(ctx, p))

	found, err := s.FindProjectByTitle(ctx, "  crypto DASHBOARD ")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	_, err = s.FindProjectByTitle(ctx, "Nope")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	err = s.CreateProject(ctx, project("CRYPTO dashboard", time.Second))
	assert.ErrorIs(t, err, domain.ErrProjectTitleTaken)

	list, err := s.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Deleting frees the title.
	require.NoError(t, s.DeleteProject(ctx, p.ID))
	require.NoError(t, s.CreateProject(ctx, project("Crypto Dashboard", time.Minute)))
}

func testProjectUpdate(t *testing.T, s service.Store) {
	ctx := context.Background()

	a := project("Alpha", 0)
	b := project("Beta", time.Second)
	require.NoError(t, s.CreateProject(ctx, a))
	require.NoError(t, s.CreateProject(ctx, b))

	updated, err := s.UpdateProject(ctx, a.ID, domain.ProjectInput{
		Title:       "Alpha v2",
		Description: "rewritten",
		GithubURL:   "https://github.com/example/alpha",
		LiveURL:     "https://alpha.example.com",
		Tags:        domain.Tags{"Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, "Alpha v2", updated.Title)
	assert.Equal(t, "https://alpha.example.com", updated.LiveURL)
	assert.True(t, base.Equal(updated.CreatedAt), "createdAt is preserved")

	// The old title is released, the new one is claimed.
	_, err = s.FindProjectByTitle(ctx, "Alpha")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	found, err := s.FindProjectByTitle(ctx, "alpha v2")
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)

	// Keeping its own title is fine, taking another's is not.
	_, err = s.UpdateProject(ctx, b.ID, domain.ProjectInput{Title: "Beta", Description: "same", GithubURL: "g"})
	require.NoError(t, err)
	_, err = s.UpdateProject(ctx, b.ID, domain.ProjectInput{Title: "ALPHA V2", Description: "d", GithubURL: "g"})
	assert.ErrorIs(t, err, domain.ErrProjectTitleTaken)

	_, err = s.UpdateProject(ctx, "missing", domain.ProjectInput{Title: "Gamma", Description: "d", GithubURL: "g"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	list, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Beta", list[0].Title)
	assert.Equal(t, "same", list[0].Description)
}

func testRemarks(t *testing.T, s service.Store) {
	ctx := context.Background()

	first := &domain.Remark{ClientName: "Ada", Rating: 5, Comment: "Great", CreatedAt: base}
	second := &domain.Remark{ClientName: "Linus", CompanyName: "Kernel", Rating: 3, Comment: "Fine", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, s.CreateRemark(ctx, first))
	require.NoError(t, s.CreateRemark(ctx, second))

	list, err := s.ListRemarks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Linus", list[0].ClientName)
	assert.Equal(t, "Kernel", list[0].CompanyName)
	assert.False(t, list[0].IsApproved)

	r, err := s.SetRemarkApproval(ctx, first.ID, true)
	require.NoError(t, err)
	assert.True(t, r.IsApproved)
	assert.Equal(t, "Ada", r.ClientName)

	// Setting the same value twice is not a toggle.
	r, err = s.SetRemarkApproval(ctx, first.ID, true)
	require.NoError(t, err)
	assert.True(t, r.IsApproved)

	list, err = s.ListRemarks(ctx)
	require.NoError(t, err)
	assert.True(t, list[1].IsApproved)

	_, err = s.SetRemarkApproval(ctx, "missing", true)
	assert.ErrorIs(t, err, domain.ErrRemarkNotFound)

	require.NoError(t, s.DeleteRemark(ctx, second.ID))
	assert.ErrorIs(t, s.DeleteRemark(ctx, second.ID), domain.ErrRemarkNotFound)

	list, err = s.ListRemarks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)
}

func testContacts(t *testing.T, s service.Store) {
	ctx := context.Background()

	m1 := &domain.ContactMessage{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Subject: "Hi", Message: "Hello", CreatedAt: base}
	m2 := &domain.ContactMessage{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Subject: "Job", Message: "Offer", CreatedAt: base.Add(time.Minute)}
	require.NoError(t, s.CreateContact(ctx, m1))
	require.NoError(t, s.CreateContact(ctx, m2))

	list, err := s.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alan", list[0].FirstName)
	assert.Equal(t, "grace@example.com", list[1].Email)

	require.NoError(t, s.DeleteContact(ctx, m1.ID))
	assert.ErrorIs(t, s.DeleteContact(ctx, m1.ID), domain.ErrContactNotFound)

	list, err = s.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

const burst = 10

// Records sharing a createdAt list newest write first.
func testSameInstant(t *testing.T, s service.Store) {
	ctx := context.Background()

	var want []string
	for i := 0; i < burst; i++ {
		p := project(fmt.Sprintf("p%d", i), 0)
		require.NoError(t, s.CreateProject(ctx, p))
		r := &domain.Remark{ClientName: fmt.Sprintf("c%d", i), Rating: 4, Comment: "ok", CreatedAt: base}
		require.NoError(t, s.CreateRemark(ctx, r))
		m := &domain.ContactMessage{FirstName: fmt.Sprintf("m%d", i), LastName: "L", Email: "m@example.com", Subject: "s", Message: "m", CreatedAt: base}
		require.NoError(t, s.CreateContact(ctx, m))
		want = append([]string{fmt.Sprint(i)}, want...)
	}

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	remarks, err := s.ListRemarks(ctx)
	require.NoError(t, err)
	contacts, err := s.ListContacts(ctx)
	require.NoError(t, err)

	var gotP, gotR, gotM []string
	for i := range projects {
		gotP = append(gotP, projects[i].Title[1:])
	}
	for i := range remarks {
		gotR = append(gotR, remarks[i].ClientName[1:])
	}
	for i := range contacts {
		gotM = append(gotM, contacts[i].FirstName[1:])
	}
	assert.Equal(t, want, gotP, "projects")
	assert.Equal(t, want, gotR, "remarks")
	assert.Equal(t, want, gotM, "contacts")
}

// Back-to-back writes stamped by the store list in reverse write order, and
// the createdAt handed back on create is the one later reads return.
func testStampedOrder(t *testing.T, s service.Store) {
	ctx := context.Background()

	created := make(map[string]time.Time, burst)
	var want []string
	for i := 0; i < burst; i++ {
		r := &domain.Remark{ClientName: fmt.Sprintf("c%d", i), Rating: 5, Comment: "quick"}
		require.NoError(t, s.CreateRemark(ctx, r))
		created[r.ID] = r.CreatedAt
		want = append([]string{r.ID}, want...)

		p := &domain.Project{Title: fmt.Sprintf("stamped %d", i), Description: "d", GithubURL: "g"}
		require.NoError(t, s.CreateProject(ctx, p))
		created[p.ID] = p.CreatedAt
	}

	remarks, err := s.ListRemarks(ctx)
	require.NoError(t, err)
	got := make([]string, 0, len(remarks))
	for _, r := range remarks {
		got = append(got, r.ID)
		assert.True(t, created[r.ID].Equal(r.CreatedAt), "remark createdAt %s vs %s", created[r.ID], r.CreatedAt)
	}
	assert.Equal(t, want, got)

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, burst)
	assert.Equal(t, fmt.Sprintf("stamped %d", burst-1), projects[0].Title)
	for _, p := range projects {
		assert.True(t, created[p.ID].Equal(p.CreatedAt), "project createdAt %s vs %s", created[p.ID], p.CreatedAt)
	}
}
