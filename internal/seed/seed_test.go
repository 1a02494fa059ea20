package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-2529/portfolio/internal/portfolio/service"
	"github.com/aditya-2529/portfolio/internal/seed"
	"github.com/aditya-2529/portfolio/internal/storage/redisstore"
	"github.com/aditya-2529/portfolio/internal/storage/sqlite"
)

func TestDemo(t *testing.T) {
	d, err := seed.Demo()
	require.NoError(t, err)

	require.Len(t, d.Projects, 6)
	require.Len(t, d.Remarks, 5)
	assert.Equal(t, "E-Commerce Platform", d.Projects[0].Title)
	assert.Equal(t, []string{"React", "Node.js", "MongoDB", "Stripe"}, d.Projects[0].Tags)
	assert.Equal(t, 2024, d.Projects[0].CreatedAt.Year())
	assert.False(t, d.Remarks[4].IsApproved)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := seed.Load(strings.NewReader("projects:\n  - titel: typo\n"))
	assert.Error(t, err)
}

func TestApply_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	target := seed.Services{
		Projects: service.NewProjectService(store, nil),
		Remarks:  service.NewRemarkService(store, nil),
	}
	d, err := seed.Demo()
	require.NoError(t, err)

	res, err := seed.Apply(ctx, target, d, nil)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{ProjectsCreated: 6, RemarksCreated: 5}, res)

	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 6)

	remarks, err := store.ListRemarks(ctx)
	require.NoError(t, err)
	require.Len(t, remarks, 5)
	assert.Len(t, service.FilterApproved(remarks), 4)

	res, err = seed.Apply(ctx, target, d, nil)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{ProjectsSkipped: 6, RemarksSkipped: 5}, res)

	projects, err = store.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 6)
}

func TestApply_KeepsDemoOrderOnRedis(t *testing.T) {
	ctx := context.Background()
	d, err := seed.Demo()
	require.NoError(t, err)

	wantProjects := []string{
		"Crypto Dashboard", "Fitness Tracker", "Real Estate Finder",
		"AI Content Generator", "Task Management App", "E-Commerce Platform",
	}
	wantRemarks := []string{"Pending Review", "David Kim", "Emily Rodriguez", "Michael Chen", "Sarah Johnson"}

	for run := 0; run < 10; run++ {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		store := redisstore.New(client)

		target := seed.Services{
			Projects: service.NewProjectService(store, nil),
			Remarks:  service.NewRemarkService(store, nil),
		}
		_, err := seed.Apply(ctx, target, d, nil)
		require.NoError(t, err)

		projects, err := store.ListProjects(ctx)
		require.NoError(t, err)
		gotProjects := make([]string, 0, len(projects))
		for _, p := range projects {
			gotProjects = append(gotProjects, p.Title)
		}
		assert.Equal(t, wantProjects, gotProjects, "run %d", run)

		remarks, err := store.ListRemarks(ctx)
		require.NoError(t, err)
		gotRemarks := make([]string, 0, len(remarks))
		for _, r := range remarks {
			gotRemarks = append(gotRemarks, r.ClientName)
		}
		assert.Equal(t, wantRemarks, gotRemarks, "run %d", run)

		_ = client.Close()
		mr.Close()
	}
}
