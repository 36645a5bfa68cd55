package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidsreg-be/internal/entities"
)

func TestReferenceService_WithoutCache(t *testing.T) {
	users := &fakeUsers{users: []entities.User{{ID: 1, Name: "Andreas Boje"}}}
	svc := NewReferenceService(users, &fakeProjects{}, nil, time.Minute, discardLogger())

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, users.users, got)

	_, err = svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, users.calls)
	assert.NoError(t, svc.Invalidate(context.Background()))
}

func TestReferenceService_CachesLists(t *testing.T) {
	ctx := context.Background()
	users := &fakeUsers{users: []entities.User{{ID: 1, Name: "Andreas Boje"}, {ID: 2, Name: "Sara Murray"}}}
	projects := &fakeProjects{projects: []entities.Project{{ID: 1, Name: "Drift"}}}
	mc := newMemCache()
	svc := NewReferenceService(users, projects, mc, time.Minute, discardLogger())

	for range 3 {
		got, err := svc.ListUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, users.users, got)
	}
	assert.Equal(t, 1, users.calls)

	got, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, projects.projects, got)
	_, _ = svc.ListProjects(ctx)
	assert.Equal(t, 1, projects.calls)

	require.NoError(t, svc.Invalidate(ctx))
	_, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, users.calls)
}

func TestReferenceService_CacheFailureFallsBack(t *testing.T) {
	users := &fakeUsers{users: []entities.User{{ID: 1, Name: "Hartvig"}}}
	mc := newMemCache()
	mc.getErr = errBoom
	svc := NewReferenceService(users, &fakeProjects{}, mc, time.Minute, discardLogger())

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, users.users, got)
}

func TestReferenceService_RepositoryError(t *testing.T) {
	svc := NewReferenceService(&fakeUsers{err: errBoom}, &fakeProjects{}, newMemCache(), time.Minute, discardLogger())

	_, err := svc.ListUsers(context.Background())
	assert.ErrorIs(t, err, errBoom)
}
