package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"tidsreg-be/internal/cache"
	"tidsreg-be/internal/entities"
	"tidsreg-be/internal/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUsers struct {
	users []entities.User
	calls int
	err   error
}

func (f *fakeUsers) List(ctx context.Context) ([]entities.User, error) {
	f.calls++
	return f.users, f.err
}

type fakeProjects struct {
	projects  []entities.Project
	defaultID int64
	calls     int
	err       error
}

func (f *fakeProjects) List(ctx context.Context) ([]entities.Project, error) {
	f.calls++
	return f.projects, f.err
}

func (f *fakeProjects) DefaultID(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.defaultID == 0 {
		return 0, repository.ErrNotFound
	}
	return f.defaultID, nil
}

type fakeEntries struct {
	created   []repository.CreateTimeEntryParams
	createErr error
	summary   []entities.SummaryRow
	deleted   []int64
	deleteErr error
}

func (f *fakeEntries) List(ctx context.Context, r repository.DateRange) ([]entities.EntryRow, error) {
	return []entities.EntryRow{}, nil
}

func (f *fakeEntries) Summary(ctx context.Context, r repository.DateRange) ([]entities.SummaryRow, error) {
	return f.summary, nil
}

func (f *fakeEntries) Create(ctx context.Context, p repository.CreateTimeEntryParams) (*entities.TimeEntry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, p)
	return &entities.TimeEntry{
		ID:              int64(len(f.created)),
		UserID:          p.UserID,
		ProjectID:       p.ProjectID,
		WorkDate:        p.WorkDate,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		BreakMinutes:    p.BreakMinutes,
		DurationMinutes: p.DurationMinutes,
		Note:            p.Note,
		CreatedAt:       time.Now(),
	}, nil
}

func (f *fakeEntries) Delete(ctx context.Context, id int64, userID *int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// memCache is a map-backed cache.Cache.
type memCache struct {
	data   map[string]string
	getErr error
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}}
}

func (m *memCache) Get(ctx context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (m *memCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memCache) SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.Set(ctx, key, string(b), expiration)
}

func (m *memCache) GetJSON(ctx context.Context, key string, dest any) error {
	v, err := m.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(v), dest)
}

var errBoom = errors.New("boom")
