package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tidsreg-be/internal/cache"
	"tidsreg-be/internal/entities"
	"tidsreg-be/internal/repository"
)

const (
	usersCacheKey    = "tidsreg:users"
	projectsCacheKey = "tidsreg:projects"
)

// ReferenceService serves the seed-managed user and project lists
type ReferenceService interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	// Invalidate drops cached lists; called after seeding.
	Invalidate(ctx context.Context) error
}

type referenceService struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
	cache    cache.Cache
	ttl      time.Duration
	log      *slog.Logger
}

// NewReferenceService creates a reference service. cacheClient may be nil.
func NewReferenceService(users repository.UserRepository, projects repository.ProjectRepository, cacheClient cache.Cache, ttl time.Duration, log *slog.Logger) ReferenceService {
	return &referenceService{
		users:    users,
		projects: projects,
		cache:    cacheClient,
		ttl:      ttl,
		log:      log,
	}
}

func (s *referenceService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return cachedList(ctx, s, usersCacheKey, s.users.List)
}

func (s *referenceService) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return cachedList(ctx, s, projectsCacheKey, s.projects.List)
}

func (s *referenceService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, usersCacheKey, projectsCacheKey)
}

// cachedList reads key from the cache and falls back to load. Cache
// failures are logged and never fail the request.
func cachedList[T any](ctx context.Context, s *referenceService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		var cached []T
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, items, s.ttl); err != nil {
			s.log.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return items, nil
}
