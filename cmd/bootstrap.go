package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"tidsreg-be/internal/cache"
	"tidsreg-be/internal/config"
	"tidsreg-be/internal/database"
	"tidsreg-be/internal/logging"
)

// app holds the process-wide resources shared by the subcommands.
type app struct {
	cfg *config.Config
	log *slog.Logger
	db  *sql.DB
}

// bootstrap loads and validates configuration, installs the default
// logger and opens the database pool.
func bootstrap(ctx context.Context) (*app, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	db, err := database.NewConnection(ctx, cfg.DatabaseURL, database.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database",
		slog.Int("max_open_conns", cfg.DBMaxOpenConns),
		slog.Int("max_idle_conns", cfg.DBMaxIdleConns))

	return &app{cfg: cfg, log: logger, db: db}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("failed to close database", slog.String("error", err.Error()))
	}
}

func (a *app) migrate(ctx context.Context) error {
	if err := database.RunMigrations(ctx, a.db); err != nil {
		return err
	}
	a.log.Info("migrations applied")
	return nil
}

func (a *app) seed(ctx context.Context) error {
	err := database.Seed(ctx, a.db, database.SeedData{
		Users:           database.DefaultUsers,
		Projects:        a.cfg.SeedProjects,
		PurgeUsers:      a.cfg.PurgeUsers,
		ProjectsEnabled: a.cfg.ProjectsEnabled,
	}, a.log)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}

// connectCache connects to Redis when configured. The service keeps running
// without a cache if Redis is unreachable.
func (a *app) connectCache(ctx context.Context) cache.Cache {
	if a.cfg.RedisURL == "" {
		return nil
	}

	cacheClient, err := cache.NewRedisCache(ctx, a.cfg.RedisURL)
	if err != nil {
		a.log.Warn("failed to connect to Redis, continuing without cache", slog.String("error", err.Error()))
		return nil
	}
	a.log.Info("connected to Redis cache")
	return cacheClient
}
