package cmd

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"tidsreg-be/internal/middleware"
	"tidsreg-be/internal/repository"
	"tidsreg-be/internal/server"
	"tidsreg-be/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate, seed and serve the HTTP API (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.migrate(ctx); err != nil {
		return err
	}
	if err := a.seed(ctx); err != nil {
		return err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(a.db)
	projectRepo := repository.NewProjectRepository(a.db)
	timeEntryRepo := repository.NewTimeEntryRepository(a.db)

	// Initialize services
	referenceService := service.NewReferenceService(userRepo, projectRepo, a.connectCache(ctx), a.cfg.CacheTTL, a.log)
	if err := referenceService.Invalidate(ctx); err != nil {
		a.log.Warn("failed to invalidate reference cache", slog.String("error", err.Error()))
	}
	timeEntryService := service.NewTimeEntryService(timeEntryRepo, projectRepo, service.TimeEntryOptions{
		ProjectsEnabled:    a.cfg.ProjectsEnabled,
		BreaksEnabled:      a.cfg.BreaksEnabled,
		DeleteRequiresUser: a.cfg.DeleteRequiresUser,
	}, a.log)

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewRouter(server.Deps{
		DB:              a.db,
		References:      referenceService,
		TimeEntries:     timeEntryService,
		RateLimiter:     middleware.NewRateLimiter(ctx, rate.Limit(a.cfg.RateLimitRPS), a.cfg.RateLimitBurst),
		Logger:          a.log,
		ProjectsEnabled: a.cfg.ProjectsEnabled,
		StaticDir:       a.cfg.StaticDir,
	})

	a.log.Info("starting tidsreg",
		slog.Bool("projects_enabled", a.cfg.ProjectsEnabled),
		slog.Bool("breaks_enabled", a.cfg.BreaksEnabled),
		slog.Bool("delete_requires_user", a.cfg.DeleteRequiresUser))

	return server.Run(ctx, a.cfg.Addr(), router, a.cfg.ShutdownTimeout, a.log)
}
