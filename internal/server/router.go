package server

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"tidsreg-be/internal/controllers"
	"tidsreg-be/internal/middleware"
	"tidsreg-be/internal/service"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	DB          controllers.Pinger
	References  service.ReferenceService
	TimeEntries service.TimeEntryService
	RateLimiter *middleware.RateLimiter
	Logger      *slog.Logger

	ProjectsEnabled bool
	StaticDir       string // Served for non-API paths when it exists
}

// NewRouter builds the HTTP handler for the API and the static front-end.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(d.Logger))
	router.Use(middleware.RequestLogger())

	healthController := controllers.NewHealthController(d.DB)
	referenceController := controllers.NewReferenceController(d.References)
	timeEntryController := controllers.NewTimeEntryController(d.TimeEntries)
	reportController := controllers.NewReportController(d.TimeEntries)

	// Health checks (no rate limiting)
	router.GET("/healthz", healthController.Liveness)
	router.GET("/readyz", healthController.Readiness)

	api := router.Group("/api")
	{
		api.GET("/users", referenceController.ListUsers)
		if d.ProjectsEnabled {
			api.GET("/projects", referenceController.ListProjects)
		}

		api.GET("/time-entries", timeEntryController.ListTimeEntries)
		api.GET("/summary", reportController.Summary)
		api.GET("/export.csv", reportController.ExportCSV)
		api.GET("/export.xlsx", reportController.ExportXLSX)
		api.GET("/export-summary.xlsx", reportController.ExportSummaryXLSX)

		// Mutating routes are rate limited per client IP
		mutate := api.Group("")
		if d.RateLimiter != nil {
			mutate.Use(d.RateLimiter.LimitMiddleware())
		}
		mutate.POST("/time-entries", timeEntryController.CreateTimeEntry)
		mutate.DELETE("/time-entries/:id", timeEntryController.DeleteTimeEntry)
	}

	router.NoRoute(noRoute(d.StaticDir))

	return router
}

// noRoute answers unknown API paths with JSON and everything else from
// the static directory.
func noRoute(staticDir string) gin.HandlerFunc {
	var files http.Handler
	if info, err := os.Stat(staticDir); staticDir != "" && err == nil && info.IsDir() {
		files = http.FileServer(http.Dir(staticDir))
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if files == nil || path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ikke fundet"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
