package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Port:            "3000",
		DatabaseURL:     "postgres://u:p@localhost:5432/db?sslmode=disable",
		DBMaxOpenConns:  10,
		DBMaxIdleConns:  5,
		CacheTTL:        time.Minute,
		SeedProjects:    []string{"Drift"},
		RateLimitRPS:    5,
		RateLimitBurst:  10,
		ShutdownTimeout: time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		errorString string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:        "non-numeric port",
			mutate:      func(c *Config) { c.Port = "abc" },
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "empty database url",
			mutate:      func(c *Config) { c.DatabaseURL = "" },
			errorString: "DATABASE_URL cannot be empty",
		},
		{
			name:        "wrong database scheme",
			mutate:      func(c *Config) { c.DatabaseURL = "mysql://u:p@localhost/db" },
			errorString: "invalid DATABASE_URL scheme 'mysql'",
		},
		{
			name:        "idle above open",
			mutate:      func(c *Config) { c.DBMaxIdleConns = 20 },
			errorString: "invalid DB_MAX_IDLE_CONNS 20",
		},
		{
			name: "cache ttl with redis",
			mutate: func(c *Config) {
				c.RedisURL = "redis://localhost:6379/0"
				c.CacheTTL = 0
			},
			errorString: "invalid CACHE_TTL",
		},
		{
			name:        "no seed projects",
			mutate:      func(c *Config) { c.SeedProjects = nil },
			errorString: "SEED_PROJECTS must name at least one project",
		},
		{
			name:        "zero rate",
			mutate:      func(c *Config) { c.RateLimitRPS = 0 },
			errorString: "invalid RATE_LIMIT_RPS",
		},
		{
			name:        "bad log level",
			mutate:      func(c *Config) { c.LogLevel = "loud" },
			errorString: "invalid LOG_LEVEL 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errorString == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.LogFormat = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 'abc'")
	assert.Contains(t, err.Error(), "invalid LOG_FORMAT 'xml'")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "PROJECTS_ENABLED", "BREAKS_ENABLED", "DELETE_REQUIRES_USER", "SEED_PROJECTS", "PURGE_USERS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres://appuser:apprandompass@db:5432/appdb?sslmode=disable", cfg.DatabaseURL)
	assert.False(t, cfg.ProjectsEnabled)
	assert.False(t, cfg.BreaksEnabled)
	assert.True(t, cfg.DeleteRequiresUser)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PROJECTS_ENABLED", "true")
	t.Setenv("BREAKS_ENABLED", "1")
	t.Setenv("DELETE_REQUIRES_USER", "false")
	t.Setenv("SEED_PROJECTS", " Drift , Udvikling,, Support ")
	t.Setenv("PURGE_USERS", "")
	t.Setenv("CACHE_TTL", "90s")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.ProjectsEnabled)
	assert.True(t, cfg.BreaksEnabled)
	assert.False(t, cfg.DeleteRequiresUser)
	assert.Equal(t, []string{"Drift", "Udvikling", "Support"}, cfg.SeedProjects)
	assert.Empty(t, cfg.PurgeUsers)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
}
