package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	env := map[string]string{
		"DEVMATCH_PRIMARY__ENV":                   "development",
		"DEVMATCH_SERVER__PORT":                   "8080",
		"DEVMATCH_SERVER__READ_TIMEOUT":           "30",
		"DEVMATCH_SERVER__WRITE_TIMEOUT":          "30",
		"DEVMATCH_SERVER__IDLE_TIMEOUT":           "60",
		"DEVMATCH_SERVER__CORS_ALLOWED_ORIGINS":   "http://localhost:3000",
		"DEVMATCH_SERVER__RATE_LIMIT":             "20",
		"DEVMATCH_DATABASE__HOST":                 "localhost",
		"DEVMATCH_DATABASE__PORT":                 "5432",
		"DEVMATCH_DATABASE__USER":                 "postgres",
		"DEVMATCH_DATABASE__PASSWORD":             "postgres",
		"DEVMATCH_DATABASE__NAME":                 "devmatch",
		"DEVMATCH_DATABASE__SSL_MODE":             "disable",
		"DEVMATCH_DATABASE__MAX_OPEN_CONNS":       "25",
		"DEVMATCH_DATABASE__MAX_IDLE_CONNS":       "25",
		"DEVMATCH_DATABASE__CONN_MAX_LIFETIME":    "300",
		"DEVMATCH_DATABASE__CONN_MAX_IDLE_TIME":   "300",
		"DEVMATCH_REDIS__ADDRESS":                 "localhost:6379",
		"DEVMATCH_OBSERVABILITY__LOGGING__LEVEL":  "warn",
		"DEVMATCH_OBSERVABILITY__LOGGING__FORMAT": "console",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, float64(20), cfg.Server.RateLimit)
	assert.Zero(t, cfg.Server.RateLimitBurst)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "console", cfg.Observability.Logging.Format)

	// untouched keys keep their defaults
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.Equal(t, []string{"database", "redis"}, cfg.Observability.HealthChecks.Checks)
	assert.NotEmpty(t, cfg.Integration.EmailFrom)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEVMATCH_DATABASE__HOST", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "config validation failed")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEVMATCH_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "invalid logging level")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "database.max_open_conns", envKey("DEVMATCH_DATABASE__MAX_OPEN_CONNS"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("DEVMATCH_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "local"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.ServiceName = ""
	assert.Error(t, cfg.Validate())
}
