// Package config loads the service configuration from the environment.
//
// Variables are read with the DEVMATCH_ prefix (a `.env` file in the working
// directory is loaded first). A double underscore separates nesting levels and
// a single underscore stays part of the key:
//
//	DEVMATCH_SERVER__PORT            -> server.port
//	DEVMATCH_DATABASE__MAX_OPEN_CONNS -> database.max_open_conns
//	DEVMATCH_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
//
// The decoded Config is validated with go-playground/validator struct tags and
// then by ObservabilityConfig.Validate.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// loads .env into the process environment before LoadConfig runs
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "DEVMATCH_"

// ServiceName tags logs and APM data.
const ServiceName = "devmatch"

// Config is the root configuration object.
//
// Observability is optional; unset values fall back to DefaultObservabilityConfig.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the runtime environment name: local, development or production.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production test"`
}

// ServerConfig groups settings for the HTTP server. Timeouts are in seconds.
// RateLimit is in requests per second per client IP; zero disables it.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	RateLimit          float64  `koanf:"rate_limit" validate:"min=0"`
	RateLimitBurst     int      `koanf:"rate_limit_burst" validate:"min=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains the Redis address ("host:port") used by the job queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// IntegrationConfig holds credentials of third-party services.
//
// An empty ResendAPIKey disables outgoing email; notification jobs are then
// logged and dropped.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// envKey maps DEVMATCH_DATABASE__MAX_OPEN_CONNS to database.max_open_conns.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig reads the environment, validates the result and applies
// observability defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	// Defaults are decoded over, so a partial observability block keeps the
	// remaining default values.
	cfg := &Config{Observability: DefaultObservabilityConfig()}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.Observability.ServiceName = ServiceName
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	if cfg.Integration.EmailFrom == "" {
		cfg.Integration.EmailFrom = "DevMatch <onboarding@resend.dev>"
	}

	return cfg, nil
}

// IsLocal reports whether the service runs on a developer machine. SQL
// tracing is enabled and migrations are left to `devmatch migrate` there.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
