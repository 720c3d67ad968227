package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Database driver names accepted by DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseDriver string `conf:"default:sqlite,enum:sqlite|postgres,env:DATABASE_DRIVER"`
	DatabaseURL    string `conf:"default:thoron.db,env:DATABASE_URL,noprint"`
	AutoMigrate    bool   `conf:"default:true,env:AUTO_MIGRATE"`
	SeedDemoData   bool   `conf:"default:true,env:SEED_DEMO_DATA"`

	// Redis; empty disables the read cache
	RedisURL      string `conf:"env:REDIS_URL"`
	RedisPoolSize int    `conf:"default:10,env:REDIS_POOL_SIZE"`

	// HTTP
	HTTPAddr          string `conf:"default::3001,env:HTTP_ADDR"`
	RequestsPerMinute int    `conf:"default:100,env:RATE_LIMIT_PER_MINUTE"`
	WorkerAddr        string `conf:"default::3002,env:WORKER_ADDR"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat   string `conf:"default:json,enum:json|text,env:LOG_FORMAT"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Load planning
	MaxLoadWeightLbs float64 `conf:"default:45000,env:MAX_LOAD_WEIGHT_LBS"`

	// CORS: comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:thoron,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`

	// Trace sampling: ratio of root traces kept by OTel, and by Sentry
	TraceSampleRatio       float64 `conf:"default:1,env:OTEL_TRACE_SAMPLE_RATIO"`
	SentryTracesSampleRate float64 `conf:"default:0.2,env:SENTRY_TRACES_SAMPLE_RATE"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// IsDevelopment reports whether dev-only endpoints (data resets) may be mounted.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	for _, origin := range strings.Split(cfg.CORSAllowedOrigins, ",") {
		if strings.TrimSpace(origin) == "*" {
			errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production, not '*'")
			break
		}
	}

	if cfg.MaxLoadWeightLbs <= 0 {
		errs = append(errs, fmt.Sprintf("MAX_LOAD_WEIGHT_LBS must be positive (got %v)", cfg.MaxLoadWeightLbs))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
