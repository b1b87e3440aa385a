package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Table sources
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	// Ratings table
	TableSource   string `envconfig:"TABLE_SOURCE" default:"csv"`
	KenPomCSVPath string `envconfig:"KENPOM_CSV_PATH" default:"kenpom_all_teams.csv"`
	KenPomSeason  int    `envconfig:"KENPOM_SEASON" default:"2025"`

	// Coaching notes override (empty = embedded notes)
	NotesPath string `envconfig:"NOTES_PATH" default:""`

	// Database
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     int    `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"ncaam"`
	DatabaseUser     string `envconfig:"DATABASE_USER" default:"ncaam"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" default:""`
	DatabaseSSLMode  string `envconfig:"DATABASE_SSL_MODE" default:"disable"`

	// Redis
	EnableCache   bool          `envconfig:"ENABLE_CACHE" default:"false"`
	RedisHost     string        `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int           `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTLTable time.Duration `envconfig:"CACHE_TTL_TABLE" default:"24h"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// HTTP server
	HTTPPort            int           `envconfig:"HTTP_PORT" default:"8080"`
	HTTPShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"true"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9090"`
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if present
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.TableSource {
	case SourceCSV:
		if c.KenPomCSVPath == "" {
			return fmt.Errorf("KENPOM_CSV_PATH is required when TABLE_SOURCE=csv")
		}
	case SourcePostgres:
		if c.DatabasePassword == "" {
			return fmt.Errorf("DATABASE_PASSWORD is required when TABLE_SOURCE=postgres")
		}
		if c.KenPomSeason <= 0 {
			return fmt.Errorf("KENPOM_SEASON must be positive")
		}
	default:
		return fmt.Errorf("TABLE_SOURCE must be %q or %q, got %q", SourceCSV, SourcePostgres, c.TableSource)
	}

	if c.EnableCache && c.CacheTTLTable <= 0 {
		return fmt.Errorf("CACHE_TTL_TABLE must be positive when caching is enabled")
	}

	if c.EnableMetrics && c.MetricsPort == c.HTTPPort {
		return fmt.Errorf("METRICS_PORT and HTTP_PORT must differ")
	}

	return nil
}

// RedisAddr returns the Redis address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// MustLoad loads configuration or exits on error
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
