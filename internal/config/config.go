package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration, loaded from the
// environment with an optional .env file for local development
type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	DatabaseType   string `envconfig:"DB_TYPE" default:"sqlite"`
	DatabasePath   string `envconfig:"DB_PATH" default:"./escapehint.db"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"./migrations"`

	AdminPassword string        `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	JWTSecret     string        `envconfig:"JWT_SECRET" default:"default_secret_for_dev"`
	TokenTTL      time.Duration `envconfig:"TOKEN_TTL" default:"2h"`

	// APIRateLimit is requests per minute per client IP
	APIRateLimit int `envconfig:"API_RATE_LIMIT" default:"100"`
	// LoginRateLimit is login attempts per 15 minutes per client IP
	LoginRateLimit int `envconfig:"LOGIN_RATE_LIMIT" default:"5"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment. A missing .env file
// is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	// Accept the same dialect aliases the database layer resolves
	switch strings.ToLower(cfg.DatabaseType) {
	case "sqlite", "sqlite3", "":
	case "postgres", "postgresql", "mysql":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for DB_TYPE %q", cfg.DatabaseType)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", cfg.DatabaseType)
	}

	return &cfg, nil
}
