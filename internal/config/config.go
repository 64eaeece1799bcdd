// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"-"`
	APIBasePath   string        `mapstructure:"API_BASE_PATH"`
	CORSOrigins   []string      `mapstructure:"-"`

	// Database Configuration
	DBDriver           string        `mapstructure:"DB_DRIVER"`
	DatabaseURL        string        `mapstructure:"DATABASE_URL"`
	DatabaseServiceURL string        `mapstructure:"DATABASE_SERVICE_URL"`
	DBMaxIdleConns     int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns     int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime  time.Duration `mapstructure:"-"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Application Specific Configuration
	SearchResultLimit int `mapstructure:"SEARCH_RESULT_LIMIT"`

	// Rate limiting for write endpoints; LimiterRPS <= 0 disables it.
	LimiterRPS   float64       `mapstructure:"LIMITER_RPS"`
	LimiterBurst int           `mapstructure:"LIMITER_BURST"`
	LimiterTTL   time.Duration `mapstructure:"-"`

	// Cron Jobs
	ReferenceDataJobSchedule string `mapstructure:"REFERENCE_DATA_JOB_SCHEDULE"`

	// Elasticsearch Configuration
	ElasticsearchURL string `mapstructure:"ELASTICSEARCH_URL"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)
	v.SetDefault("API_BASE_PATH", "/api")
	v.SetDefault("CORS_ORIGINS", "*")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_SERVICE_URL", "")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 60)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("SEARCH_RESULT_LIMIT", 50)

	v.SetDefault("LIMITER_RPS", 0)
	v.SetDefault("LIMITER_BURST", 10)
	v.SetDefault("LIMITER_TTL_MINUTES", 10)

	v.SetDefault("REFERENCE_DATA_JOB_SCHEDULE", "@hourly")

	// Empty disables the sync-listings export.
	v.SetDefault("ELASTICSEARCH_URL", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.DBConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES")) * time.Minute
	cfg.LimiterTTL = time.Duration(v.GetInt("LIMITER_TTL_MINUTES")) * time.Minute
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.APIBasePath = "/" + strings.Trim(cfg.APIBasePath, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the process cannot start without.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("FATAL: unsupported DB_DRIVER %q (expected %q or %q)", c.DBDriver, DriverPostgres, DriverSQLite)
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("FATAL: DATABASE_URL is not set. The data store endpoint is required")
	}
	if c.SearchResultLimit <= 0 {
		return fmt.Errorf("FATAL: SEARCH_RESULT_LIMIT must be positive, got %d", c.SearchResultLimit)
	}
	return nil
}

// ServiceURL returns the privileged connection string, falling back to the public one.
func (c *Config) ServiceURL() string {
	if strings.TrimSpace(c.DatabaseServiceURL) != "" {
		return c.DatabaseServiceURL
	}
	return c.DatabaseURL
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
