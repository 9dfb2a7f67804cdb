// Package config loads service configuration from config.yaml with
// environment variable overrides. Secrets (database password, provider API
// keys) come from the environment only and never live in YAML.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for sundial-engine.
// Environment variables always override YAML values for fields that support
// both.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Database configuration (optional; enables the relational catalog)
	Database DatabaseConfig `yaml:"database"`

	// AI provider configuration
	AI AIConfig `yaml:"ai"`

	// Default schedule constraints, used when a request omits them
	Schedule ScheduleConfig `yaml:"schedule"`
}

// DatabaseConfig holds PostgreSQL configuration. When Enabled is false the
// service runs entirely on the built-in static catalog.
type DatabaseConfig struct {
	Enabled        bool   `yaml:"enabled" env:"PGENABLED" env-default:"false"`
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"sundial"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"sundial_engine"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"10"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MigrationsPath string `yaml:"migrations_path" env:"PGMIGRATIONS_PATH" env-default:"migrations"`
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// AIConfig selects and parameterizes the LLM provider. An empty API key
// disables the provider; commentary and analysis then use their deterministic
// fallbacks.
type AIConfig struct {
	Provider       string  `yaml:"provider" env:"AI_PROVIDER" env-default:"anthropic"`
	Endpoint       string  `yaml:"endpoint" env:"AI_ENDPOINT" env-default:"https://api.deepseek.com/v1"`
	Model          string  `yaml:"model" env:"AI_MODEL" env-default:"claude-sonnet-4-5-20250929"`
	APIKey         string  `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML
	MaxTokens      int     `yaml:"max_tokens" env:"AI_MAX_TOKENS" env-default:"2048"`
	Temperature    float64 `yaml:"temperature" env:"AI_TEMPERATURE" env-default:"0.9"`
	TimeoutSeconds int     `yaml:"timeout_seconds" env:"AI_TIMEOUT_SECONDS" env-default:"30"`
}

// Timeout returns the per-request provider timeout.
func (c *AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ScheduleConfig holds the default daily anchors for schedule generation.
type ScheduleConfig struct {
	Breakfast string `yaml:"breakfast" env:"SCHEDULE_BREAKFAST" env-default:"08:00"`
	Lunch     string `yaml:"lunch" env:"SCHEDULE_LUNCH" env-default:"12:30"`
	Dinner    string `yaml:"dinner" env:"SCHEDULE_DINNER" env-default:"18:30"`
	SleepTime string `yaml:"sleep_time" env:"SCHEDULE_SLEEP" env-default:"23:00"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	return loadFrom("config.yaml", version)
}

func loadFrom(path, version string) (*Config, error) {
	cfg := &Config{Version: version}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AI.Provider {
	case "anthropic", "deepseek":
	default:
		return fmt.Errorf("unknown ai provider %q", c.AI.Provider)
	}
	if c.AI.Provider == "deepseek" && c.AI.Endpoint == "" {
		return fmt.Errorf("deepseek provider requires an endpoint")
	}
	if c.Database.Enabled && c.Database.Host == "" {
		return fmt.Errorf("database enabled without a host")
	}
	return nil
}
