package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for monsterdash.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values. Secrets (passwords) must
// only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"3000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// Upstream monster data API
	Upstream UpstreamConfig `yaml:"upstream"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"monsterdash"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"monsterdash"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
}

// UpstreamConfig holds settings for the D&D 5e reference API.
type UpstreamConfig struct {
	// BaseURL is the API root, including the dated API version segment.
	BaseURL string `yaml:"base_url" env:"DND5E_API_BASE_URL" env-default:"https://www.dnd5eapi.co/api/2014"`
	// TimeoutSeconds bounds each upstream fetch. There are no retries; a
	// lookup that exceeds this fails the whole request.
	TimeoutSeconds int `yaml:"timeout_seconds" env:"DND5E_API_TIMEOUT_SECONDS" env-default:"15"`
}

// Timeout returns the upstream fetch timeout as a duration.
func (c *UpstreamConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time and set on the
// returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("upstream base_url must not be empty")
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
