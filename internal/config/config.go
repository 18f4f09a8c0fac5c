package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/you/credsvc/domain"
)

// ConfigFile mirrors config/config.yml.
type ConfigFile struct {
	Database DatabaseConfig `yaml:"database"`
	Sessions SessionConfig  `yaml:"sessions"`
	Tokens   TokenConfig    `yaml:"tokens"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type SessionConfig struct {
	MaxAgeDays    int    `yaml:"max_age_days"`
	SweepInterval string `yaml:"sweep_interval"`
}

type TokenConfig struct {
	TTLSeconds int64 `yaml:"ttl_seconds"`
}

// EnvConfig holds settings that arrive through the environment. The root
// admin credentials intentionally default to "root"/"root" so a fresh
// deployment always has an administrative identity; production overrides
// them.
type EnvConfig struct {
	DSN               string `env:"DATABASE_DSN"`
	RootAdminEmail    string `env:"ROOT_ADMIN_EMAIL" envDefault:"root"`
	RootAdminPassword string `env:"ROOT_ADMIN_PASSWORD" envDefault:"root"`
}

// Config is the resolved runtime configuration.
type Config struct {
	DSN               string
	SessionMaxAgeDays int
	SweepInterval     time.Duration
	TokenTTLSeconds   int64
	RootAdminEmail    string
	RootAdminPassword string
}

// Load reads the YAML config file, then applies environment overrides. A
// missing file is not an error; env-only deployments are legitimate.
func Load(path string) (*Config, error) {
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	var e EnvConfig
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg := &Config{
		DSN:               file.Database.DSN,
		SessionMaxAgeDays: file.Sessions.MaxAgeDays,
		TokenTTLSeconds:   file.Tokens.TTLSeconds,
		RootAdminEmail:    e.RootAdminEmail,
		RootAdminPassword: e.RootAdminPassword,
	}
	if e.DSN != "" {
		cfg.DSN = e.DSN
	}
	if cfg.DSN == "" {
		cfg.DSN = "users.db"
	}
	if cfg.SessionMaxAgeDays == 0 {
		cfg.SessionMaxAgeDays = domain.DefaultSessionAgeDays
	}
	if cfg.TokenTTLSeconds == 0 {
		cfg.TokenTTLSeconds = domain.DefaultTokenTTL
	}
	if file.Sessions.SweepInterval != "" {
		interval, err := time.ParseDuration(file.Sessions.SweepInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid sweep interval: %w", err)
		}
		cfg.SweepInterval = interval
	}
	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	var file ConfigFile
	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &file, nil
		}
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &file, nil
}
