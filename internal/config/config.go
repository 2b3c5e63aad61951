// Package config loads service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the server binary needs to start.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Spanner SpannerConfig `yaml:"spanner"`
	Redis   RedisConfig   `yaml:"redis"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type SpannerConfig struct {
	Database string `yaml:"database"`
}

type RedisConfig struct {
	// Addr empty disables the profile cache entirely.
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheConfig struct {
	ProfileTTLSeconds int `yaml:"profile_ttl_seconds"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the local-development configuration, tuned for the
// Spanner emulator.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Spanner: SpannerConfig{
			Database: "projects/test-project/instances/dev-instance/databases/parts-pricing-db",
		},
		Cache: CacheConfig{
			ProfileTTLSeconds: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path, falling back to defaults when path is
// empty, then applies PRICING_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Spanner.Database == "" {
		return nil, fmt.Errorf("spanner database is required")
	}

	return cfg, nil
}

// ProfileTTL returns the profile cache TTL as a duration.
func (c *Config) ProfileTTL() time.Duration {
	return time.Duration(c.Cache.ProfileTTLSeconds) * time.Second
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PRICING_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("PRICING_SPANNER_DATABASE"); v != "" {
		cfg.Spanner.Database = v
	}
	if v := os.Getenv("PRICING_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("PRICING_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("PRICING_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("PRICING_PROFILE_TTL_SECONDS"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.Cache.ProfileTTLSeconds = ttl
		}
	}
	if v := os.Getenv("PRICING_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
