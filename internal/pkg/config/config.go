package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	Port      string `env:"PORT,       default=3001"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	BaseURL   string `env:"BASE_URL,   default=https://sandbox.hcmnotify.com"`
	JWTSecret string `env:"JWT_SECRET"`

	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Webhook   WebhookConfig
}

type DatabaseConfig struct {
	Path string `env:"DATABASE_PATH, default=data/sandbox.db"`
}

type AuthConfig struct {
	AdminPassword   string `env:"ADMIN_PASSWORD"`
	SandboxUsername string `env:"SANDBOX_USERNAME, default=sandbox"`
	SandboxPassword string `env:"SANDBOX_PASSWORD, default=sandbox123"`
}

type RateLimitConfig struct {
	// Storage selects the counter backend: memory or redis.
	Storage string `env:"RATE_LIMIT_STORAGE, default=memory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type WebhookConfig struct {
	TestDelay time.Duration `env:"WEBHOOK_TEST_DELAY, default=2s"`
	Timeout   time.Duration `env:"WEBHOOK_TIMEOUT,    default=10s"`
	Workers   int           `env:"WEBHOOK_WORKERS,    default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom is Load with an explicit source of variables.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	cfg.RateLimit.Storage = strings.ToLower(strings.TrimSpace(cfg.RateLimit.Storage))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	switch c.RateLimit.Storage {
	case StorageMemory:
	case StorageRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required when RATE_LIMIT_STORAGE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown RATE_LIMIT_STORAGE %q (want memory or redis)", c.RateLimit.Storage))
	}
	if c.Webhook.TestDelay < 0 {
		errs = append(errs, errors.New("WEBHOOK_TEST_DELAY must not be negative"))
	}
	if c.Webhook.Workers < 1 {
		errs = append(errs, errors.New("WEBHOOK_WORKERS must be at least 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
