package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local test staging production"`
	Port     string `env:"PORT" envDefault:"3000" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	DatabaseURL    string `env:"DATABASE_URL,required" validate:"required"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"false"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	JWTSecret string        `env:"JWT_SECRET,required" validate:"required,min=32"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h" validate:"min=1m"`

	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0" validate:"min=0,max=15"`
	ProductCacheTTL time.Duration `env:"PRODUCT_CACHE_TTL" envDefault:"30s"`

	ResendAPIKey string `env:"RESEND_API_KEY" validate:"required_if=Env production,required_if=Env staging"`
	ResendFrom   string `env:"RESEND_FROM"    validate:"required_if=Env production,required_if=Env staging"`

	ServiceName  string `env:"SERVICE_NAME" envDefault:"wanderstore"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	StatsSchedule string `env:"STATS_SCHEDULE" envDefault:"@every 1m" validate:"required"`
}

// Load reads an optional .env file, then parses and validates the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SecureCookies reports whether auth cookies must carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return c.Env == "staging" || c.Env == "production"
}
