// migrate applies the embedded schema migrations and exits.
// Run: go run ./cmd/migrate
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/wanderstore/internal/infrastructure/postgres"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

type migrateConfig struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	var cfg migrateConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.Kitchen}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	start := time.Now()
	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		logger.Error("migration failed", "applied", applied, "error", err)
		pool.Close()
		os.Exit(1)
	}
	logger.Info("migrations applied", "count", applied, "took", time.Since(start).Round(time.Millisecond))
}
