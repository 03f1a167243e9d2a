package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/wanderstore/config"
	"github.com/ErlanBelekov/wanderstore/internal/auth"
	"github.com/ErlanBelekov/wanderstore/internal/cache"
	"github.com/ErlanBelekov/wanderstore/internal/email"
	"github.com/ErlanBelekov/wanderstore/internal/health"
	"github.com/ErlanBelekov/wanderstore/internal/infrastructure/postgres"
	ctxlog "github.com/ErlanBelekov/wanderstore/internal/log"
	"github.com/ErlanBelekov/wanderstore/internal/metrics"
	"github.com/ErlanBelekov/wanderstore/internal/observability"
	"github.com/ErlanBelekov/wanderstore/internal/stats"
	httptransport "github.com/ErlanBelekov/wanderstore/internal/transport/http"
	"github.com/ErlanBelekov/wanderstore/internal/transport/http/handler"
	"github.com/ErlanBelekov/wanderstore/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	shutdownTracer, err := observability.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		stop()
		log.Fatalf("tracer: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	if cfg.MigrateOnStart {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			stop()
			log.Fatalf("migrate: %v", err)
		}
		logger.Info("migrations applied", "count", applied)
	}

	metrics.Register(prometheus.DefaultRegisterer)

	// Product cache
	var productCache cache.Cache = cache.Noop{}
	var checkOpts []health.Option
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.ProductCacheTTL,
			Prefix:   cfg.ServiceName + ":",
		})
		defer redisCache.Close()
		productCache = redisCache
		checkOpts = append(checkOpts, health.WithDependency("redis", redisCache))
		logger.Info("product cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.ProductCacheTTL)
	}

	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer, checkOpts...)

	tokens := auth.NewManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	cookies := handler.Cookies{Secure: cfg.SecureCookies()}

	// Users
	userRepo := postgres.NewUserRepository(pool)
	authUsecase := usecase.NewAuthUsecase(userRepo, tokens, email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger), logger)
	authHandler := handler.NewAuthHandler(authUsecase, cookies, logger)

	// Catalogue and cart
	catalogUsecase := usecase.NewCatalogUsecase(postgres.NewProductRepository(pool), productCache, logger)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, logger)
	cartHandler := handler.NewCartHandler(usecase.NewCartUsecase(postgres.NewCartRepository(pool)), cookies, logger)

	// Visited countries
	travelUsecase := usecase.NewTravelUsecase(userRepo, postgres.NewTravelRepository(pool, logger))
	travelHandler := handler.NewTravelHandler(travelUsecase, catalogUsecase, cookies, logger)

	collector, err := stats.NewCollector(postgres.NewStatsRepository(pool), cfg.StatsSchedule, logger)
	if err != nil {
		stop()
		log.Fatalf("stats: %v", err)
	}
	go collector.Start(ctx)

	router := httptransport.NewRouter(
		httptransport.RouterConfig{ServiceName: cfg.ServiceName, HSTS: cfg.SecureCookies()},
		logger,
		tokens,
		httptransport.Handlers{
			Auth:    authHandler,
			Catalog: catalogHandler,
			Cart:    cartHandler,
			Travel:  travelHandler,
		},
	)

	srv := http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
