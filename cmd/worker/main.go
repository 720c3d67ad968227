package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/pkg/cache"
	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/events"
	"github.com/ghuser/thoron/pkg/httpx"
	"github.com/ghuser/thoron/pkg/logger"
	"github.com/ghuser/thoron/pkg/telemetry"
	shipmentsvcs "github.com/ghuser/thoron/services/shipment/application/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("worker failed", "error", err)
		stop()
		os.Exit(1) //nolint:gocritic // deferred cleanup already ran inside run
	}
	log.Info("worker stopped")
}

// run blocks until ctx is cancelled. Every resource it opens is closed before
// it returns; EventBus.Close waits for in-flight handlers.
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	if cfg.DatabaseDriver != config.DriverPostgres {
		return fmt.Errorf("worker requires DATABASE_DRIVER=postgres, got %q", cfg.DatabaseDriver)
	}

	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close() //nolint:errcheck

	bus, err := events.NewEventBus(cfg, log)
	if err != nil {
		return fmt.Errorf("setup event bus: %w", err)
	}
	defer bus.Close() //nolint:errcheck

	a := &app.Application{Config: cfg, Db: pool, Logger: log, EventBus: bus}
	deps := []httpx.Dependency{
		{Name: "database", Pinger: pool, Required: true},
		{Name: "eventBus", Pinger: bus, Required: true},
	}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rc.Close() //nolint:errcheck
		a.Redis = rc
		deps = append(deps, httpx.Dependency{Name: "redis", Pinger: rc})
	} else {
		log.Warn("REDIS_URL is empty, tracking cache maintenance is a no-op")
	}

	if err := registerSubscribers(ctx, bus, shipmentsvcs.New(a).Tracking, log); err != nil {
		return err
	}

	srv := httpx.NewServer(cfg.WorkerAddr, opsRouter(metricsHandler, deps))
	serveErr := make(chan error, 1)
	go func() {
		log.Info("worker ops listener started", "addr", cfg.WorkerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down worker...")
	case err := <-serveErr:
		return fmt.Errorf("ops listener: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// opsRouter serves the worker's /metrics and /health. It carries no API routes.
func opsRouter(metrics http.Handler, deps []httpx.Dependency) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", httpx.HealthHandler(deps...))
	r.Method(http.MethodGet, "/metrics", metrics)
	return r
}
