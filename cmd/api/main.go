package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/thoron/docs/swagger"
	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/pkg/cache"
	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/events"
	"github.com/ghuser/thoron/pkg/httpx"
	"github.com/ghuser/thoron/pkg/logger"
	"github.com/ghuser/thoron/pkg/migrator"
	"github.com/ghuser/thoron/pkg/seed"
	"github.com/ghuser/thoron/pkg/telemetry"
	carrierApi "github.com/ghuser/thoron/services/carrier/application/api"
	documentApi "github.com/ghuser/thoron/services/document/application/api"
	invoiceApi "github.com/ghuser/thoron/services/invoice/application/api"
	planningApi "github.com/ghuser/thoron/services/planning/application/api"
	shipmentApi "github.com/ghuser/thoron/services/shipment/application/api"
	userApi "github.com/ghuser/thoron/services/user/application/api"
)

// @title					Thoron TMS API
// @version				1.0
// @description			Freight transportation management: load planning, tracking, carriers and freight audit.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:3001
// @BasePath				/api
// @schemes				http https
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
	errhttp.HideInternalErrors(cfg.Environment == config.EnvProduction)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected", "driver", cfg.DatabaseDriver)

	if cfg.AutoMigrate {
		if err := migrator.RunMigrations(ctx, pool.DB(), cfg.DatabaseDriver, log); err != nil {
			log.Error("failed to run migrations", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}
	if cfg.SeedDemoData {
		if err := seed.New(pool, log).Run(ctx); err != nil {
			log.Error("failed to seed demo data", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	appConfig := &app.Application{
		Config: cfg,
		Db:     pool,
		Logger: log,
	}
	deps := []httpx.Dependency{{Name: "database", Pinger: pool, Required: true}}

	// The outbox needs watermill-sql's Postgres schema; SQLite runs without events.
	if cfg.DatabaseDriver == config.DriverPostgres {
		eventBus, err := events.NewEventBusWithForwarder(cfg, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer eventBus.Close() //nolint:errcheck

		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		appConfig.EventBus = eventBus
		deps = append(deps, httpx.Dependency{Name: "eventBus", Pinger: eventBus})
	} else {
		log.Info("event bus disabled", "driver", cfg.DatabaseDriver)
	}

	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
		appConfig.Redis = redisClient
		deps = append(deps, httpx.Dependency{Name: "redis", Pinger: redisClient})
	} else {
		log.Info("tracking cache disabled, REDIS_URL is empty")
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.IsDevelopment(),
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RequestsPerMinute:  cfg.RequestsPerMinute,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Otel:     otelhttp.NewMiddleware(cfg.ServiceName),
			Logger:   logger.Middleware(log),
		},
	)

	health := httpx.HealthHandler(deps...)
	r.Get("/health", health)
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	planningApi.OrderRoutes(r, a)
	shipmentApi.ShipmentRoutes(r, a)
	carrierApi.CarrierRoutes(r, a)
	documentApi.DocumentRoutes(r, a)
	invoiceApi.InvoiceRoutes(r, a)
	userApi.UserRoutes(r, a)
}
