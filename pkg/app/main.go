package app

import (
	"github.com/ghuser/thoron/pkg/cache"
	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/events"
	"github.com/ghuser/thoron/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's Routes function during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "load planned", "shipment_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus   // nil unless DATABASE_DRIVER=postgres
	Redis    *cache.RedisClient // nil when REDIS_URL is empty
}
