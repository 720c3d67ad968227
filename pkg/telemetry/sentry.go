package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/thoron/pkg/config"
)

const sentryFlushTimeout = 2 * time.Second

// SetupSentry enables crash reporting for the api and worker processes. An
// empty SENTRY_DSN leaves the SDK uninitialized and every capture a no-op.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentryOptions(cfg)); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

func sentryOptions(cfg *config.Config) sentry.ClientOptions {
	return sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          fmt.Sprintf("%s@%s", cfg.ServiceName, cfg.ServiceVersion),
		ServerName:       cfg.ServiceName,
		AttachStacktrace: true,
		TracesSampleRate: cfg.SentryTracesSampleRate,
		BeforeSend:       dropCancellations,
	}
}

// dropCancellations discards events caused by a cancelled request or a
// shutdown; a dispatcher closing the tab mid-consolidation is not a fault.
func dropCancellations(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
	if hint != nil && errors.Is(hint.OriginalException, context.Canceled) {
		return nil
	}
	return event
}

// SentryFlush waits briefly for queued events. Deferred by main before exit.
func SentryFlush() {
	sentry.Flush(sentryFlushTimeout)
}

// SentryMiddleware binds a per-request hub and reports panics. The panic is
// re-raised so logger.Recovery still logs it and writes the JSON 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	return sentryhttp.New(sentryhttp.Options{
		Repanic: true,
		Timeout: sentryFlushTimeout,
	}).Handle
}

// CaptureError reports err to the hub bound to ctx, or the global hub, tagged
// with tags. Without an initialized client it does nothing.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}
