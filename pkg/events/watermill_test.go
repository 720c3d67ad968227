package events

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func nopLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// TestRetryWithBackoff_SuccessOnFirstAttempt verifies no retry occurs on success.
func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// TestRetryWithBackoff_SuccessAfterRetries verifies retry continues until success.
func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestRetryWithBackoff_ExhaustsRetries verifies an error is returned after all retries fail.
func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("permanent error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

// TestRetryWithBackoff_ContextCancelled verifies retry stops when context is canceled.
func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Second, nopLogger())
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	// Should have called handler once then exited on ctx.Done
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

// TestStartForwarder_NonForwarderMode verifies StartForwarder returns an error
// when called on an EventBus not configured with forwarder mode.
func TestStartForwarder_NonForwarderMode(t *testing.T) {
	bus := &EventBus{useForwarder: false}
	err := bus.StartForwarder(context.Background())
	if err == nil {
		t.Fatal("expected error for non-forwarder EventBus")
	}
}

// TestProcess_AcksOnSuccess verifies a handled message is Acked and no error
// is reported.
func TestProcess_AcksOnSuccess(t *testing.T) {
	bus := &EventBus{log: nopLogger()}
	msg := NewMessage(context.Background(), "evt-ok", 1, nil)
	errCh := make(chan error, 1)

	bus.process(context.Background(), "load.planned", msg, func(context.Context, *message.Message) error { return nil }, errCh)

	select {
	case <-msg.Acked():
	default:
		t.Fatal("expected message to be acked")
	}
	if len(errCh) != 0 {
		t.Fatalf("unexpected error: %v", <-errCh)
	}
}

// TestProcess_NacksAndReportsFailure verifies a failed message is Nacked and
// the error names the topic and event.
func TestProcess_NacksAndReportsFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // stop retries after the first attempt

	bus := &EventBus{log: nopLogger()}
	msg := NewMessage(context.Background(), "evt-bad", 1, nil)
	errCh := make(chan error, 1)

	bus.process(ctx, "load.planned", msg, func(context.Context, *message.Message) error {
		return errors.New("cache down")
	}, errCh)

	select {
	case <-msg.Nacked():
	default:
		t.Fatal("expected message to be nacked")
	}
	select {
	case err := <-errCh:
		if !strings.Contains(err.Error(), "load.planned event evt-bad") {
			t.Errorf("error lacks topic and event id: %v", err)
		}
	default:
		t.Fatal("expected an error on the channel")
	}
}

// TestEventMetadataAccessors verifies EventID and EventVersion read what
// NewMessage stamps, and degrade on foreign messages.
func TestEventMetadataAccessors(t *testing.T) {
	msg := NewMessage(context.Background(), "evt-7", 2, nil)
	if got := EventID(msg); got != "evt-7" {
		t.Errorf("EventID: got %q", got)
	}
	if got := EventVersion(msg); got != 2 {
		t.Errorf("EventVersion: got %d", got)
	}

	foreign := message.NewMessage("raw", nil)
	if EventID(foreign) != "" || EventVersion(foreign) != 0 {
		t.Error("expected zero values for a message without event metadata")
	}
}

// TestOTelPropagation_InjectExtract verifies that trace context injected via
// the same propagation path used by Publish/Subscribe round-trips correctly.
func TestOTelPropagation_InjectExtract(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	// Simulate Publish: inject trace context into message metadata.
	msg := message.NewMessage("id", nil)
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	// Simulate Subscribe: extract trace context from message metadata.
	extractCarrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		extractCarrier[k] = v
	}
	msgCtx := otel.GetTextMapPropagator().Extract(context.Background(), extractCarrier)

	gotSpan := trace.SpanFromContext(msgCtx)
	if !gotSpan.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if gotSpan.SpanContext().TraceID() != wantTraceID {
		t.Errorf("trace ID mismatch: want %s, got %s", wantTraceID, gotSpan.SpanContext().TraceID())
	}
}

// TestNewEventBus_RequiresPostgres verifies the embedded SQLite deployment
// gets a clear error instead of a half-initialized bus.
func TestNewEventBus_RequiresPostgres(t *testing.T) {
	cfg := &config.Config{DatabaseDriver: config.DriverSQLite, DatabaseURL: "thoron.db", LogLevel: "error"}
	if _, err := NewEventBus(cfg, nopLogger()); !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
	if _, err := NewEventBusWithForwarder(cfg, nopLogger()); !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
}

// TestNewMessage_Metadata verifies event identity and trace context travel in
// message metadata.
func TestNewMessage_Metadata(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "plan-load")
	defer span.End()

	msg := NewMessage(ctx, "evt-1", 1, []byte(`{"shipmentId":7}`))

	if msg.UUID == "" {
		t.Error("expected a message UUID")
	}
	if got := msg.Metadata.Get("event_id"); got != "evt-1" {
		t.Errorf("event_id: got %q", got)
	}
	if got := msg.Metadata.Get("event_version"); got != "1" {
		t.Errorf("event_version: got %q", got)
	}
	if msg.Metadata.Get("traceparent") == "" {
		t.Error("expected traceparent metadata from the active span")
	}
	if string(msg.Payload) != `{"shipmentId":7}` {
		t.Errorf("payload: got %s", msg.Payload)
	}
}
