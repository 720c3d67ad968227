// Package events is the integration-event bus of the modular monolith, built on
// Watermill's PostgreSQL transport.
//
// load.planned and shipment.milestone_recorded are written inside the business
// transaction (PublishJSON) and reach the worker only if that transaction
// commits. The bus exists only with DATABASE_DRIVER=postgres; the embedded
// SQLite deployment runs without it and loses nothing but cache warming.
//
// Every instance of a service shares the consumer group "<service>-consumer",
// so each message is handled once per service, not once per replica. Handlers
// must be idempotent: a failing handler is retried with backoff, then Nacked
// and redelivered.
//
// The OTel trace context travels in message metadata, so worker spans join the
// API request that planned the load.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/logger"
)

const (
	maxRetries      = 3
	retryBaseDelay  = time.Second
	shutdownTimeout = 30 * time.Second
	errBufferSize   = 100

	// forwarderTopic is the durable queue the api writes envelopes to; the
	// forwarder daemon moves them onto their real topics.
	forwarderTopic = "thoron_outbox"

	metaEventID      = "event_id"
	metaEventVersion = "event_version"
)

// ErrUnsupportedDriver is returned when the bus is requested for a database
// driver that watermill-sql has no schema adapter wired for.
var ErrUnsupportedDriver = errors.New("events: event bus requires the postgres driver")

// Handler processes one message. A nil return Acks it.
type Handler func(ctx context.Context, msg *message.Message) error

// EventBus publishes and consumes integration events through PostgreSQL.
type EventBus struct {
	publisher    message.Publisher // SQL publisher, forwarder-wrapped in outbox mode
	subscriber   *watermillsql.Subscriber
	fwd          *forwarder.Forwarder
	db           *sql.DB
	log          logger.Logger
	wlog         watermill.LoggerAdapter
	wg           sync.WaitGroup
	useForwarder bool
}

// NewEventBus opens its own connection to cfg.DatabaseURL and returns a bus
// that publishes straight to topics. The worker uses it to consume.
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return newEventBus(cfg, log, false)
}

// NewEventBusWithForwarder returns a bus in outbox mode: every publish lands
// in the forwarder queue, and StartForwarder relays it to the target topic.
// A crash between commit and delivery loses nothing.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return newEventBus(cfg, log, true)
}

func newEventBus(cfg *config.Config, log logger.Logger, useForwarder bool) (*EventBus, error) {
	if cfg.DatabaseDriver != config.DriverPostgres {
		return nil, ErrUnsupportedDriver
	}
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	bus := &EventBus{
		db:           db,
		log:          log,
		wlog:         &slogAdapter{log: log},
		useForwarder: useForwarder,
	}

	pub, err := watermillsql.NewPublisher(db, publisherConfig(true), bus.wlog)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	bus.publisher = bus.wrap(pub)

	bus.subscriber, err = watermillsql.NewSubscriber(db, subscriberConfig(cfg.ServiceName+"-consumer"), bus.wlog)
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, fmt.Errorf("events: new subscriber: %w", err)
	}
	return bus, nil
}

func publisherConfig(autoInit bool) watermillsql.PublisherConfig {
	return watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: autoInit,
	}
}

func subscriberConfig(group string) watermillsql.SubscriberConfig {
	return watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}
}

// wrap envelopes pub's messages for the forwarder when the bus is in outbox mode.
func (q *EventBus) wrap(pub message.Publisher) message.Publisher {
	if !q.useForwarder {
		return pub
	}
	return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: forwarderTopic})
}

// StartForwarder runs the daemon that drains the outbox queue onto target
// topics. It returns once the daemon is running. Call it once, on a bus from
// NewEventBusWithForwarder.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	if !q.useForwarder {
		return errors.New("events: StartForwarder called on non-forwarder EventBus")
	}
	if q.fwd != nil {
		return errors.New("events: forwarder already started")
	}

	fwdSub, err := watermillsql.NewSubscriber(q.db, subscriberConfig("thoron-forwarder"), q.wlog)
	if err != nil {
		return fmt.Errorf("events: new forwarder subscriber: %w", err)
	}
	targetPub, err := watermillsql.NewPublisher(q.db, publisherConfig(true), q.wlog)
	if err != nil {
		_ = fwdSub.Close()
		return fmt.Errorf("events: new forwarder target publisher: %w", err)
	}
	fwd, err := forwarder.NewForwarder(fwdSub, targetPub, q.wlog, forwarder.Config{ForwarderTopic: forwarderTopic})
	if err != nil {
		_ = targetPub.Close()
		_ = fwdSub.Close()
		return fmt.Errorf("events: create forwarder: %w", err)
	}
	q.fwd = fwd

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.log.InfoContext(ctx, "events: forwarder started", "queue", forwarderTopic)
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "events: forwarder stopped with error", "error", err)
			return
		}
		q.log.InfoContext(ctx, "events: forwarder stopped")
	}()

	select {
	case <-fwd.Running():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: context cancelled waiting for forwarder: %w", ctx.Err())
	}
}

// NewMessage builds a message carrying payload with the event id and schema
// version in its metadata and the OTel trace context from ctx injected.
func NewMessage(ctx context.Context, eventID string, version int, payload []byte) *message.Message {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(metaEventID, eventID)
	msg.Metadata.Set(metaEventVersion, strconv.Itoa(version))
	injectTrace(ctx, msg)
	return msg
}

// EventID returns the domain event id stamped by NewMessage, or "".
func EventID(msg *message.Message) string {
	return msg.Metadata.Get(metaEventID)
}

// EventVersion returns the payload schema version stamped by NewMessage, or 0.
func EventVersion(msg *message.Message) int {
	v, _ := strconv.Atoi(msg.Metadata.Get(metaEventVersion))
	return v
}

// PublishTx writes msg to topic through tx. Subscribers see it only if tx
// commits. The outbox tables already exist once the bus is up, so the
// tx-bound publisher never initializes schema.
func (q *EventBus) PublishTx(tx *sql.Tx, topic string, msg *message.Message) error {
	pub, err := watermillsql.NewPublisher(tx, publisherConfig(false), q.wlog)
	if err != nil {
		return fmt.Errorf("events: new tx publisher: %w", err)
	}
	if err := q.wrap(pub).Publish(topic, msg); err != nil {
		return fmt.Errorf("events: publish to %s in tx: %w", topic, err)
	}
	return nil
}

// PublishJSON marshals event and publishes it to topic through tx.
func (q *EventBus) PublishJSON(ctx context.Context, tx *sql.Tx, topic, eventID string, version int, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal %s: %w", topic, err)
	}
	return q.PublishTx(tx, topic, NewMessage(ctx, eventID, version, payload))
}

// Publish sends msgs to topic outside any business transaction.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	for _, msg := range msgs {
		injectTrace(ctx, msg)
	}
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

func injectTrace(ctx context.Context, msg *message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}
}

func extractTrace(ctx context.Context, msg *message.Message) context.Context {
	carrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		carrier[k] = v
	}
	return otel.GetTextMapPropagator().Extract(ctx, carrier)
}

// Subscribe consumes topic in the background, handing each message to handler
// with the publisher's trace restored into its context.
//
// A nil return Acks the message. An error is retried up to 3 times with
// exponential backoff (1s, 2s, 4s); after that the message is Nacked and the
// error is sent on the returned channel. The channel is buffered and callers
// must drain it. Close waits for in-flight handlers.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, errBufferSize)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)
		for msg := range ch {
			q.process(ctx, topic, msg, handler, errCh)
		}
	}()
	return errCh, nil
}

func (q *EventBus) process(ctx context.Context, topic string, msg *message.Message, handler Handler, errCh chan<- error) {
	msgCtx := extractTrace(ctx, msg)
	err := retryWithBackoff(msgCtx, msg, handler, maxRetries, retryBaseDelay, q.log)
	if err == nil {
		msg.Ack()
		return
	}

	msg.Nack()
	select {
	case errCh <- fmt.Errorf("%s event %s: %w", topic, EventID(msg), err):
	default:
		q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
			"error", err, "topic", topic, "event_id", EventID(msg))
	}
}

// retryWithBackoff calls handler up to attempts times, doubling the delay after
// each failure. It returns nil on the first success.
func retryWithBackoff(
	ctx context.Context,
	msg *message.Message,
	handler Handler,
	attempts int,
	baseDelay time.Duration,
	log logger.Logger,
) error {
	delay := baseDelay
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		log.WarnContext(ctx, "events: handler failed, retrying",
			"attempt", attempt,
			"max_retries", attempts,
			"next_delay", delay,
			"event_id", EventID(msg),
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("events: handler failed after %d retries: %w", attempts, err)
}

// Ping checks the EventBus database connection health.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops the subscriber and the forwarder, waits up to 30s for in-flight
// handlers, then closes the publisher and the database connection.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}
	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for in-flight handlers to complete")
	}

	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return q.db.Close()
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
