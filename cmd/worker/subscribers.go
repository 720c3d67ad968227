package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/thoron/pkg/events"
	"github.com/ghuser/thoron/pkg/logger"
	"github.com/ghuser/thoron/pkg/telemetry"
	planningEvents "github.com/ghuser/thoron/services/planning/domain/events"
	shipmentEvents "github.com/ghuser/thoron/services/shipment/domain/events"
)

// subscriber is the subset of events.EventBus the worker consumes.
type subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// trackingCache is the subset of the tracking service the handlers drive.
type trackingCache interface {
	Warm(ctx context.Context, shipmentID int64) error
	Invalidate(ctx context.Context, shipmentID int64)
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, bus subscriber, tracking trackingCache, log logger.Logger) error {
	handlers := map[string]events.Handler{
		planningEvents.TopicLoadPlanned:       handleLoadPlanned(tracking, log),
		shipmentEvents.TopicMilestoneRecorded: handleMilestoneRecorded(tracking, log),
	}

	topics := make([]string, 0, len(handlers))
	for topic, h := range handlers {
		errCh, err := bus.Subscribe(ctx, topic, h)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
				telemetry.CaptureError(ctx, err, map[string]string{"topic": topic})
			}
		}(topic)
		topics = append(topics, topic)
	}

	log.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleLoadPlanned warms the tracking cache for a freshly consolidated
// shipment so the dashboard's first timeline read is a hit.
// Handlers must be idempotent; EventBus retries up to 3 times on failure.
func handleLoadPlanned(tracking trackingCache, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt planningEvents.LoadPlannedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := tracking.Warm(ctx, evt.ShipmentID); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			log.WarnContext(ctx, "cache warm failed for load.planned",
				"shipment_id", evt.ShipmentID, "error", err)
			return nil
		}
		log.InfoContext(ctx, "load planned",
			"event_id", events.EventID(msg),
			"shipment_id", evt.ShipmentID,
			"orders", len(evt.OrderIDs),
			"weight", evt.Weight,
		)
		return nil
	}
}

// handleMilestoneRecorded drops the cached timeline of the shipment whose
// milestone was appended, covering API replicas that did not serve the write.
func handleMilestoneRecorded(tracking trackingCache, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt shipmentEvents.MilestoneRecordedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		tracking.Invalidate(ctx, evt.ShipmentID)
		log.InfoContext(ctx, "milestone recorded",
			"shipment_id", evt.ShipmentID,
			"event_type", evt.EventType,
		)
		return nil
	}
}
