package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicLoadPlanned is the Watermill topic published when orders are
// consolidated into a new shipment.
const TopicLoadPlanned = "load.planned"

// LoadPlannedEvent is written to the outbox in the consolidation transaction.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicLoadPlanned).
type LoadPlannedEvent struct {
	EventID     uuid.UUID `json:"eventId"` // unique per publish, for deduplication
	Version     int       `json:"version"` // schema version; increment on breaking changes
	ShipmentID  int64     `json:"shipmentId"`
	OrderIDs    []int64   `json:"orderIds"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Weight      float64   `json:"weight"`
	OccurredAt  time.Time `json:"occurredAt"`
}
