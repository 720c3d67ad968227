package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicMilestoneRecorded is the Watermill topic published when a tracking
// milestone is appended to a shipment's timeline.
const TopicMilestoneRecorded = "shipment.milestone_recorded"

// MilestoneRecordedEvent is written to the outbox in the same transaction as
// the shipment_events row.
type MilestoneRecordedEvent struct {
	EventID     uuid.UUID `json:"eventId"`
	Version     int       `json:"version"`
	ShipmentID  int64     `json:"shipmentId"`
	MilestoneID int64     `json:"milestoneId"`
	EventType   string    `json:"eventType"`
	Location    string    `json:"location"`
	EventTime   time.Time `json:"eventTime"`
}
