package models

import (
	"fmt"
	"strings"
	"time"
)

// ShipmentEvent is an append-only tracking milestone.
type ShipmentEvent struct {
	ID         int64
	ShipmentID int64
	EventType  string
	Location   string
	Message    string
	EventTime  time.Time
}

// NewShipmentEvent constructs a milestone for shipmentID. A zero at is now.
func NewShipmentEvent(shipmentID int64, eventType, location, message string, at time.Time) (*ShipmentEvent, error) {
	eventType = strings.TrimSpace(eventType)
	if shipmentID <= 0 {
		return nil, fmt.Errorf("shipment id must be positive")
	}
	if eventType == "" {
		return nil, fmt.Errorf("event type is required")
	}
	if at.IsZero() {
		at = time.Now()
	}
	return &ShipmentEvent{
		ShipmentID: shipmentID,
		EventType:  eventType,
		Location:   strings.TrimSpace(location),
		Message:    strings.TrimSpace(message),
		EventTime:  at.UTC(),
	}, nil
}

// TrackingSummary is one row of the tracking board: a shipment, its carrier's
// name and its most recent milestone, if any.
type TrackingSummary struct {
	Shipment
	CarrierName   *string
	LastEventType *string
	LastLocation  *string
	LastEventTime *time.Time
}

// TrackingDetail is a shipment with its carrier contact and full timeline,
// oldest milestone first.
type TrackingDetail struct {
	Shipment
	CarrierName  *string
	CarrierPhone *string
	Events       []ShipmentEvent
}
