package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ShipmentStatus is the lifecycle state of a shipment.
type ShipmentStatus string

const (
	ShipmentStatusPending    ShipmentStatus = "Pending"
	ShipmentStatusDispatched ShipmentStatus = "Dispatched"
	ShipmentStatusInTransit  ShipmentStatus = "In Transit"
	ShipmentStatusDelivered  ShipmentStatus = "Delivered"
	ShipmentStatusException  ShipmentStatus = "Exception"
)

// ParseShipmentStatus validates s as a ShipmentStatus. An empty string is Pending.
func ParseShipmentStatus(s string) (ShipmentStatus, error) {
	switch st := ShipmentStatus(strings.TrimSpace(s)); st {
	case "":
		return ShipmentStatusPending, nil
	case ShipmentStatusPending, ShipmentStatusDispatched, ShipmentStatusInTransit,
		ShipmentStatusDelivered, ShipmentStatusException:
		return st, nil
	default:
		return "", fmt.Errorf("unknown shipment status %q", s)
	}
}

// Shipment is a unit of freight moved by one carrier.
type Shipment struct {
	ID                int64
	Origin            string
	Destination       string
	Weight            float64 // lbs
	Dimensions        string  // "LxWxH" in inches, or a free-form label
	FreightClass      string  // NMFC class, e.g. "70"
	Status            ShipmentStatus
	CarrierID         *int64
	TrackingNumber    *string
	EstimatedDelivery *string // YYYY-MM-DD
	CreatedAt         time.Time
}

// NewShipment constructs a shipment for direct creation. The ID is assigned by the store.
func NewShipment(origin, destination string, weight float64, dimensions, freightClass string, status ShipmentStatus) (*Shipment, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	switch {
	case origin == "" || destination == "":
		return nil, fmt.Errorf("origin and destination are required")
	case math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0:
		return nil, fmt.Errorf("weight must be a non-negative number of lbs")
	}

	return &Shipment{
		Origin:       origin,
		Destination:  destination,
		Weight:       weight,
		Dimensions:   strings.TrimSpace(dimensions),
		FreightClass: strings.TrimSpace(freightClass),
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
