package domain

import "errors"

// Sentinel errors for the shipment and tracking domain. Use errors.Is() to check these.
var (
	// ErrShipmentNotFound indicates the shipment does not exist.
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrInvalidShipment indicates a shipment field violates domain constraints.
	ErrInvalidShipment = errors.New("invalid shipment")

	// ErrInvalidEvent indicates a tracking milestone violates domain constraints.
	ErrInvalidEvent = errors.New("invalid tracking event")

	// ErrUnknownCarrier indicates the shipment references a carrier that does not exist.
	ErrUnknownCarrier = errors.New("carrier does not exist")
)
