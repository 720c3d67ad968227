package domain

import "errors"

// Sentinel errors for the carrier domain. Use errors.Is() to check these.
var (
	// ErrCarrierNotFound indicates the carrier does not exist.
	ErrCarrierNotFound = errors.New("carrier not found")

	// ErrInvalidCarrier indicates a carrier field violates domain constraints.
	ErrInvalidCarrier = errors.New("invalid carrier")

	// ErrCarrierInUse indicates the carrier is still referenced by shipments,
	// invoices or lanes and cannot be deleted.
	ErrCarrierInUse = errors.New("carrier is referenced by other records")

	// ErrInvalidQuoteRequest indicates a rate quote request is malformed.
	ErrInvalidQuoteRequest = errors.New("invalid quote request")
)
