package domain

import "errors"

// Sentinel errors for the document domain. Use errors.Is() to check these.
var (
	// ErrDocumentNotFound indicates the document does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDocument indicates document metadata violates domain constraints.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrUnknownShipment indicates the document references a shipment that does not exist.
	ErrUnknownShipment = errors.New("unknown shipment")
)
