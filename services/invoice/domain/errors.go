package domain

import "errors"

// Sentinel errors for the invoice domain. Use errors.Is() to check these.
var (
	// ErrInvoiceNotFound indicates the invoice does not exist.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvalidInvoiceStatus indicates a status outside Pending, Approved, Disputed and Paid.
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
)
