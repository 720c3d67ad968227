package models

import (
	"fmt"
	"math"
	"time"

	invoicedomain "github.com/ghuser/thoron/services/invoice/domain"
)

// InvoiceStatus is the audit state of a carrier invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "Pending"
	InvoiceStatusApproved InvoiceStatus = "Approved"
	InvoiceStatusDisputed InvoiceStatus = "Disputed"
	InvoiceStatusPaid     InvoiceStatus = "Paid"
)

// ParseInvoiceStatus validates s as an InvoiceStatus.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch st := InvoiceStatus(s); st {
	case InvoiceStatusPending, InvoiceStatusApproved, InvoiceStatusDisputed, InvoiceStatusPaid:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", invoicedomain.ErrInvalidInvoiceStatus, s)
	}
}

// Invoice is a carrier's bill for one shipment.
type Invoice struct {
	ID            int64
	ShipmentID    int64
	CarrierID     int64
	InvoiceNumber string
	QuotedAmount  float64
	ActualAmount  float64
	Status        InvoiceStatus
	DueDate       string // YYYY-MM-DD
	CreatedAt     time.Time
}

// Variance is the billed amount over the quote, rounded to cents. Positive
// means the carrier billed more than quoted.
func (i *Invoice) Variance() float64 {
	return math.Round((i.ActualAmount-i.QuotedAmount)*100) / 100
}

// InvoiceListing is an invoice joined with its carrier and shipment lane.
type InvoiceListing struct {
	Invoice
	CarrierName    string
	TrackingNumber *string
	Origin         string
	Destination    string
}
