package models

import (
	"fmt"
	"strings"
	"time"
)

// DocumentType classifies a shipping document.
type DocumentType string

const (
	DocumentTypeBOL              DocumentType = "BOL"
	DocumentTypePOD              DocumentType = "POD"
	DocumentTypeInvoice          DocumentType = "Invoice"
	DocumentTypeRateConfirmation DocumentType = "Rate Confirmation"
	DocumentTypeCustoms          DocumentType = "Customs"
	DocumentTypeOther            DocumentType = "Other"
)

// DocumentStatus is the review state of a document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "Pending"
	DocumentStatusVerified DocumentStatus = "Verified"
	DocumentStatusRejected DocumentStatus = "Rejected"
)

// InferDocumentType guesses the document type from its filename. The first
// matching marker wins, in the order bol, pod, inv, rate/con, customs.
func InferDocumentType(filename string) DocumentType {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "bol"):
		return DocumentTypeBOL
	case strings.Contains(name, "pod"):
		return DocumentTypePOD
	case strings.Contains(name, "inv"):
		return DocumentTypeInvoice
	case strings.Contains(name, "rate"), strings.Contains(name, "con"):
		return DocumentTypeRateConfirmation
	case strings.Contains(name, "customs"):
		return DocumentTypeCustoms
	default:
		return DocumentTypeOther
	}
}

// ParseDocumentType validates s. An empty string is not a type.
func ParseDocumentType(s string) (DocumentType, error) {
	switch t := DocumentType(s); t {
	case DocumentTypeBOL, DocumentTypePOD, DocumentTypeInvoice,
		DocumentTypeRateConfirmation, DocumentTypeCustoms, DocumentTypeOther:
		return t, nil
	default:
		return "", fmt.Errorf("unknown document type %q", s)
	}
}

// Document is the metadata of an uploaded shipping document. File contents are
// not stored.
type Document struct {
	ID         int64
	ShipmentID *int64
	Type       DocumentType
	Filename   string
	Size       int64
	Status     DocumentStatus
	UploadedAt time.Time
}

// NewDocument builds a Pending document. An empty docType is inferred from
// the filename.
func NewDocument(shipmentID *int64, docType, filename string, size int64) (*Document, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if size < 0 {
		return nil, fmt.Errorf("size must not be negative")
	}

	t := InferDocumentType(filename)
	if docType = strings.TrimSpace(docType); docType != "" {
		var err error
		if t, err = ParseDocumentType(docType); err != nil {
			return nil, err
		}
	}

	return &Document{
		ShipmentID: shipmentID,
		Type:       t,
		Filename:   filename,
		Size:       size,
		Status:     DocumentStatusPending,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// DocumentListing is a document joined with its shipment's tracking number.
type DocumentListing struct {
	Document
	TrackingNumber *string
}
