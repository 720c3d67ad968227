package services

import (
	"context"
	"fmt"

	"github.com/ghuser/thoron/pkg/logger"
	"github.com/ghuser/thoron/services/invoice/domain/models"
	"github.com/ghuser/thoron/services/invoice/domain/repositories"
)

// InvoiceService serves freight audit: invoice listing and status changes.
type InvoiceService struct {
	repo repositories.InvoiceRepository
	log  logger.Logger
}

// NewInvoiceService returns an InvoiceService.
func NewInvoiceService(repo repositories.InvoiceRepository, log logger.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, log: log}
}

// List returns invoices newest first.
func (s *InvoiceService) List(ctx context.Context) ([]*models.InvoiceListing, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// UpdateStatus moves an invoice to status. Any status may follow any other.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id int64, status string) (*models.InvoiceListing, error) {
	st, err := models.ParseInvoiceStatus(status)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "invoice status updated",
		"invoice_id", id,
		"invoice_number", inv.InvoiceNumber,
		"status", st,
	)
	return inv, nil
}
