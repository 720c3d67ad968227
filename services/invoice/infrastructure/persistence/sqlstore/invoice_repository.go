// Package sqlstore implements the invoice repository on database/sql.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/thoron/pkg/database"
	invoicedomain "github.com/ghuser/thoron/services/invoice/domain"
	"github.com/ghuser/thoron/services/invoice/domain/models"
	"github.com/ghuser/thoron/services/invoice/domain/repositories"
)

const listingQuery = `
	SELECT i.id, i.shipment_id, i.carrier_id, i.invoice_number, i.quoted_amount, i.actual_amount,
		i.status, i.due_date, i.created_at, c.name, s.tracking_number, s.origin, s.destination
	FROM invoices i
	JOIN carriers c ON c.id = i.carrier_id
	JOIN shipments s ON s.id = i.shipment_id`

// InvoiceRepository implements repositories.InvoiceRepository.
type InvoiceRepository struct {
	db *database.Database
}

var _ repositories.InvoiceRepository = (*InvoiceRepository)(nil)

// NewInvoiceRepository returns an InvoiceRepository backed by the given pool.
func NewInvoiceRepository(db *database.Database) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*models.InvoiceListing, error) {
	rows, err := r.db.DB().QueryContext(ctx, listingQuery+` ORDER BY i.created_at DESC, i.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	invoices := make([]*models.InvoiceListing, 0)
	for rows.Next() {
		inv, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id int64) (*models.InvoiceListing, error) {
	inv, err := scanListing(r.db.DB().QueryRowContext(ctx, listingQuery+` WHERE i.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, invoicedomain.ErrInvoiceNotFound
	}
	return inv, err
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int64, status models.InvoiceStatus) error {
	res, err := r.db.DB().ExecContext(ctx, `UPDATE invoices SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if n == 0 {
		return invoicedomain.ErrInvoiceNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(s scanner) (*models.InvoiceListing, error) {
	var (
		inv      models.InvoiceListing
		status   string
		tracking sql.NullString
	)
	if err := s.Scan(
		&inv.ID, &inv.ShipmentID, &inv.CarrierID, &inv.InvoiceNumber, &inv.QuotedAmount, &inv.ActualAmount,
		&status, &inv.DueDate, &inv.CreatedAt, &inv.CarrierName, &tracking, &inv.Origin, &inv.Destination,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	inv.Status = models.InvoiceStatus(status)
	if tracking.Valid {
		tn := tracking.String
		inv.TrackingNumber = &tn
	}
	return &inv, nil
}
