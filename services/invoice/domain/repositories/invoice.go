package repositories

import (
	"context"

	"github.com/ghuser/thoron/services/invoice/domain/models"
)

// InvoiceRepository defines persistence operations for invoices. Lookups and
// writes against an unknown id return domain.ErrInvoiceNotFound.
type InvoiceRepository interface {
	// List returns invoices newest first with carrier and lane details.
	List(ctx context.Context) ([]*models.InvoiceListing, error)
	FindByID(ctx context.Context, id int64) (*models.InvoiceListing, error)
	UpdateStatus(ctx context.Context, id int64, status models.InvoiceStatus) error
}
