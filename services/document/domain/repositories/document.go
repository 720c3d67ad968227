package repositories

import (
	"context"

	"github.com/ghuser/thoron/services/document/domain/models"
)

// DocumentRepository defines persistence operations for document metadata.
type DocumentRepository interface {
	// List returns documents newest first with their shipment's tracking number.
	List(ctx context.Context) ([]*models.DocumentListing, error)
	// Create returns domain.ErrUnknownShipment when ShipmentID references nothing.
	Create(ctx context.Context, d *models.Document) error
	// Delete returns domain.ErrDocumentNotFound when id does not exist.
	Delete(ctx context.Context, id int64) error
}
