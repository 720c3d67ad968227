package repositories

import (
	"context"

	"github.com/ghuser/thoron/services/shipment/domain/models"
)

// ShipmentRepository defines persistence operations for shipments and their
// tracking timelines.
type ShipmentRepository interface {
	List(ctx context.Context) ([]*models.Shipment, error)
	Create(ctx context.Context, s *models.Shipment) error
	TrackingBoard(ctx context.Context) ([]*models.TrackingSummary, error)
	// TrackingDetail returns domain.ErrShipmentNotFound when id is unknown.
	TrackingDetail(ctx context.Context, id int64) (*models.TrackingDetail, error)
	// AppendEvent sets e.ID. Returns domain.ErrShipmentNotFound when the
	// shipment is unknown.
	AppendEvent(ctx context.Context, e *models.ShipmentEvent) error
}

// TrackingCache is a read-through cache of tracking details keyed by shipment id.
// Get returns a nil detail and nil error on a miss.
type TrackingCache interface {
	Get(ctx context.Context, shipmentID int64) (*models.TrackingDetail, error)
	Set(ctx context.Context, detail *models.TrackingDetail) error
	Invalidate(ctx context.Context, shipmentID int64) error
	InvalidateAll(ctx context.Context) error
}
