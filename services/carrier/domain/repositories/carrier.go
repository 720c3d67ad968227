package repositories

import (
	"context"

	"github.com/ghuser/thoron/services/carrier/domain/models"
)

// CarrierRepository defines persistence operations for carriers. Lookups and
// writes against an unknown id return domain.ErrCarrierNotFound.
type CarrierRepository interface {
	// List returns carriers best rated first.
	List(ctx context.Context) ([]*models.Carrier, error)
	FindByID(ctx context.Context, id int64) (*models.Carrier, error)
	Create(ctx context.Context, c *models.Carrier) error
	Update(ctx context.Context, c *models.Carrier) error
	// Delete returns domain.ErrCarrierInUse when other records reference the carrier.
	Delete(ctx context.Context, id int64) error
}
