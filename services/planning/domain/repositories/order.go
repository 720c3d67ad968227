package repositories

import (
	"context"

	"github.com/ghuser/thoron/services/planning/domain/models"
)

// ConsolidationPolicy decides, from the stored state of the plan's orders read
// inside the consolidation transaction, whether the plan may commit. It returns
// the weight to record on the new shipment and the orders' combined weight.
type ConsolidationPolicy func(orders []*models.Order) (shipmentWeight, orderWeight float64, err error)

// OrderRepository is the persistence interface for orders and load planning.
// The domain layer owns this interface; infrastructure implements it.
type OrderRepository interface {
	// FindByStatus lists orders oldest first. A nil status lists every order.
	FindByStatus(ctx context.Context, status *models.OrderStatus) ([]*models.Order, error)

	// Create inserts a new order and sets its ID.
	Create(ctx context.Context, order *models.Order) error

	// Consolidate atomically creates one Pending shipment for plan and marks
	// every plan order Planned against it. policy runs inside the transaction;
	// any error it returns rolls everything back.
	Consolidate(ctx context.Context, plan *models.LoadPlan, policy ConsolidationPolicy) (*models.PlannedLoad, error)
}
