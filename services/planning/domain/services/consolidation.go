// Package services contains stateless domain services for the planning bounded context.
// They enforce the consolidation rules over domain types only and have no
// infrastructure dependencies.
package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ghuser/thoron/services/planning/domain"
	"github.com/ghuser/thoron/services/planning/domain/models"
)

// DefaultMaxLoadWeightLbs is the legal truckload limit in the continental US.
const DefaultMaxLoadWeightLbs = 45000

// ValidateDeclaredWeight rejects a plan whose declared weight already exceeds
// the limit, before any storage is touched.
func ValidateDeclaredWeight(plan *models.LoadPlan, maxWeight float64) error {
	if plan.Weight > maxWeight {
		return fmt.Errorf("%w: declared %s lbs, limit %s lbs",
			domain.ErrOverweightLoad, formatLbs(plan.Weight), formatLbs(maxWeight))
	}
	return nil
}

// CheckConsolidation verifies the stored orders can be consolidated under plan:
// every id must be present in orders, every order must be Unplanned, and the
// combined weight must not exceed maxWeight. It returns the combined weight.
func CheckConsolidation(plan *models.LoadPlan, orders []*models.Order, maxWeight float64) (float64, error) {
	byID := make(map[int64]*models.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}

	var missing, planned []int64
	var total float64
	for _, id := range plan.OrderIDs {
		o, ok := byID[id]
		switch {
		case !ok:
			missing = append(missing, id)
		case o.Status != models.OrderStatusUnplanned:
			planned = append(planned, id)
		default:
			total += o.Weight
		}
	}

	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, joinIDs(missing))
	}
	if len(planned) > 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrOrderNotUnplanned, joinIDs(planned))
	}
	if total > maxWeight {
		return 0, fmt.Errorf("%w: orders total %s lbs, limit %s lbs",
			domain.ErrOverweightLoad, formatLbs(total), formatLbs(maxWeight))
	}
	return total, nil
}

// ShipmentWeight is the weight recorded on the consolidated shipment: the
// declared weight when one was given, otherwise the orders' combined weight.
func ShipmentWeight(plan *models.LoadPlan, orderWeight float64) float64 {
	if plan.Weight > 0 {
		return plan.Weight
	}
	return orderWeight
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}

func formatLbs(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
