package models

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/ghuser/thoron/services/planning/domain"
)

// MaxOrdersPerLoad bounds a single consolidation. It keeps the IN-list of the
// order lookup well under the bind-parameter limits of SQLite and Postgres.
const MaxOrdersPerLoad = 500

// LoadPlan is a request to consolidate a set of Unplanned orders into one
// new Pending shipment.
type LoadPlan struct {
	OrderIDs    []int64 // distinct, ascending
	Origin      string
	Destination string
	Weight      float64 // declared aggregate weight in lbs; 0 means "use the orders' total"
	Dimensions  string
}

// NewLoadPlan validates the request shape and collapses duplicate order ids.
// Checks that need stored state (existence, status, combined weight) happen
// later inside the consolidation transaction.
func NewLoadPlan(orderIDs []int64, origin, destination string, weight float64, dimensions string) (*LoadPlan, error) {
	if len(orderIDs) == 0 {
		return nil, domain.ErrEmptyOrderSet
	}

	ids := slices.Clone(orderIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	if len(ids) > MaxOrdersPerLoad {
		return nil, fmt.Errorf("%w: at most %d orders per load, got %d",
			domain.ErrInvalidLoadPlan, MaxOrdersPerLoad, len(ids))
	}
	if ids[0] <= 0 {
		return nil, fmt.Errorf("%w: order ids must be positive", domain.ErrInvalidLoadPlan)
	}

	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", domain.ErrInvalidLoadPlan)
	}

	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return nil, fmt.Errorf("%w: weight must be a non-negative number of lbs", domain.ErrInvalidLoadPlan)
	}

	return &LoadPlan{
		OrderIDs:    ids,
		Origin:      origin,
		Destination: destination,
		Weight:      weight,
		Dimensions:  strings.TrimSpace(dimensions),
	}, nil
}

// PlannedLoad is the committed outcome of a consolidation.
type PlannedLoad struct {
	ShipmentID  int64
	OrderIDs    []int64
	Origin      string
	Destination string
	Weight      float64 // weight stored on the shipment
	OrderWeight float64 // combined weight of the stored orders
	PlannedAt   time.Time
}
