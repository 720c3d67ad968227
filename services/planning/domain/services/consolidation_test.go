package services

import (
	"errors"
	"testing"

	"github.com/ghuser/thoron/services/planning/domain"
	"github.com/ghuser/thoron/services/planning/domain/models"
)

func unplanned(id int64, weight float64) *models.Order {
	return &models.Order{ID: id, Weight: weight, Status: models.OrderStatusUnplanned}
}

func planned(id int64, weight float64) *models.Order {
	sid := int64(99)
	return &models.Order{ID: id, Weight: weight, Status: models.OrderStatusPlanned, ShipmentID: &sid}
}

func mustPlan(t *testing.T, ids []int64, weight float64) *models.LoadPlan {
	t.Helper()
	p, err := models.NewLoadPlan(ids, "Cleveland, OH", "Houston, TX", weight, "2 Orders Consolidated")
	if err != nil {
		t.Fatalf("NewLoadPlan: %v", err)
	}
	return p
}

func TestCheckConsolidation(t *testing.T) {
	tests := []struct {
		name      string
		ids       []int64
		orders    []*models.Order
		wantTotal float64
		wantErr   error
	}{
		{
			name:      "two unplanned orders under the limit",
			ids:       []int64{1, 2},
			orders:    []*models.Order{unplanned(1, 4500), unplanned(2, 6200)},
			wantTotal: 10700,
		},
		{
			name:      "exactly at the limit",
			ids:       []int64{1, 2},
			orders:    []*models.Order{unplanned(1, 20000), unplanned(2, 25000)},
			wantTotal: 45000,
		},
		{
			name:    "one pound over the limit",
			ids:     []int64{1, 2},
			orders:  []*models.Order{unplanned(1, 20000), unplanned(2, 25001)},
			wantErr: domain.ErrOverweightLoad,
		},
		{
			name:    "missing order",
			ids:     []int64{1, 3},
			orders:  []*models.Order{unplanned(1, 100)},
			wantErr: domain.ErrOrderNotFound,
		},
		{
			name:    "already planned order",
			ids:     []int64{1, 2},
			orders:  []*models.Order{unplanned(1, 100), planned(2, 100)},
			wantErr: domain.ErrOrderNotUnplanned,
		},
		{
			name:    "missing wins over planned",
			ids:     []int64{1, 2, 3},
			orders:  []*models.Order{planned(1, 100), unplanned(2, 100)},
			wantErr: domain.ErrOrderNotFound,
		},
		{
			name:      "extra stored orders are ignored",
			ids:       []int64{1},
			orders:    []*models.Order{unplanned(1, 100), unplanned(7, 50000)},
			wantTotal: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := CheckConsolidation(mustPlan(t, tt.ids, 0), tt.orders, DefaultMaxLoadWeightLbs)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if total != tt.wantTotal {
				t.Fatalf("total: got %v, want %v", total, tt.wantTotal)
			}
		})
	}
}

func TestCheckConsolidation_NamesMissingIDs(t *testing.T) {
	_, err := CheckConsolidation(mustPlan(t, []int64{4, 1, 9}, 0), []*models.Order{unplanned(1, 10)}, DefaultMaxLoadWeightLbs)
	if err == nil || err.Error() != "order not found: 4, 9" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateDeclaredWeight(t *testing.T) {
	if err := ValidateDeclaredWeight(mustPlan(t, []int64{1}, 45000), DefaultMaxLoadWeightLbs); err != nil {
		t.Fatalf("limit itself must be accepted: %v", err)
	}
	err := ValidateDeclaredWeight(mustPlan(t, []int64{1}, 45000.5), DefaultMaxLoadWeightLbs)
	if !errors.Is(err, domain.ErrOverweightLoad) {
		t.Fatalf("expected ErrOverweightLoad, got %v", err)
	}
}

func TestShipmentWeight(t *testing.T) {
	if got := ShipmentWeight(mustPlan(t, []int64{1}, 0), 10700); got != 10700 {
		t.Errorf("omitted declared weight: got %v, want 10700", got)
	}
	if got := ShipmentWeight(mustPlan(t, []int64{1}, 11000), 10700); got != 11000 {
		t.Errorf("declared weight: got %v, want 11000", got)
	}
}
