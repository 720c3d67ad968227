package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/logger"
	planningdomain "github.com/ghuser/thoron/services/planning/domain"
	"github.com/ghuser/thoron/services/planning/domain/models"
	"github.com/ghuser/thoron/services/planning/domain/repositories"
)

// fakeRepo runs the consolidation policy against an in-memory order set.
type fakeRepo struct {
	orders          []*models.Order
	consolidateErr  error
	consolidateHits int
	created         []*models.Order
	lastStatus      *models.OrderStatus
}

func (f *fakeRepo) FindByStatus(_ context.Context, status *models.OrderStatus) ([]*models.Order, error) {
	f.lastStatus = status
	return f.orders, nil
}

func (f *fakeRepo) Create(_ context.Context, o *models.Order) error {
	o.ID = int64(len(f.created) + 1)
	f.created = append(f.created, o)
	return nil
}

func (f *fakeRepo) Consolidate(_ context.Context, plan *models.LoadPlan, policy repositories.ConsolidationPolicy) (*models.PlannedLoad, error) {
	f.consolidateHits++
	if f.consolidateErr != nil {
		return nil, f.consolidateErr
	}
	weight, orderWeight, err := policy(f.orders)
	if err != nil {
		return nil, err
	}
	return &models.PlannedLoad{ShipmentID: 42, OrderIDs: plan.OrderIDs, Weight: weight, OrderWeight: orderWeight}, nil
}

func newTestService(repo *fakeRepo) *PlanningService {
	return NewPlanningService(repo, 45000, logger.New(&config.Config{LogLevel: "error"}))
}

func order(id int64, weight float64) *models.Order {
	return &models.Order{ID: id, Weight: weight, Status: models.OrderStatusUnplanned}
}

func TestPlanLoad_Success(t *testing.T) {
	repo := &fakeRepo{orders: []*models.Order{order(1, 4500), order(2, 6200)}}
	svc := newTestService(repo)

	planned, err := svc.PlanLoad(context.Background(), PlanLoadCommand{
		OrderIDs:    []int64{1, 2},
		Origin:      "Cleveland, OH",
		Destination: "Houston, TX",
		Weight:      10700,
		Dimensions:  "2 Orders Consolidated",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if planned.ShipmentID != 42 {
		t.Errorf("ShipmentID: got %d", planned.ShipmentID)
	}
	if planned.Weight != 10700 || planned.OrderWeight != 10700 {
		t.Errorf("weights: got %v / %v", planned.Weight, planned.OrderWeight)
	}
}

func TestPlanLoad_RejectsBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		cmd     PlanLoadCommand
		wantErr error
	}{
		{"empty order set", PlanLoadCommand{Origin: "A", Destination: "B"}, planningdomain.ErrEmptyOrderSet},
		{"missing origin", PlanLoadCommand{OrderIDs: []int64{1}, Destination: "B"}, planningdomain.ErrInvalidLoadPlan},
		{"declared overweight", PlanLoadCommand{OrderIDs: []int64{1}, Origin: "A", Destination: "B", Weight: 45001}, planningdomain.ErrOverweightLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			_, err := newTestService(repo).PlanLoad(context.Background(), tt.cmd)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if repo.consolidateHits != 0 {
				t.Fatal("repository must not be called for an invalid plan")
			}
		})
	}
}

func TestPlanLoad_StoredWeightOverLimit(t *testing.T) {
	repo := &fakeRepo{orders: []*models.Order{order(1, 30000), order(2, 20000)}}
	_, err := newTestService(repo).PlanLoad(context.Background(), PlanLoadCommand{
		OrderIDs: []int64{1, 2}, Origin: "A", Destination: "B", Weight: 1000,
	})
	if !errors.Is(err, planningdomain.ErrOverweightLoad) {
		t.Fatalf("expected ErrOverweightLoad, got %v", err)
	}
}

func TestPlanLoad_PropagatesStorageError(t *testing.T) {
	dbErr := errors.New("disk I/O error")
	repo := &fakeRepo{consolidateErr: dbErr}
	_, err := newTestService(repo).PlanLoad(context.Background(), PlanLoadCommand{
		OrderIDs: []int64{1}, Origin: "A", Destination: "B",
	})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestNewPlanningService_DefaultsLimit(t *testing.T) {
	svc := NewPlanningService(&fakeRepo{}, 0, logger.New(&config.Config{LogLevel: "error"}))
	if svc.MaxWeight() != 45000 {
		t.Fatalf("MaxWeight: got %v, want 45000", svc.MaxWeight())
	}
}

func TestListOrders_StatusFilter(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	if _, err := svc.ListOrders(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastStatus != nil {
		t.Fatal("empty status must not filter")
	}

	if _, err := svc.ListOrders(context.Background(), "Unplanned"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastStatus == nil || *repo.lastStatus != models.OrderStatusUnplanned {
		t.Fatalf("expected Unplanned filter, got %v", repo.lastStatus)
	}

	if _, err := svc.ListOrders(context.Background(), "Shipped"); !errors.Is(err, planningdomain.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestCreateOrder(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	o, err := svc.CreateOrder(context.Background(), CreateOrderCommand{
		CustomerName: "Acme Corp", PONumber: "PO-1", Origin: "A", Destination: "B", Weight: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID != 1 || o.Status != models.OrderStatusUnplanned {
		t.Fatalf("unexpected order: %+v", o)
	}

	_, err = svc.CreateOrder(context.Background(), CreateOrderCommand{CustomerName: "Acme Corp", PONumber: "PO-2", Origin: "A", Destination: "B"})
	if !errors.Is(err, planningdomain.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestRejectionReason(t *testing.T) {
	tests := map[error]string{
		planningdomain.ErrEmptyOrderSet:     "invalid",
		planningdomain.ErrOverweightLoad:    "overweight",
		planningdomain.ErrOrderNotFound:     "not_found",
		planningdomain.ErrOrderNotUnplanned: "conflict",
		planningdomain.ErrPlanningConflict:  "conflict",
		errors.New("db down"):               "storage",
	}
	for err, want := range tests {
		if got := rejectionReason(err); got != want {
			t.Errorf("rejectionReason(%v): got %q, want %q", err, got, want)
		}
	}
}
