package services

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/thoron/pkg/logger"
	"github.com/ghuser/thoron/pkg/telemetry"
	planningdomain "github.com/ghuser/thoron/services/planning/domain"
	"github.com/ghuser/thoron/services/planning/domain/models"
	"github.com/ghuser/thoron/services/planning/domain/repositories"
	domainsvcs "github.com/ghuser/thoron/services/planning/domain/services"
)

const instrumentationName = "github.com/ghuser/thoron/services/planning"

// PlanLoadCommand is the input of a consolidation.
type PlanLoadCommand struct {
	OrderIDs    []int64
	Origin      string
	Destination string
	Weight      float64
	Dimensions  string
}

// PlanningService orchestrates order intake and load consolidation.
type PlanningService struct {
	repo      repositories.OrderRepository
	maxWeight float64
	log       logger.Logger

	tracer   trace.Tracer
	planned  metric.Int64Counter
	rejected metric.Int64Counter
}

// NewPlanningService returns a PlanningService enforcing maxWeight lbs per load.
// A non-positive maxWeight falls back to the legal truckload limit.
func NewPlanningService(repo repositories.OrderRepository, maxWeight float64, log logger.Logger) *PlanningService {
	if maxWeight <= 0 {
		maxWeight = domainsvcs.DefaultMaxLoadWeightLbs
	}

	return &PlanningService{
		repo:      repo,
		maxWeight: maxWeight,
		log:       log,
		tracer:    otel.Tracer(instrumentationName),
		planned:   telemetry.Counter(instrumentationName, "thoron.loads.planned", "Loads committed by order consolidation"),
		rejected:  telemetry.Counter(instrumentationName, "thoron.loads.rejected", "Consolidation attempts rejected or aborted, by reason"),
	}
}

// MaxWeight returns the enforced per-load weight limit in lbs.
func (s *PlanningService) MaxWeight() float64 {
	return s.maxWeight
}

// PlanLoad consolidates the command's orders into one new Pending shipment.
// Either the shipment exists and every order is Planned against it, or nothing
// changed and an error is returned.
func (s *PlanningService) PlanLoad(ctx context.Context, cmd PlanLoadCommand) (*models.PlannedLoad, error) {
	ctx, span := s.tracer.Start(ctx, "PlanningService.PlanLoad",
		trace.WithAttributes(attribute.Int("orders.requested", len(cmd.OrderIDs))))
	defer span.End()

	planned, err := s.planLoad(ctx, cmd)
	if err != nil {
		reason := rejectionReason(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
		s.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
		if reason == "storage" {
			s.log.ErrorContext(ctx, "load planning failed", "error", err)
		} else {
			s.log.WarnContext(ctx, "load planning rejected", "reason", reason, "error", err)
		}
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("shipment.id", planned.ShipmentID),
		attribute.Float64("shipment.weight_lbs", planned.Weight),
	)
	s.planned.Add(ctx, 1)
	s.log.InfoContext(ctx, "load planned",
		"shipment_id", planned.ShipmentID,
		"order_ids", planned.OrderIDs,
		"weight_lbs", planned.Weight,
		"order_weight_lbs", planned.OrderWeight,
	)
	return planned, nil
}

func (s *PlanningService) planLoad(ctx context.Context, cmd PlanLoadCommand) (*models.PlannedLoad, error) {
	plan, err := models.NewLoadPlan(cmd.OrderIDs, cmd.Origin, cmd.Destination, cmd.Weight, cmd.Dimensions)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateDeclaredWeight(plan, s.maxWeight); err != nil {
		return nil, err
	}

	planned, err := s.repo.Consolidate(ctx, plan, func(orders []*models.Order) (float64, float64, error) {
		total, err := domainsvcs.CheckConsolidation(plan, orders, s.maxWeight)
		if err != nil {
			return 0, 0, err
		}
		return domainsvcs.ShipmentWeight(plan, total), total, nil
	})
	if err != nil {
		return nil, fmt.Errorf("consolidate orders: %w", err)
	}
	return planned, nil
}

// ListOrders returns orders oldest first. An empty status lists every order.
func (s *PlanningService) ListOrders(ctx context.Context, status string) ([]*models.Order, error) {
	var filter *models.OrderStatus
	if status != "" {
		st, err := models.ParseOrderStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", planningdomain.ErrInvalidOrder, err)
		}
		filter = &st
	}

	orders, err := s.repo.FindByStatus(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// CreateOrderCommand is the input of order intake.
type CreateOrderCommand struct {
	CustomerName string
	PONumber     string
	Origin       string
	Destination  string
	Weight       float64
	Dimensions   string
}

// CreateOrder validates and stores a new Unplanned order.
func (s *PlanningService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*models.Order, error) {
	order, err := models.NewOrder(cmd.CustomerName, cmd.PONumber, cmd.Origin, cmd.Destination, cmd.Weight, cmd.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", planningdomain.ErrInvalidOrder, err)
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// rejectionReason buckets a planning error for metrics and logs.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, planningdomain.ErrEmptyOrderSet), errors.Is(err, planningdomain.ErrInvalidLoadPlan):
		return "invalid"
	case errors.Is(err, planningdomain.ErrOverweightLoad):
		return "overweight"
	case errors.Is(err, planningdomain.ErrOrderNotFound):
		return "not_found"
	case errors.Is(err, planningdomain.ErrOrderNotUnplanned), errors.Is(err, planningdomain.ErrPlanningConflict):
		return "conflict"
	default:
		return "storage"
	}
}
