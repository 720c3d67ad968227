package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/thoron/pkg/logger"
	"github.com/ghuser/thoron/pkg/telemetry"
	shipmentdomain "github.com/ghuser/thoron/services/shipment/domain"
	"github.com/ghuser/thoron/services/shipment/domain/models"
	"github.com/ghuser/thoron/services/shipment/domain/repositories"
)

const instrumentationName = "github.com/ghuser/thoron/services/shipment"

// Resetter restores the demo data set. Implemented by seed.Seeder.
type Resetter interface {
	ResetTracking(ctx context.Context) error
}

// AddEventCommand is the input for appending a tracking milestone.
type AddEventCommand struct {
	ShipmentID int64
	EventType  string
	Location   string
	Message    string
	EventTime  time.Time // zero means now
}

// TrackingService serves the tracking board and shipment timelines.
type TrackingService struct {
	repo  repositories.ShipmentRepository
	cache repositories.TrackingCache // nil when Redis is not configured
	reset Resetter
	log   logger.Logger

	lookups    metric.Int64Counter
	milestones metric.Int64Counter
}

// NewTrackingService returns a TrackingService. cache may be nil.
func NewTrackingService(repo repositories.ShipmentRepository, cache repositories.TrackingCache, reset Resetter, log logger.Logger) *TrackingService {
	lookups := telemetry.Counter(instrumentationName, "thoron.tracking.cache.lookups",
		"Timeline cache lookups, by result")
	milestones := telemetry.Counter(instrumentationName, "thoron.tracking.milestones",
		"Tracking milestones recorded, by event type")
	return &TrackingService{
		repo:       repo,
		cache:      cache,
		reset:      reset,
		log:        log,
		lookups:    lookups,
		milestones: milestones,
	}
}

// Board lists every shipment, newest first, with carrier and latest milestone.
func (s *TrackingService) Board(ctx context.Context) ([]*models.TrackingSummary, error) {
	board, err := s.repo.TrackingBoard(ctx)
	if err != nil {
		return nil, fmt.Errorf("tracking board: %w", err)
	}
	return board, nil
}

// Detail returns a shipment's full timeline. Reads go through the cache when
// one is configured; cache failures fall back to the database.
func (s *TrackingService) Detail(ctx context.Context, shipmentID int64) (*models.TrackingDetail, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, shipmentID)
		switch {
		case err != nil:
			s.lookup(ctx, "error")
			s.log.WarnContext(ctx, "tracking cache read failed", "shipment_id", shipmentID, "error", err)
		case cached != nil:
			s.lookup(ctx, "hit")
			return cached, nil
		default:
			s.lookup(ctx, "miss")
		}
	}

	detail, err := s.repo.TrackingDetail(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("tracking detail: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, detail); err != nil {
			s.log.WarnContext(ctx, "tracking cache write failed", "shipment_id", shipmentID, "error", err)
		}
	}
	return detail, nil
}

// AddEvent appends a milestone to a shipment's timeline and drops the cached detail.
func (s *TrackingService) AddEvent(ctx context.Context, cmd AddEventCommand) (*models.ShipmentEvent, error) {
	event, err := models.NewShipmentEvent(cmd.ShipmentID, cmd.EventType, cmd.Location, cmd.Message, cmd.EventTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidEvent, err)
	}
	if err := s.repo.AppendEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("append tracking event: %w", err)
	}

	s.Invalidate(ctx, cmd.ShipmentID)
	s.milestones.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", event.EventType)))
	s.log.InfoContext(ctx, "tracking event recorded",
		"shipment_id", event.ShipmentID,
		"event_id", event.ID,
		"event_type", event.EventType,
	)
	return event, nil
}

// Invalidate drops the cached detail of one shipment. Failures are logged; the
// entry expires on its own.
func (s *TrackingService) Invalidate(ctx context.Context, shipmentID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, shipmentID); err != nil {
		s.log.WarnContext(ctx, "tracking cache invalidation failed", "shipment_id", shipmentID, "error", err)
	}
}

// Warm loads a shipment's detail into the cache. It is a no-op without a cache.
func (s *TrackingService) Warm(ctx context.Context, shipmentID int64) error {
	if s.cache == nil {
		return nil
	}
	detail, err := s.repo.TrackingDetail(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("warm tracking cache: %w", err)
	}
	return s.cache.Set(ctx, detail)
}

// Reset restores the demo shipments and timelines and empties the cache.
func (s *TrackingService) Reset(ctx context.Context) error {
	if err := s.reset.ResetTracking(ctx); err != nil {
		return fmt.Errorf("reset tracking: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			s.log.WarnContext(ctx, "tracking cache flush failed", "error", err)
		}
	}
	return nil
}

func (s *TrackingService) lookup(ctx context.Context, result string) {
	s.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
