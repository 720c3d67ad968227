package services

import (
	"context"
	"fmt"

	"github.com/ghuser/thoron/pkg/logger"
	carrierdomain "github.com/ghuser/thoron/services/carrier/domain"
	"github.com/ghuser/thoron/services/carrier/domain/models"
	"github.com/ghuser/thoron/services/carrier/domain/repositories"
)

// Resetter restores the demo carriers. Implemented by seed.Seeder.
type Resetter interface {
	ResetCarriers(ctx context.Context) error
}

// CacheFlusher drops cached read models derived from carrier data.
type CacheFlusher func(ctx context.Context) error

// CarrierService manages the carrier directory.
type CarrierService struct {
	repo  repositories.CarrierRepository
	reset Resetter
	flush CacheFlusher // nil when Redis is not configured
	log   logger.Logger
}

// NewCarrierService returns a CarrierService. flush may be nil.
func NewCarrierService(repo repositories.CarrierRepository, reset Resetter, flush CacheFlusher, log logger.Logger) *CarrierService {
	return &CarrierService{repo: repo, reset: reset, flush: flush, log: log}
}

// List returns carriers best rated first.
func (s *CarrierService) List(ctx context.Context) ([]*models.Carrier, error) {
	carriers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list carriers: %w", err)
	}
	return carriers, nil
}

func (s *CarrierService) Get(ctx context.Context, id int64) (*models.Carrier, error) {
	return s.repo.FindByID(ctx, id)
}

// Create onboards a carrier with default performance figures.
func (s *CarrierService) Create(ctx context.Context, p models.CarrierProfile) (*models.Carrier, error) {
	c, err := models.NewCarrier(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", carrierdomain.ErrInvalidCarrier, err)
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create carrier: %w", err)
	}
	s.log.InfoContext(ctx, "carrier created", "carrier_id", c.ID, "status", c.Status)
	return c, nil
}

// Update replaces the editable profile of carrier id.
func (s *CarrierService) Update(ctx context.Context, id int64, p models.CarrierProfile) (*models.Carrier, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(p); err != nil {
		return nil, fmt.Errorf("%w: %w", carrierdomain.ErrInvalidCarrier, err)
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "carrier updated", "carrier_id", c.ID, "status", c.Status)
	return c, nil
}

func (s *CarrierService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "carrier deleted", "carrier_id", id)
	return nil
}

// Reset restores the demo carriers. Shipments, events, orders, documents and
// invoices are reseeded with them since they reference carriers, so cached
// shipment timelines are flushed too.
func (s *CarrierService) Reset(ctx context.Context) error {
	if err := s.reset.ResetCarriers(ctx); err != nil {
		return fmt.Errorf("reset carriers: %w", err)
	}
	if s.flush != nil {
		if err := s.flush(ctx); err != nil {
			s.log.WarnContext(ctx, "tracking cache flush failed", "error", err)
		}
	}
	s.log.InfoContext(ctx, "carrier demo data reset")
	return nil
}
