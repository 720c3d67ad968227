package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghuser/thoron/pkg/logger"
	shipmentdomain "github.com/ghuser/thoron/services/shipment/domain"
	"github.com/ghuser/thoron/services/shipment/domain/models"
	"github.com/ghuser/thoron/services/shipment/domain/repositories"
	domainsvcs "github.com/ghuser/thoron/services/shipment/domain/services"
)

// CreateShipmentCommand is the input of direct shipment creation.
type CreateShipmentCommand struct {
	Origin            string
	Destination       string
	Weight            float64
	Dimensions        string
	FreightClass      string
	Status            string
	CarrierID         *int64
	TrackingNumber    *string
	EstimatedDelivery *string
}

// ShipmentService handles shipment listing and direct creation.
type ShipmentService struct {
	repo repositories.ShipmentRepository
	log  logger.Logger
}

// NewShipmentService returns a ShipmentService.
func NewShipmentService(repo repositories.ShipmentRepository, log logger.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, log: log}
}

// List returns every shipment.
func (s *ShipmentService) List(ctx context.Context) ([]*models.Shipment, error) {
	shipments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return shipments, nil
}

// Create validates and stores a shipment. When no freight class is given and
// the dimensions read as LxWxH inches, the NMFC density class is filled in.
func (s *ShipmentService) Create(ctx context.Context, cmd CreateShipmentCommand) (*models.Shipment, error) {
	status, err := models.ParseShipmentStatus(cmd.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
	}

	class := strings.TrimSpace(cmd.FreightClass)
	switch {
	case class == "":
		if derived, ok := domainsvcs.ClassifyFreight(cmd.Weight, cmd.Dimensions); ok {
			class = derived
		}
	case !domainsvcs.IsFreightClass(class):
		return nil, fmt.Errorf("%w: unknown freight class %q", shipmentdomain.ErrInvalidShipment, class)
	}

	shipment, err := models.NewShipment(cmd.Origin, cmd.Destination, cmd.Weight, cmd.Dimensions, class, status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
	}
	shipment.CarrierID = cmd.CarrierID
	shipment.TrackingNumber = trimmed(cmd.TrackingNumber)
	shipment.EstimatedDelivery = trimmed(cmd.EstimatedDelivery)

	if err := s.repo.Create(ctx, shipment); err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	s.log.InfoContext(ctx, "shipment created",
		"shipment_id", shipment.ID,
		"freight_class", shipment.FreightClass,
	)
	return shipment, nil
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
