package services

import (
	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/pkg/seed"
	"github.com/ghuser/thoron/services/shipment/domain/repositories"
	"github.com/ghuser/thoron/services/shipment/infrastructure/cache"
	"github.com/ghuser/thoron/services/shipment/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Shipment *ShipmentService
	Tracking *TrackingService
}

// New wires all shipment application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := sqlstore.NewShipmentRepository(a.Db, a.EventBus)

	var trackingCache repositories.TrackingCache
	if a.Redis != nil {
		trackingCache = cache.NewTrackingCache(a.Redis)
	}

	return &Services{
		Shipment: NewShipmentService(repo, a.Logger),
		Tracking: NewTrackingService(repo, trackingCache, seed.New(a.Db, a.Logger), a.Logger),
	}
}
