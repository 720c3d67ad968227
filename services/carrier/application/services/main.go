package services

import (
	"context"

	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/pkg/cache"
	"github.com/ghuser/thoron/pkg/seed"
	"github.com/ghuser/thoron/services/carrier/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Carrier *CarrierService
	Quote   QuoteService
}

// New wires all carrier application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	var flush CacheFlusher
	if a.Redis != nil {
		flush = func(ctx context.Context) error {
			return cache.FlushPrefix(ctx, a.Redis, cache.TrackingPrefix)
		}
	}
	return &Services{
		Carrier: NewCarrierService(sqlstore.NewCarrierRepository(a.Db), seed.New(a.Db, a.Logger), flush, a.Logger),
	}
}
