package services

import (
	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/services/planning/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Planning *PlanningService
}

// New wires all planning application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := sqlstore.NewOrderRepository(a.Db, a.EventBus)
	return &Services{
		Planning: NewPlanningService(repo, a.Config.MaxLoadWeightLbs, a.Logger),
	}
}
