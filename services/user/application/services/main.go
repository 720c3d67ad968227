package services

import (
	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/services/user/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	User *UserService
}

// New wires all user application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		User: NewUserService(sqlstore.NewUserRepository(a.Db), a.Logger),
	}
}
