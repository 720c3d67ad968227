package services

import (
	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/services/document/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Document *DocumentService
}

// New wires all document application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Document: NewDocumentService(sqlstore.NewDocumentRepository(a.Db), a.Logger),
	}
}
