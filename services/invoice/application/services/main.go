package services

import (
	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/services/invoice/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Invoice *InvoiceService
}

// New wires all invoice application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Invoice: NewInvoiceService(sqlstore.NewInvoiceRepository(a.Db), a.Logger),
	}
}
