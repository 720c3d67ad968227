package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/services/invoice/application/handlers"
	appsvcs "github.com/ghuser/thoron/services/invoice/application/services"
)

// InvoiceRoutes registers freight audit endpoints on the provided chi router.
func InvoiceRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", handlers.NewListInvoicesHandler(svcs).Execute)
		r.Put("/{id}/status", handlers.NewUpdateInvoiceStatusHandler(svcs).Execute)
	})
}
