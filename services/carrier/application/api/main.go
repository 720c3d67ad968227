package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/services/carrier/application/handlers"
	appsvcs "github.com/ghuser/thoron/services/carrier/application/services"
)

// CarrierRoutes registers carrier directory and quote endpoints on the provided
// chi router. The carrier reset endpoint is only mounted in development.
func CarrierRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/carriers", func(r chi.Router) {
			r.Get("/", handlers.NewListCarriersHandler(svcs).Execute)
			r.Post("/", handlers.NewCreateCarrierHandler(svcs).Execute)
			if a.Config.IsDevelopment() {
				r.Post("/reset", handlers.NewResetCarriersHandler(svcs).Execute)
			}
			r.Get("/{id}", handlers.NewGetCarrierHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewUpdateCarrierHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteCarrierHandler(svcs).Execute)
		})
		r.Post("/quotes", handlers.NewQuotesHandler(svcs).Execute)
	})
}
