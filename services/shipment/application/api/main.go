package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/services/shipment/application/handlers"
	appsvcs "github.com/ghuser/thoron/services/shipment/application/services"
)

// ShipmentRoutes registers shipment and tracking endpoints on the provided chi router.
// The tracking reset endpoint is only mounted in development.
func ShipmentRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/shipments", func(r chi.Router) {
			r.Get("/", handlers.NewListShipmentsHandler(svcs).Execute)
			r.Post("/", handlers.NewCreateShipmentHandler(svcs).Execute)
		})
		r.Route("/tracking", func(r chi.Router) {
			r.Get("/", handlers.NewTrackingBoardHandler(svcs).Execute)
			if a.Config.IsDevelopment() {
				r.Post("/reset", handlers.NewResetTrackingHandler(svcs).Execute)
			}
			r.Get("/{id}", handlers.NewTrackingDetailHandler(svcs).Execute)
			r.Post("/{id}/events", handlers.NewAddTrackingEventHandler(svcs).Execute)
		})
	})
}
