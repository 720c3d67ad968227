package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/services/planning/application/handlers"
	appsvcs "github.com/ghuser/thoron/services/planning/application/services"
)

// OrderRoutes registers order intake and load planning endpoints on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handlers.NewListOrdersHandler(svcs).Execute)
			r.Post("/", handlers.NewCreateOrderHandler(svcs).Execute)
			r.Post("/plan", handlers.NewPlanLoadHandler(svcs).Execute)
		})
	})
}
