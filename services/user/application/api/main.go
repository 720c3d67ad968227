package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/services/user/application/handlers"
	appsvcs "github.com/ghuser/thoron/services/user/application/services"
)

// UserRoutes registers user management endpoints on the provided chi router.
func UserRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/users", func(r chi.Router) {
		r.Get("/", handlers.NewListUsersHandler(svcs).Execute)
		r.Put("/{id}/role", handlers.NewChangeRoleHandler(svcs).Execute)
	})
}
