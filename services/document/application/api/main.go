package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/services/document/application/handlers"
	appsvcs "github.com/ghuser/thoron/services/document/application/services"
)

// DocumentRoutes registers document endpoints on the provided chi router.
func DocumentRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", handlers.NewListDocumentsHandler(svcs).Execute)
		r.Post("/", handlers.NewUploadDocumentHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteDocumentHandler(svcs).Execute)
	})
}
