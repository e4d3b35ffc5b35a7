// internal/routes/preview_routes.go
package routes

import (
	"github.com/go-chi/chi/v5"

	"adproof/internal/handlers"
)

func RegisterPreviewRoutes(router chi.Router, app *App) {
	previewHandler := handlers.NewPreviewHandler(app.Studio, app.Cache)

	router.Route("/previews", func(r chi.Router) {
		r.Get("/", previewHandler.List)
		r.Route("/{slot}", func(r chi.Router) {
			r.Get("/", previewHandler.GetFrame)
			r.Get("/png", previewHandler.GetPNG)
			r.Get("/export", previewHandler.Export)
		})
	})
}
