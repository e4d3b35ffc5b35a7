// internal/routes/asset_routes.go
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adproof/internal/handlers"
)

func RegisterAssetRoutes(router chi.Router, app *App, gate func(http.Handler) http.Handler) {
	assetHandler := handlers.NewAssetHandler(app.Library, app.Studio, app.Store)

	router.Route("/assets", func(r chi.Router) {
		r.Get("/", assetHandler.List)
		r.With(gate).Post("/", assetHandler.Upload)
	})
}
