// internal/routes/preset_routes.go
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adproof/internal/handlers"
)

func RegisterPresetRoutes(router chi.Router, app *App, gate func(http.Handler) http.Handler) {
	presetHandler := handlers.NewPresetHandler(app.Presets, app.Studio)

	router.Route("/presets", func(r chi.Router) {
		r.Get("/", presetHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(gate)
			r.Post("/", presetHandler.Create)
			r.Post("/{id}/apply", presetHandler.Apply)
			r.Delete("/{id}", presetHandler.Delete)
		})
	})
}
