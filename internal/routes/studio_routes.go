// internal/routes/studio_routes.go
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"adproof/internal/handlers"
)

func RegisterStudioRoutes(router chi.Router, app *App, gate func(http.Handler) http.Handler) {
	log.Println("Registering studio routes...")

	studioHandler := handlers.NewStudioHandler(app.Studio)
	eventsHandler := handlers.NewEventsHandler(app.Studio)

	router.Route("/studio", func(r chi.Router) {
		r.Get("/", studioHandler.GetStudio)
		r.Get("/events", eventsHandler.Stream)

		r.Group(func(r chi.Router) {
			r.Use(gate)
			r.Put("/content", studioHandler.UpdateContent)
			r.Put("/scale", studioHandler.SetScale)
			r.Put("/offset", studioHandler.SetOffset)
			r.Put("/image", studioHandler.SelectImage)
			r.Post("/pointer", studioHandler.Pointer)
		})
	})
}
