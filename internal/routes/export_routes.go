// internal/routes/export_routes.go
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adproof/internal/handlers"
)

// RegisterExportRoutes wires bulk export and the notification feed the
// export failures report into.
func RegisterExportRoutes(router chi.Router, app *App, gate func(http.Handler) http.Handler) {
	exportHandler := handlers.NewExportHandler(app.Runner)
	notificationHandler := handlers.NewNotificationHandler(app.Notifier)

	router.With(gate).Post("/exports", exportHandler.Create)
	router.Get("/notifications", notificationHandler.List)
}
