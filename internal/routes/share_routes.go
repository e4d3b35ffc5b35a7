// internal/routes/share_routes.go
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adproof/internal/config"
	"adproof/internal/handlers"
)

func RegisterShareRoutes(router chi.Router, app *App, cfg *config.Config, gate func(http.Handler) http.Handler) {
	shareHandler := handlers.NewShareHandler(app.Signer, app.Studio, cfg.ShareTTL)

	router.With(gate).Post("/share", shareHandler.Create)
	// Rendering stays public; the signed token is the authorization.
	router.Get("/share/{token}/previews/{slot}/png", shareHandler.RenderPNG)
}
