// internal/routes/routes.go
package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"adproof/internal/assets"
	"adproof/internal/cache"
	"adproof/internal/config"
	appmiddleware "adproof/internal/middleware"
	"adproof/internal/preview"
	"adproof/internal/repository"
	"adproof/internal/services"
	"adproof/internal/storage"
)

// App bundles the long-lived studio components. One instance is built in
// main and shared by every route group; the studio and library are
// in-memory singletons, so they cannot be constructed per route the way
// database repositories are.
type App struct {
	Studio   *preview.Studio
	Library  *assets.Library
	Store    storage.ObjectStorage
	Cache    cache.RenderCache
	Presets  repository.PresetRepository
	Notifier *services.Notifier
	Runner   *services.ExportRunner
	Signer   *services.ShareSigner
}

func SetupRoutes(db *sql.DB, cfg *config.Config, app *App) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "If-None-Match"},
		ExposedHeaders: []string{"ETag"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"service": "adproof",
			"message": "Ad creative preview studio API",
			"docs":    "/swagger/index.html",
		})
	})

	// Health check. The db section only appears when a database is
	// configured; the preset store falls back to a JSON file without one.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"status": "ok"}
		status := http.StatusOK

		if db != nil {
			dbStatus := map[string]string{"status": "ok"}
			if err := db.PingContext(r.Context()); err != nil {
				dbStatus["status"] = "down"
				dbStatus["error"] = err.Error()
				body["status"] = "degraded"
				status = http.StatusServiceUnavailable
			}
			body["db"] = dbStatus
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	})

	gate := editGate(cfg)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterSizeRoutes(r)
		RegisterStudioRoutes(r, app, gate)
		RegisterAssetRoutes(r, app, gate)
		RegisterPreviewRoutes(r, app)
		RegisterExportRoutes(r, app, gate)
		RegisterPresetRoutes(r, app, gate)
		RegisterShareRoutes(r, app, cfg, gate)
	})

	RegisterSwaggerRoutes(r)

	return r
}

// editGate returns the middleware protecting mutating routes, or a
// pass-through when no edit secret is configured.
func editGate(cfg *config.Config) func(http.Handler) http.Handler {
	if cfg.EditSecret == "" {
		return func(next http.Handler) http.Handler { return next }
	}
	return appmiddleware.EditorAuth(cfg.EditSecret)
}
