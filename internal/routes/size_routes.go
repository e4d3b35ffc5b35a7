// internal/routes/size_routes.go
package routes

import (
	"github.com/go-chi/chi/v5"

	"adproof/internal/handlers"
)

func RegisterSizeRoutes(router chi.Router) {
	sizesHandler := handlers.NewSizesHandler()

	router.Get("/sizes", sizesHandler.ListSizes)
}
