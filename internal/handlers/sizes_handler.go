// internal/handlers/sizes_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"adproof/internal/geometry"
)

type SizesHandler struct{}

func NewSizesHandler() *SizesHandler {
	return &SizesHandler{}
}

type sizeResponse struct {
	Slug string `json:"slug"`
	geometry.Slot
	Classification geometry.Classification `json:"classification"`
}

// ListSizes returns the fixed target-size catalog with each slot's
// classification.
func (h *SizesHandler) ListSizes(w http.ResponseWriter, r *http.Request) {
	catalog := geometry.Catalog()
	out := make([]sizeResponse, 0, len(catalog))
	for _, slot := range catalog {
		out = append(out, sizeResponse{
			Slug:           slot.Slug(),
			Slot:           slot,
			Classification: slot.Classification(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
