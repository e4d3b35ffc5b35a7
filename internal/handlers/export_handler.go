// internal/handlers/export_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"adproof/internal/render"
	"adproof/internal/services"
)

type ExportHandler struct {
	runner *services.ExportRunner
}

func NewExportHandler(runner *services.ExportRunner) *ExportHandler {
	return &ExportHandler{runner: runner}
}

type createExportRequest struct {
	PixelRatio float64 `json:"pixel_ratio"`
}

// @Tags Exports
// @Summary Export every slot to object storage
// @Accept json
// @Produce json
// @Success 202 {object} map[string]interface{}
// @Router /exports [post]
func (h *ExportHandler) Create(w http.ResponseWriter, r *http.Request) {
	// Body is optional; an empty or absent one means default pixel ratio.
	var req createExportRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.PixelRatio <= 0 {
		req.PixelRatio = render.DefaultPixelRatio
	}

	scheduled := h.runner.ExportAll(req.PixelRatio)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"scheduled": scheduled,
		"message":   "Export started",
	})
}
