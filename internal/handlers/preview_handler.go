// internal/handlers/preview_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"adproof/internal/cache"
	"adproof/internal/geometry"
	"adproof/internal/layout"
	"adproof/internal/preview"
	"adproof/internal/render"
)

type PreviewHandler struct {
	studio *preview.Studio
	cache  cache.RenderCache
}

func NewPreviewHandler(studio *preview.Studio, renderCache cache.RenderCache) *PreviewHandler {
	return &PreviewHandler{
		studio: studio,
		cache:  renderCache,
	}
}

func (h *PreviewHandler) find(slug string) *preview.Instance {
	for _, inst := range preview.Instances(h.studio) {
		if inst.Slot.Slug() == slug {
			return inst
		}
	}
	return nil
}

// parsePixelRatio reads the ?scale= query, defaulting to the standard
// device pixel ratio. Zero, negative and absurd ratios are rejected.
func parsePixelRatio(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("scale")
	if raw == "" {
		return render.DefaultPixelRatio, nil
	}
	ratio, err := strconv.ParseFloat(raw, 64)
	if err != nil || ratio <= 0 || ratio > 4 {
		return 0, fmt.Errorf("scale must be a number in (0, 4]")
	}
	return ratio, nil
}

type previewSummary struct {
	Slug           string                  `json:"slug"`
	Label          string                  `json:"label"`
	Width          int                     `json:"width"`
	Height         int                     `json:"height"`
	Primary        bool                    `json:"primary"`
	Classification geometry.Classification `json:"classification"`
	PNG            string                  `json:"png"`
}

// @Tags Previews
// @Summary List all preview instances
// @Produce json
// @Success 200 {array} previewSummary
// @Router /previews [get]
func (h *PreviewHandler) List(w http.ResponseWriter, r *http.Request) {
	instances := preview.Instances(h.studio)
	out := make([]previewSummary, 0, len(instances))
	for _, inst := range instances {
		slug := inst.Slot.Slug()
		out = append(out, previewSummary{
			Slug:           slug,
			Label:          inst.Slot.Label,
			Width:          inst.Slot.Width,
			Height:         inst.Slot.Height,
			Primary:        inst.Slot.Primary,
			Classification: inst.Slot.Classification(),
			PNG:            "/api/v1/previews/" + slug + "/png",
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

type frameResponse struct {
	Slug    string       `json:"slug"`
	Label   string       `json:"label"`
	Primary bool         `json:"primary"`
	Frame   layout.Frame `json:"frame"`
}

// @Tags Previews
// @Summary Get one instance's computed frame
// @Produce json
// @Param slot path string true "Slot slug"
// @Success 200 {object} frameResponse
// @Failure 404 {object} map[string]interface{}
// @Router /previews/{slot} [get]
func (h *PreviewHandler) GetFrame(w http.ResponseWriter, r *http.Request) {
	inst := h.find(chi.URLParam(r, "slot"))
	if inst == nil {
		writeJSONErrorResponse(w, http.StatusNotFound, "unknown_slot", "No such preview slot")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(frameResponse{
		Slug:    inst.Slot.Slug(),
		Label:   inst.Slot.Label,
		Primary: inst.Slot.Primary,
		Frame:   inst.Frame(),
	})
}

// @Tags Previews
// @Summary Render one instance to PNG
// @Produce png
// @Param slot path string true "Slot slug"
// @Param scale query number false "Pixel ratio, default 2"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /previews/{slot}/png [get]
func (h *PreviewHandler) GetPNG(w http.ResponseWriter, r *http.Request) {
	inst := h.find(chi.URLParam(r, "slot"))
	if inst == nil {
		writeJSONErrorResponse(w, http.StatusNotFound, "unknown_slot", "No such preview slot")
		return
	}

	ratio, err := parsePixelRatio(r)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_scale", err.Error())
		return
	}

	key := cache.Key(h.studio.Version(), inst.Slot.Slug(), ratio)
	etag := `"` + key + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	data, ok := h.cache.Get(r.Context(), key)
	if !ok {
		data, err = inst.Render(ratio)
		if err != nil {
			log.Printf("Failed to render %s: %v", inst.Slot.Slug(), err)
			writeJSONErrorResponse(w, http.StatusInternalServerError, "render_failed", "Failed to render preview")
			return
		}
		h.cache.Set(r.Context(), key, data)
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(data)
}

// @Tags Previews
// @Summary Download one instance as a PNG attachment
// @Produce png
// @Param slot path string true "Slot slug"
// @Param scale query number false "Pixel ratio, default 2"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /previews/{slot}/export [get]
func (h *PreviewHandler) Export(w http.ResponseWriter, r *http.Request) {
	inst := h.find(chi.URLParam(r, "slot"))
	if inst == nil {
		writeJSONErrorResponse(w, http.StatusNotFound, "unknown_slot", "No such preview slot")
		return
	}

	ratio, err := parsePixelRatio(r)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_scale", err.Error())
		return
	}

	data, err := inst.Render(ratio)
	if err != nil {
		log.Printf("Failed to render %s for export: %v", inst.Slot.Slug(), err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "render_failed", "Failed to render preview")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", inst.FileName()))
	w.Write(data)
}
