// internal/handlers/studio_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"adproof/internal/models"
	"adproof/internal/preview"
)

type StudioHandler struct {
	studio    *preview.Studio
	validator *validator.Validate
}

func NewStudioHandler(studio *preview.Studio) *StudioHandler {
	return &StudioHandler{
		studio:    studio,
		validator: validator.New(),
	}
}

type studioResponse struct {
	preview.Snapshot
	HasImage bool     `json:"has_image"`
	Warnings []string `json:"warnings"`
}

// writeStudioJSON is the shared response for every endpoint that returns
// the live studio state, advisory warnings included.
func writeStudioJSON(w http.ResponseWriter, status int, snap preview.Snapshot) {
	warnings := snap.Content.Warnings()
	if warnings == nil {
		warnings = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(studioResponse{
		Snapshot: snap,
		HasImage: snap.ImageIndex >= 0,
		Warnings: warnings,
	})
}

// @Tags Studio
// @Summary Get the live studio state
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /studio [get]
func (h *StudioHandler) GetStudio(w http.ResponseWriter, r *http.Request) {
	writeStudioJSON(w, http.StatusOK, h.studio.Snapshot())
}

// @Tags Studio
// @Summary Update copy and design fields
// @Accept json
// @Produce json
// @Param request body models.UpdateContentRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /studio/content [put]
func (h *StudioHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid JSON: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	writeStudioJSON(w, http.StatusOK, h.studio.UpdateContent(&req))
}

// @Tags Studio
// @Summary Set the image scale
// @Accept json
// @Produce json
// @Param request body models.SetScaleRequest true "Scale, clamped to [0.5, 1.5]"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /studio/scale [put]
func (h *StudioHandler) SetScale(w http.ResponseWriter, r *http.Request) {
	var req models.SetScaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid JSON: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	writeStudioJSON(w, http.StatusOK, h.studio.SetScale(req.Scale))
}

// @Tags Studio
// @Summary Set the image offset directly
// @Accept json
// @Produce json
// @Param request body models.SetOffsetRequest true "Offset in logical pixels"
// @Success 200 {object} map[string]interface{}
// @Router /studio/offset [put]
func (h *StudioHandler) SetOffset(w http.ResponseWriter, r *http.Request) {
	var req models.SetOffsetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid JSON: "+err.Error())
		return
	}

	writeStudioJSON(w, http.StatusOK, h.studio.SetOffset(req.X, req.Y))
}

// @Tags Studio
// @Summary Select the active uploaded image
// @Accept json
// @Produce json
// @Param request body models.SelectImageRequest true "Library index, -1 for none"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /studio/image [put]
func (h *StudioHandler) SelectImage(w http.ResponseWriter, r *http.Request) {
	var req models.SelectImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid JSON: "+err.Error())
		return
	}

	snap, err := h.studio.SelectImage(req.Index)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_index", "Image index out of range")
		return
	}

	writeStudioJSON(w, http.StatusOK, snap)
}

// @Tags Studio
// @Summary Feed a pointer event into the drag controller
// @Accept json
// @Produce json
// @Param request body models.PointerEventRequest true "Pointer sample"
// @Success 200 {object} preview.PointerResult
// @Failure 400 {object} map[string]interface{}
// @Router /studio/pointer [post]
func (h *StudioHandler) Pointer(w http.ResponseWriter, r *http.Request) {
	var req models.PointerEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid JSON: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result := h.studio.Pointer(&req)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
