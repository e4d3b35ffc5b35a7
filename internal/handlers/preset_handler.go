// internal/handlers/preset_handler.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"adproof/internal/models"
	"adproof/internal/preview"
	"adproof/internal/repository"
)

type PresetHandler struct {
	repo      repository.PresetRepository
	studio    *preview.Studio
	validator *validator.Validate
}

func NewPresetHandler(repo repository.PresetRepository, studio *preview.Studio) *PresetHandler {
	return &PresetHandler{
		repo:      repo,
		studio:    studio,
		validator: validator.New(),
	}
}

// @Tags Presets
// @Summary List saved presets
// @Produce json
// @Success 200 {array} models.Preset
// @Router /presets [get]
func (h *PresetHandler) List(w http.ResponseWriter, r *http.Request) {
	presets, err := h.repo.List(r.Context())
	if err != nil {
		log.Printf("Failed to list presets: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list presets")
		return
	}

	if presets == nil {
		presets = []*models.Preset{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(presets)
}

// @Tags Presets
// @Summary Save the current studio state as a preset
// @Accept json
// @Produce json
// @Param request body models.CreatePresetRequest true "Preset name"
// @Success 201 {object} models.Preset
// @Failure 400 {object} map[string]interface{}
// @Router /presets [post]
func (h *PresetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid JSON: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	snap := h.studio.Snapshot()
	preset := &models.Preset{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Content:   snap.Content,
		Transform: snap.Transform,
		SavedAt:   time.Now().UTC(),
	}

	if err := h.repo.Save(r.Context(), preset); err != nil {
		log.Printf("Failed to save preset %s: %v", preset.Name, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "save_failed", "Failed to save preset")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(preset)
}

// @Tags Presets
// @Summary Apply a preset to the live studio state
// @Produce json
// @Param id path string true "Preset ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /presets/{id}/apply [post]
func (h *PresetHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	preset, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "preset_not_found", "Preset not found")
			return
		}
		log.Printf("Failed to load preset %s: %v", id, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to load preset")
		return
	}

	writeStudioJSON(w, http.StatusOK, h.studio.ApplyPreset(preset))
}

// @Tags Presets
// @Summary Delete a preset
// @Produce json
// @Param id path string true "Preset ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /presets/{id} [delete]
func (h *PresetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "preset_not_found", "Preset not found")
			return
		}
		log.Printf("Failed to delete preset %s: %v", id, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to delete preset")
		return
	}

	writeJSONMessage(w, http.StatusOK, "Preset deleted successfully")
}
