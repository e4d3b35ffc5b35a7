// internal/handlers/asset_handler.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/google/uuid"

	"adproof/internal/assets"
	"adproof/internal/models"
	"adproof/internal/preview"
	"adproof/internal/storage"
)

type AssetHandler struct {
	library *assets.Library
	studio  *preview.Studio
	store   storage.ObjectStorage
}

func NewAssetHandler(library *assets.Library, studio *preview.Studio, store storage.ObjectStorage) *AssetHandler {
	return &AssetHandler{
		library: library,
		studio:  studio,
		store:   store,
	}
}

// @Tags Assets
// @Summary Upload creative images
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Image files"
// @Success 201 {array} models.Asset
// @Failure 400 {object} map[string]interface{}
// @Router /assets [post]
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse multipart form")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "No files uploaded")
		return
	}

	var uploaded []models.Asset
	decodeFailed := false

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("Failed to open file %s: %v", fileHeader.Filename, err)
			continue
		}

		img, err := assets.Decode(file)
		file.Close()
		if err != nil {
			log.Printf("Failed to decode file %s: %v", fileHeader.Filename, err)
			decodeFailed = true
			continue
		}

		data, err := assets.EncodePNG(img)
		if err != nil {
			log.Printf("Failed to encode file %s: %v", fileHeader.Filename, err)
			continue
		}

		key := "uploads/" + uuid.New().String() + ".png"
		url, err := h.store.Save(r.Context(), key, bytes.NewReader(data), "image/png")
		if err != nil {
			log.Printf("Failed to store file %s: %v", fileHeader.Filename, err)
			continue
		}

		uploaded = append(uploaded, h.library.Add(fileHeader.Filename, img, int64(len(data)), key, url))
	}

	if len(uploaded) == 0 {
		if decodeFailed {
			writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_image", "File is not a decodable image")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "upload_failed", "Failed to upload any files")
		return
	}

	// The newest upload becomes the active image in every preview.
	if _, err := h.studio.SelectImage(h.library.Len() - 1); err != nil {
		log.Printf("Failed to select uploaded image: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(uploaded)
}

// @Tags Assets
// @Summary List uploaded images
// @Produce json
// @Success 200 {array} models.Asset
// @Router /assets [get]
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.library.List())
}
