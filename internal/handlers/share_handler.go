// internal/handlers/share_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"adproof/internal/geometry"
	"adproof/internal/layout"
	"adproof/internal/preview"
	"adproof/internal/render"
	"adproof/internal/services"
)

type ShareHandler struct {
	signer *services.ShareSigner
	studio *preview.Studio
	ttl    time.Duration
}

func NewShareHandler(signer *services.ShareSigner, studio *preview.Studio, ttl time.Duration) *ShareHandler {
	return &ShareHandler{
		signer: signer,
		studio: studio,
		ttl:    ttl,
	}
}

// @Tags Share
// @Summary Mint a share link token for the current state
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /share [post]
func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	snap := h.studio.Snapshot()

	token, err := h.signer.Sign(snap.Content, snap.Transform)
	if err != nil {
		log.Printf("Failed to sign share token: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "sign_failed", "Failed to create share link")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"token":      token,
		"path":       "/api/v1/share/" + token + "/previews/" + geometry.Primary().Slug() + "/png",
		"expires_at": time.Now().UTC().Add(h.ttl),
	})
}

// RenderPNG renders a preview from the snapshot inside the token. The live
// studio state is never consulted, so the link shows the same creative
// no matter what happens after minting. Images are not part of the
// snapshot; shared renders show the placeholder.
func (h *ShareHandler) RenderPNG(w http.ResponseWriter, r *http.Request) {
	claims, err := h.signer.Parse(chi.URLParam(r, "token"))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "invalid_token", "Share token is invalid or expired")
		return
	}

	slot, ok := geometry.Find(chi.URLParam(r, "slot"))
	if !ok {
		writeJSONErrorResponse(w, http.StatusNotFound, "unknown_slot", "No such preview slot")
		return
	}

	ratio, err := parsePixelRatio(r)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_scale", err.Error())
		return
	}

	frame := layout.Compose(slot.Width, slot.Height, claims.Content, claims.Transform, false)
	data, err := render.PNG(frame, nil, ratio)
	if err != nil {
		log.Printf("Failed to render shared %s: %v", slot.Slug(), err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "render_failed", "Failed to render preview")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}
