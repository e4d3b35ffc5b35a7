package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"adproof/internal/assets"
	"adproof/internal/preview"
	"adproof/internal/repository"
)

func newPresetRouter(t *testing.T, studio *preview.Studio) (*chi.Mux, *chi.Mux) {
	t.Helper()
	repo := repository.NewPresetFileRepository(filepath.Join(t.TempDir(), "presets.json"))
	h := NewPresetHandler(repo, studio)

	r := chi.NewRouter()
	r.Get("/presets", h.List)
	r.Post("/presets", h.Create)
	r.Post("/presets/{id}/apply", h.Apply)
	r.Delete("/presets/{id}", h.Delete)
	return r, newStudioRouter(studio)
}

func TestPresetSaveApplyRoundTrip(t *testing.T) {
	studio := preview.NewStudio(assets.NewLibrary())
	presets, studioAPI := newPresetRouter(t, studio)

	// Stage the state the preset should capture.
	doJSON(t, studioAPI, http.MethodPut, "/studio/content", `{"headline": "Save 20%", "dark_theme": true}`)
	doJSON(t, studioAPI, http.MethodPut, "/studio/scale", `{"scale": 1.3}`)

	w, created := doJSON(t, presets, http.MethodPost, "/presets", `{"name": "Holiday"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	id := created["id"].(string)
	if created["name"].(string) != "Holiday" {
		t.Fatalf("unexpected preset %v", created)
	}

	// Drift away from the captured state.
	doJSON(t, studioAPI, http.MethodPut, "/studio/content", `{"headline": "Something else"}`)
	doJSON(t, studioAPI, http.MethodPut, "/studio/scale", `{"scale": 0.7}`)

	w, applied := doJSON(t, presets, http.MethodPost, "/presets/"+id+"/apply", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	content := applied["content"].(map[string]any)
	if content["headline"].(string) != "Save 20%" || content["dark_theme"].(bool) != true {
		t.Fatalf("content not restored: %v", content)
	}
	transform := applied["transform"].(map[string]any)
	if transform["scale"].(float64) != 1.3 {
		t.Fatalf("scale not restored: %v", transform)
	}
}

func TestPresetApplyUnknownID(t *testing.T) {
	presets, _ := newPresetRouter(t, preview.NewStudio(assets.NewLibrary()))

	w, resp := doJSON(t, presets, http.MethodPost, "/presets/no-such-id/apply", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if resp["error"].(string) != "preset_not_found" {
		t.Fatalf("unexpected error code %v", resp["error"])
	}
}

func TestPresetCreateRequiresName(t *testing.T) {
	presets, _ := newPresetRouter(t, preview.NewStudio(assets.NewLibrary()))

	w, resp := doJSON(t, presets, http.MethodPost, "/presets", `{"name": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if resp["error"].(string) != "validation_error" {
		t.Fatalf("unexpected error code %v", resp["error"])
	}
}

func TestPresetDelete(t *testing.T) {
	presets, _ := newPresetRouter(t, preview.NewStudio(assets.NewLibrary()))

	w, created := doJSON(t, presets, http.MethodPost, "/presets", `{"name": "Disposable"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", w.Code)
	}
	id := created["id"].(string)

	w, _ = doJSON(t, presets, http.MethodDelete, "/presets/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	w, _ = doJSON(t, presets, http.MethodDelete, "/presets/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/presets", nil)
	rec := httptest.NewRecorder()
	presets.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}
