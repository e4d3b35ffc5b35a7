package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"adproof/internal/assets"
	"adproof/internal/cache"
	"adproof/internal/geometry"
	"adproof/internal/preview"
)

func newPreviewRouter(studio *preview.Studio) *chi.Mux {
	h := NewPreviewHandler(studio, cache.NewMemoryCache(64))
	r := chi.NewRouter()
	r.Get("/previews", h.List)
	r.Get("/previews/{slot}", h.GetFrame)
	r.Get("/previews/{slot}/png", h.GetPNG)
	r.Get("/previews/{slot}/export", h.Export)
	return r
}

func TestListPreviewsCoversCatalog(t *testing.T) {
	r := newPreviewRouter(preview.NewStudio(assets.NewLibrary()))

	req := httptest.NewRequest(http.MethodGet, "/previews", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != len(geometry.Catalog()) {
		t.Fatalf("expected %d summaries, got %d", len(geometry.Catalog()), len(resp))
	}

	primaries := 0
	for _, s := range resp {
		if s["primary"].(bool) {
			primaries++
			if s["slug"].(string) != "billboard" {
				t.Fatalf("unexpected primary %v", s["slug"])
			}
		}
	}
	if primaries != 1 {
		t.Fatalf("expected exactly one primary, got %d", primaries)
	}
}

func TestGetFrameUnknownSlot(t *testing.T) {
	r := newPreviewRouter(preview.NewStudio(assets.NewLibrary()))

	req := httptest.NewRequest(http.MethodGet, "/previews/nonexistent", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"].(string) != "unknown_slot" {
		t.Fatalf("unexpected error code %v", resp["error"])
	}
}

func TestGetFrameReturnsLayout(t *testing.T) {
	r := newPreviewRouter(preview.NewStudio(assets.NewLibrary()))

	req := httptest.NewRequest(http.MethodGet, "/previews/half-page", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	frame := resp["frame"].(map[string]any)
	classification := frame["classification"].(map[string]any)
	if classification["class"].(string) != "skyscraper" {
		t.Fatalf("expected skyscraper, got %v", classification)
	}
}

func TestGetPNGServesImageWithETag(t *testing.T) {
	r := newPreviewRouter(preview.NewStudio(assets.NewLibrary()))

	req := httptest.NewRequest(http.MethodGet, "/previews/mobile-banner/png?scale=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png got %q", ct)
	}
	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	if w.Body.String()[1:4] != "PNG" {
		t.Fatal("expected png bytes")
	}

	// Same version, same tag: the conditional fetch short-circuits.
	req = httptest.NewRequest(http.MethodGet, "/previews/mobile-banner/png?scale=1", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotModified {
		t.Fatalf("expected 304 got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("304 must have no body, got %d bytes", w.Body.Len())
	}
}

func TestGetPNGStaleETagAfterMutation(t *testing.T) {
	studio := preview.NewStudio(assets.NewLibrary())
	r := newPreviewRouter(studio)

	req := httptest.NewRequest(http.MethodGet, "/previews/square/png?scale=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	etag := w.Header().Get("ETag")

	studio.SetScale(1.4)

	req = httptest.NewRequest(http.MethodGet, "/previews/square/png?scale=1", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("mutation must invalidate, got %d", w.Code)
	}
}

func TestGetPNGRejectsBadScale(t *testing.T) {
	r := newPreviewRouter(preview.NewStudio(assets.NewLibrary()))

	for _, scale := range []string{"abc", "0", "-1", "9"} {
		req := httptest.NewRequest(http.MethodGet, "/previews/billboard/png?scale="+scale, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("scale %q: expected 400 got %d", scale, w.Code)
		}
	}
}

func TestExportSetsAttachmentFilename(t *testing.T) {
	r := newPreviewRouter(preview.NewStudio(assets.NewLibrary()))

	req := httptest.NewRequest(http.MethodGet, "/previews/wide-skyscraper/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `filename="wide-skyscraper-160x600.png"`) {
		t.Fatalf("unexpected disposition %q", cd)
	}
}
