package handlers

import (
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"adproof/internal/assets"
	"adproof/internal/preview"
)

func newStudioRouter(studio *preview.Studio) *chi.Mux {
	h := NewStudioHandler(studio)
	r := chi.NewRouter()
	r.Get("/studio", h.GetStudio)
	r.Put("/studio/content", h.UpdateContent)
	r.Put("/studio/scale", h.SetScale)
	r.Put("/studio/offset", h.SetOffset)
	r.Put("/studio/image", h.SelectImage)
	r.Post("/studio/pointer", h.Pointer)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if ct := w.Header().Get("Content-Type"); ct == "application/json" {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v (%s)", err, w.Body.String())
		}
	}
	return w, resp
}

func TestGetStudioReturnsState(t *testing.T) {
	r := newStudioRouter(preview.NewStudio(assets.NewLibrary()))

	w, resp := doJSON(t, r, http.MethodGet, "/studio", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if resp["content"] == nil || resp["transform"] == nil {
		t.Fatalf("missing fields: %v", resp)
	}
	if resp["image_index"].(float64) != -1 {
		t.Fatalf("expected no active image, got %v", resp["image_index"])
	}
	if _, ok := resp["warnings"].([]any); !ok {
		t.Fatalf("warnings must be an array, got %v", resp["warnings"])
	}
}

func TestSetScaleClampsOverHTTP(t *testing.T) {
	r := newStudioRouter(preview.NewStudio(assets.NewLibrary()))

	w, resp := doJSON(t, r, http.MethodPut, "/studio/scale", `{"scale": 3.0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	transform := resp["transform"].(map[string]any)
	if transform["scale"].(float64) != 1.5 {
		t.Fatalf("expected clamp to 1.5, got %v", transform["scale"])
	}

	_, resp = doJSON(t, r, http.MethodPut, "/studio/scale", `{"scale": 0.2}`)
	transform = resp["transform"].(map[string]any)
	if transform["scale"].(float64) != 0.5 {
		t.Fatalf("expected clamp to 0.5, got %v", transform["scale"])
	}
}

func TestUpdateContentPartialAndWarnings(t *testing.T) {
	r := newStudioRouter(preview.NewStudio(assets.NewLibrary()))

	long := strings.Repeat("x", 50)
	w, resp := doJSON(t, r, http.MethodPut, "/studio/content", `{"headline": "`+long+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	content := resp["content"].(map[string]any)
	if content["headline"].(string) != long {
		t.Fatalf("headline not applied")
	}
	if content["cta_label"].(string) == "" {
		t.Fatal("unset field was cleared")
	}

	warnings := resp["warnings"].([]any)
	if len(warnings) != 1 || !strings.Contains(warnings[0].(string), "headline") {
		t.Fatalf("expected headline warning, got %v", warnings)
	}
}

func TestUpdateContentRejectsBadAccent(t *testing.T) {
	r := newStudioRouter(preview.NewStudio(assets.NewLibrary()))

	w, resp := doJSON(t, r, http.MethodPut, "/studio/content", `{"accent_color": "not-a-color"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if resp["error"].(string) != "validation_error" {
		t.Fatalf("unexpected error code %v", resp["error"])
	}
}

func TestSelectImageOutOfRange(t *testing.T) {
	r := newStudioRouter(preview.NewStudio(assets.NewLibrary()))

	w, resp := doJSON(t, r, http.MethodPut, "/studio/image", `{"index": 0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if resp["error"].(string) != "invalid_index" {
		t.Fatalf("unexpected error code %v", resp["error"])
	}
}

func TestPointerMirrorSlotDoesNotTrack(t *testing.T) {
	lib := assets.NewLibrary()
	studio := preview.NewStudio(lib)
	lib.Add("a.png", image.NewRGBA(image.Rect(0, 0, 10, 10)), 10, "k", "")
	if _, err := studio.SelectImage(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	r := newStudioRouter(studio)

	w, resp := doJSON(t, r, http.MethodPost, "/studio/pointer",
		`{"slot": "medium-rectangle", "phase": "down", "x": 150, "y": 60}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if resp["tracking"].(bool) {
		t.Fatal("mirror slots must not track")
	}
}

func TestPointerDragOverHTTP(t *testing.T) {
	lib := assets.NewLibrary()
	studio := preview.NewStudio(lib)
	lib.Add("a.png", image.NewRGBA(image.Rect(0, 0, 400, 300)), 10, "k", "")
	if _, err := studio.SelectImage(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	r := newStudioRouter(studio)

	_, resp := doJSON(t, r, http.MethodPost, "/studio/pointer",
		`{"slot": "billboard", "phase": "down", "x": 800, "y": 100}`)
	if !resp["tracking"].(bool) {
		t.Fatalf("expected tracking, got %v", resp)
	}

	_, resp = doJSON(t, r, http.MethodPost, "/studio/pointer",
		`{"slot": "billboard", "phase": "move", "x": 810, "y": 105}`)
	offset := resp["offset"].(map[string]any)
	if offset["x"].(float64) != 10 || offset["y"].(float64) != 5 {
		t.Fatalf("unexpected offset %v", offset)
	}
}

func TestPointerRejectsUnknownPhase(t *testing.T) {
	r := newStudioRouter(preview.NewStudio(assets.NewLibrary()))

	w, _ := doJSON(t, r, http.MethodPost, "/studio/pointer",
		`{"slot": "billboard", "phase": "hover", "x": 0, "y": 0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
