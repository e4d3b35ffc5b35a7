package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"

	"adproof/internal/assets"
	"adproof/internal/cache"
	"adproof/internal/config"
	"adproof/internal/preview"
	"adproof/internal/repository"
	"adproof/internal/services"
	"adproof/internal/storage"
)

type healthResp struct {
	Status string `json:"status"`
	DB     struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	} `json:"db"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	library := assets.NewLibrary()
	studio := preview.NewStudio(library)
	store := storage.NewLocalStorage(dir)
	notifier := services.NewNotifier()

	return &App{
		Studio:   studio,
		Library:  library,
		Store:    store,
		Cache:    cache.NewMemoryCache(64),
		Presets:  repository.NewPresetFileRepository(filepath.Join(dir, "presets.json")),
		Notifier: notifier,
		Runner:   services.NewExportRunner(studio, store, notifier),
		Signer:   services.NewShareSigner("test-share-secret", time.Hour),
	}
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "dev", ShareTTL: time.Hour}
}

func TestRootReturnsJSON(t *testing.T) {
	r := SetupRoutes(nil, testConfig(), newTestApp(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["message"] == "" {
		t.Fatalf("expected message, got %v", body)
	}
}

func TestHealthDBOK(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectPing()

	r := SetupRoutes(db, testConfig(), newTestApp(t))
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var resp healthResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DB.Status != "ok" {
		t.Fatalf("expected db ok, got %+v", resp)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestHealthDBDown(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	r := SetupRoutes(db, testConfig(), newTestApp(t))
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d (%s)", w.Code, w.Body.String())
	}
	var resp healthResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "degraded" || resp.DB.Status != "down" {
		t.Fatalf("expected degraded/down, got %+v", resp)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestHealthWithoutDatabase(t *testing.T) {
	r := SetupRoutes(nil, testConfig(), newTestApp(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected ok, got %v", body)
	}
	if _, ok := body["db"]; ok {
		t.Fatalf("db section should be absent without a database: %v", body)
	}
}

func TestAPICatalogSmoke(t *testing.T) {
	r := SetupRoutes(nil, testConfig(), newTestApp(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sizes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var sizes []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &sizes); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(sizes) != 11 {
		t.Fatalf("expected 11 sizes, got %d", len(sizes))
	}
}

func TestEditGateProtectsMutations(t *testing.T) {
	cfg := testConfig()
	cfg.EditSecret = "routes-test-edit-secret"
	r := SetupRoutes(nil, cfg, newTestApp(t))

	// Reads stay open.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/studio", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("read should not require a token, got %d", w.Code)
	}

	// Mutations without a token are rejected.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/studio/scale", strings.NewReader(`{"scale": 1.2}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "editor",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(cfg.EditSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/v1/studio/scale", strings.NewReader(`{"scale": 1.2}`))
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d (%s)", w.Code, w.Body.String())
	}
}
