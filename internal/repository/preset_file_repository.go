// internal/repository/preset_file_repository.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"

	"adproof/internal/models"
)

// presetFileRepository keeps presets in a JSON file so the studio works
// without a database. The file is best effort: a corrupt or unwritable file
// is logged and the in-memory copy keeps serving the session.
type presetFileRepository struct {
	mu      sync.Mutex
	path    string
	presets []*models.Preset
}

func NewPresetFileRepository(path string) PresetRepository {
	r := &presetFileRepository{path: path}
	r.load()
	return r
}

func (r *presetFileRepository) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read preset file %s: %v", r.path, err)
		}
		return
	}
	if err := json.Unmarshal(data, &r.presets); err != nil {
		log.Printf("Preset file %s is corrupt, starting empty: %v", r.path, err)
		r.presets = nil
	}
}

func (r *presetFileRepository) flushLocked() {
	data, err := json.MarshalIndent(r.presets, "", "  ")
	if err != nil {
		log.Printf("Failed to encode presets: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		log.Printf("Failed to create preset directory: %v", err)
		return
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		log.Printf("Failed to write preset file %s: %v", r.path, err)
	}
}

func (r *presetFileRepository) List(_ context.Context) ([]*models.Preset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Preset, len(r.presets))
	copy(out, r.presets)
	return out, nil
}

func (r *presetFileRepository) Save(_ context.Context, preset *models.Preset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first, oldest dropped past the cap.
	r.presets = append([]*models.Preset{preset}, r.presets...)
	if len(r.presets) > models.PresetCap {
		r.presets = r.presets[:models.PresetCap]
	}
	r.flushLocked()
	return nil
}

func (r *presetFileRepository) GetByID(_ context.Context, id string) (*models.Preset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.presets {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *presetFileRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.presets {
		if p.ID == id {
			r.presets = append(r.presets[:i], r.presets[i+1:]...)
			r.flushLocked()
			return nil
		}
	}
	return sql.ErrNoRows
}
