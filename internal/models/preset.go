// internal/models/preset.go
package models

import "time"

// PresetCap is the maximum number of retained presets. Saving one more
// evicts the oldest.
const PresetCap = 10

// Preset is a named snapshot of copy and design settings, excluding the
// image. Collections are ordered newest-first.
type Preset struct {
	ID        string          `json:"id"`
	Name      string          `json:"name" validate:"required"`
	Content   CreativeContent `json:"content"`
	Transform ImageTransform  `json:"transform"`
	SavedAt   time.Time       `json:"saved_at"`
}

type CreatePresetRequest struct {
	Name string `json:"name" validate:"required,min=1,max=60"`
}
