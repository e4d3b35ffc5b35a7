// internal/models/asset.go
package models

import "time"

// Asset is one uploaded creative image variant. The decoded pixels live in
// the in-memory library; Key points at the normalized PNG in object
// storage.
type Asset struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Size       int64     `json:"size"`
	Key        string    `json:"-"`
	URL        string    `json:"url,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}
