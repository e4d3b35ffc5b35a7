// internal/assets/assets.go
package assets

import (
	"image"
	"sync"
	"time"

	"github.com/google/uuid"

	"adproof/internal/models"
)

// Library is the ordered in-memory list of uploaded creative variants.
// The studio reads the active image by index; decoded pixels stay in
// memory for the renderers, metadata is what the API returns.
type Library struct {
	mu    sync.Mutex
	items []item
}

type item struct {
	meta models.Asset
	img  image.Image
}

func NewLibrary() *Library {
	return &Library{}
}

// Add appends a decoded variant and returns its metadata.
func (l *Library) Add(name string, img image.Image, size int64, key, url string) models.Asset {
	b := img.Bounds()
	meta := models.Asset{
		ID:         uuid.New().String(),
		Name:       name,
		Width:      b.Dx(),
		Height:     b.Dy(),
		Size:       size,
		Key:        key,
		URL:        url,
		UploadedAt: time.Now().UTC(),
	}

	l.mu.Lock()
	l.items = append(l.items, item{meta: meta, img: img})
	l.mu.Unlock()

	return meta
}

func (l *Library) List() []models.Asset {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Asset, len(l.items))
	for i, it := range l.items {
		out[i] = it.meta
	}
	return out
}

// Image returns the decoded variant at index, or false when the index is
// out of range.
func (l *Library) Image(index int) (image.Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.items) {
		return nil, false
	}
	return l.items[index].img, true
}

func (l *Library) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
