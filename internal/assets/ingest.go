// internal/assets/ingest.go
package assets

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// MaxEdge bounds uploaded images; anything larger is scaled down to fit
// before it enters the library.
const MaxEdge = 2048

// Decode reads one uploaded image, honoring EXIF orientation. Oversized
// uploads are scaled down to MaxEdge on the longest side; everything else
// passes through untouched.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > MaxEdge || b.Dy() > MaxEdge {
		img = imaging.Fit(img, MaxEdge, MaxEdge, imaging.Lanczos)
	}
	return img, nil
}

// EncodePNG returns the normalized PNG bytes persisted to object storage.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
