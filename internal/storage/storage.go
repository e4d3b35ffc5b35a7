// internal/storage/storage.go
package storage

import (
	"context"
	"io"
)

// ObjectStorage persists uploaded images and exported previews. Save writes
// the object under key and returns the location a client can fetch it from:
// a public URL for the S3 backend, a file path for the local one.
type ObjectStorage interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
