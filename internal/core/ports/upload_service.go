package ports

import (
	"context"
	"io"
)

// UploadService stores uploaded images in the object-storage bucket and
// serves them back under their public URL.
type UploadService interface {
	// Store writes the file under a fresh key and returns its public URL.
	Store(ctx context.Context, fileName, contentType string, data []byte) (string, error)
	// Open streams a previously stored object by key.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}
