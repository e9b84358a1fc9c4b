package ports

import (
	"context"
	"errors"
	"io"
)

// ErrStorageNotConfigured is returned when an upload arrives but no blob
// store collaborator has been wired in.
var ErrStorageNotConfigured = errors.New("object storage not configured")

// ErrBlobNotFound is returned when a stored object key does not exist.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore abstracts the object-storage bucket holding uploaded images.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	// Open streams a stored object back along with its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}
