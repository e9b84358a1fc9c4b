package memory

import (
	"bytes"
	"context"
	"io"

	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

// blobStore implements ports.BlobStore over the shared store. Uploaded
// images live only for the process lifetime, like everything else here.
type blobStore struct {
	s *Store
}

func (b *blobStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	_ = ctx
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	b.s.blobs[key] = blob{contentType: contentType, data: append([]byte(nil), data...)}
	return nil
}

func (b *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	_ = ctx
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	obj, ok := b.s.blobs[key]
	if !ok {
		return nil, "", ports.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.contentType, nil
}
