package service

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

type stubBlobStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newStubBlobStore() *stubBlobStore {
	return &stubBlobStore{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (b *stubBlobStore) Put(_ context.Context, key, contentType string, data []byte) error {
	b.objects[key] = append([]byte(nil), data...)
	b.types[key] = contentType
	return nil
}

func (b *stubBlobStore) Open(_ context.Context, key string) (io.ReadCloser, string, error) {
	data, ok := b.objects[key]
	if !ok {
		return nil, "", ports.ErrBlobNotFound
	}
	return io.NopCloser(strings.NewReader(string(data))), b.types[key], nil
}

var uploadKeyPattern = regexp.MustCompile(`^\d{13}-[a-zA-Z0-9.-]*$`)

func TestUploadService_Store_KeyAndURL(t *testing.T) {
	blobs := newStubBlobStore()
	svc := NewUploadService(blobs, "https://cdn.example.com", zerolog.Nop())

	url, err := svc.Store(context.Background(), "my photo (1).jpg", "image/jpeg", []byte("jpegdata"))
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}

	if !strings.HasPrefix(url, "https://cdn.example.com/uploads/") {
		t.Fatalf("unexpected url: %q", url)
	}
	key := strings.TrimPrefix(url, "https://cdn.example.com/uploads/")
	if !uploadKeyPattern.MatchString(key) {
		t.Fatalf("key %q does not match {epoch-millis}-{sanitized name}", key)
	}
	if !strings.HasSuffix(key, "-myphoto1.jpg") {
		t.Fatalf("expected sanitized file name, got %q", key)
	}

	rc, contentType, err := svc.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "jpegdata" || contentType != "image/jpeg" {
		t.Fatalf("stored object mismatch: %q %q", data, contentType)
	}
}

func TestUploadService_Store_RelativeURLWithoutBase(t *testing.T) {
	svc := NewUploadService(newStubBlobStore(), "", zerolog.Nop())

	url, err := svc.Store(context.Background(), "a.png", "image/png", []byte("x"))
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Fatalf("expected server-relative url, got %q", url)
	}
}

func TestUploadService_NotConfigured(t *testing.T) {
	svc := NewUploadService(nil, "", zerolog.Nop())

	if _, err := svc.Store(context.Background(), "a.png", "image/png", []byte("x")); !errors.Is(err, ports.ErrStorageNotConfigured) {
		t.Fatalf("expected ErrStorageNotConfigured, got %v", err)
	}
	if _, _, err := svc.Open(context.Background(), "key"); !errors.Is(err, ports.ErrStorageNotConfigured) {
		t.Fatalf("expected ErrStorageNotConfigured, got %v", err)
	}
}
