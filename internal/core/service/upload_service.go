package service

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

// unsafeFileChars matches everything stripped from uploaded file names.
var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadService stores uploaded images in the configured blob store under
// a time-prefixed key and returns the public URL they are served from.
type UploadService struct {
	blobs   ports.BlobStore
	baseURL string
	logger  zerolog.Logger
}

// NewUploadService creates an UploadService. baseURL is the public prefix
// objects are served under; when empty, returned URLs are server-relative.
func NewUploadService(blobs ports.BlobStore, baseURL string, logger zerolog.Logger) *UploadService {
	return &UploadService{
		blobs:   blobs,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// Store writes the file under the key {epoch-millis}-{sanitized name} and
// returns its public URL.
func (s *UploadService) Store(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	if s.blobs == nil {
		return "", ports.ErrStorageNotConfigured
	}

	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), unsafeFileChars.ReplaceAllString(fileName, ""))

	if err := s.blobs.Put(ctx, key, contentType, data); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to store upload")
		return "", fmt.Errorf("store upload: %w", err)
	}

	s.logger.Info().Str("key", key).Int("bytes", len(data)).Msg("image uploaded")
	return s.baseURL + "/uploads/" + key, nil
}

// Open streams a previously stored object back by key.
func (s *UploadService) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if s.blobs == nil {
		return nil, "", ports.ErrStorageNotConfigured
	}
	return s.blobs.Open(ctx, key)
}
