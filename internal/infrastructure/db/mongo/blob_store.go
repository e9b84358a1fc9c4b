package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
)

const uploadsBucket = "uploads"

// BlobStore implements ports.BlobStore on top of a GridFS bucket, keyed by
// file name.
type BlobStore struct {
	bucket *gridfs.Bucket
}

func NewBlobStore(db *mongo.Database) (*BlobStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(uploadsBucket))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &BlobStore{bucket: bucket}, nil
}

type blobMetadata struct {
	ContentType string `bson:"content_type"`
}

func (b *BlobStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	deadline := time.Now().Add(defaultTimeout)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := b.bucket.SetWriteDeadline(deadline); err != nil {
		return err
	}

	opts := options.GridFSUpload().SetMetadata(bson.M{"content_type": contentType})
	stream, err := b.bucket.OpenUploadStream(key, opts)
	if err != nil {
		return fmt.Errorf("open upload stream: %w", err)
	}
	if _, err := stream.Write(data); err != nil {
		_ = stream.Close()
		return fmt.Errorf("write blob: %w", err)
	}
	return stream.Close()
}

func (b *BlobStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	deadline := time.Now().Add(defaultTimeout)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := b.bucket.SetReadDeadline(deadline); err != nil {
		return nil, "", err
	}

	stream, err := b.bucket.OpenDownloadStreamByName(key)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, "", ports.ErrBlobNotFound
		}
		return nil, "", fmt.Errorf("open download stream: %w", err)
	}

	var meta blobMetadata
	if raw := stream.GetFile().Metadata; raw != nil {
		_ = bson.Unmarshal(raw, &meta)
	}
	return stream, meta.ContentType, nil
}
