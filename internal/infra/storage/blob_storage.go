// Package storage writes uploaded images to a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"medbotanica/config"
	"medbotanica/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const keyPrefix = "uploads/"

// Params defines the parameters required for the blob storage
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(ctx context.Context, params Params) (service.ImageStorage, error) {
	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", params.Config.Storage.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(bucket.Close(), "failed to close bucket")
		},
	})

	return NewWithBucket(bucket, params.Config.Storage.PublicBaseURL, params.Logger), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ImageStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Save stores r under uploads/<uuid><ext>, keeping only the original extension.
func (s *blobStorage) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := keyPrefix + uuid.New().String() + strings.ToLower(path.Ext(path.Base(filename)))

	// Cancelling the writer's context before Close discards a partial upload.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit blob")
	}

	s.logger.Debug("Stored upload", slog.String("key", key), slog.String("contentType", contentType))

	return s.publicURL(key), nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + strings.TrimPrefix(key, keyPrefix)
}
