// Package storage implements media storage on top of the hosted object
// storage service via the gocloud blob abstraction.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"localfy/config"
	"localfy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes supported in config: file:// for development,
	// gs:// in production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// StoreParams holds dependencies for the media store, injected by Fx.
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage opens the configured bucket. Returns nil when media storage
// is not configured; uploads are then rejected at the usecase layer.
func NewMediaStorage(params StoreParams) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Media storage not configured, uploads disabled")

		return nil, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Store writes the object and returns its public URL.
func (s *blobStore) Store(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return "", errors.Wrapf(err, "failed to write object %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit object %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Remove deletes the object stored under the given key.
func (s *blobStore) Remove(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}
