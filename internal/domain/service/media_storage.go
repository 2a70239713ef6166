package service

import (
	"context"
	"io"
)

// MediaStorage stores uploaded business media in the object storage service
// and returns publicly addressable URLs.
type MediaStorage interface {
	// Store writes the object under the given key and returns its public URL.
	Store(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Remove deletes the object stored under the given key.
	Remove(ctx context.Context, key string) error
}
