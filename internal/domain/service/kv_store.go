// Package service defines interfaces for domain services implemented by the
// infrastructure layer.
package service

import (
	"context"

	"localfy/internal/errors"
)

// ErrKeyNotFound is returned by KVStore.Get when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the on-device key-value storage contract: string keys, string
// values, callers handle serialization.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
