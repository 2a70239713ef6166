// Package localstore implements the on-device key-value storage backing the
// snapshot cache and the favorites set.
package localstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"localfy/internal/domain/service"

	"github.com/pkg/errors"
)

// fileStore is a file-per-key store rooted at a directory. Values are written
// atomically via a temp file rename so a crashed write degrades to a cache
// miss instead of a torn value.
type fileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a file-backed KV store rooted at dir.
func NewFileStore(dir string) (service.KVStore, error) {
	if dir == "" {
		return nil, errors.New("localstore path is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create localstore directory")
	}

	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(key string) string {
	// Keys are namespaced with ':'; keep them filesystem-safe.
	return filepath.Join(s.dir, strings.ReplaceAll(key, ":", "_")+".json")
}

func (s *fileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", service.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "failed to read key %s", key)
	}

	return string(data), nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}
	if err := os.Rename(tmp, target); err != nil {
		return errors.Wrapf(err, "failed to commit key %s", key)
	}

	return nil
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete key %s", key)
	}

	return nil
}
