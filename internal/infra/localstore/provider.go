package localstore

import (
	"context"
	"log/slog"
	"sync"

	"localfy/config"
	"localfy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in the localStore config section.
const (
	ProviderFile  = "file"
	ProviderRedis = "redis"
)

// memoryStore is the fallback when no local store is configured: the cache
// simply lives for the process lifetime.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an in-process KV store.
func NewMemoryStore() service.KVStore {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", service.ErrKeyNotFound
	}

	return value, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value

	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)

	return nil
}

// StoreParams holds dependencies for the KV store, injected by Fx.
type StoreParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewKVStore creates a KVStore based on configuration.
func NewKVStore(params StoreParams) (service.KVStore, error) {
	cfg := params.Config.LocalStore
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Local store not configured, using in-memory store")

		return NewMemoryStore(), nil
	}

	switch cfg.Provider {
	case ProviderFile:
		logger.Info("Using file-backed local store", slog.String("path", cfg.Path))

		return NewFileStore(cfg.Path)

	case ProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis addr is required for redis provider")
		}
		logger.Info("Using redis-backed local store", slog.String("addr", cfg.Redis.Addr))

		return NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), nil

	default:
		return nil, errors.Errorf("unknown local store provider: %s", cfg.Provider)
	}
}
