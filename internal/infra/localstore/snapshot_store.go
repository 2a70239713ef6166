package localstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"localfy/config"
	"localfy/internal/domain/entity"
	"localfy/internal/domain/repository"
	"localfy/internal/domain/service"

	"github.com/pkg/errors"
)

const snapshotKey = "localfy:directory:snapshot"

// snapshotStore persists the directory cache envelope through a KVStore.
type snapshotStore struct {
	kv     service.KVStore
	logger *slog.Logger
	window time.Duration

	loading atomic.Bool // reentrancy guard: one load in flight at a time

	now func() time.Time
}

// NewSnapshotStore creates the envelope cache with the configured validity
// window.
func NewSnapshotStore(kv service.KVStore, cfg *config.Config, logger *slog.Logger) repository.SnapshotCache {
	window := config.DefaultCacheTTL
	if cfg.Directory != nil && cfg.Directory.CacheTTL > 0 {
		window = cfg.Directory.CacheTTL
	}

	return &snapshotStore{
		kv:     kv,
		logger: logger,
		window: window,
		now:    time.Now,
	}
}

// Save serializes the envelope with the current timestamp. Failures are
// logged, never propagated: a cache-write failure must not block the caller.
func (s *snapshotStore) Save(ctx context.Context, businesses []*entity.Business, categories []string) {
	snapshot := entity.DirectorySnapshot{
		Businesses:  businesses,
		Categories:  categories,
		LastUpdated: s.now().UnixMilli(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Warn("failed to serialize directory snapshot", slog.Any("error", err))

		return
	}

	if err := s.kv.Set(ctx, snapshotKey, string(data)); err != nil {
		s.logger.Warn("failed to persist directory snapshot", slog.Any("error", err))
	}
}

// Load reads the envelope back. Absent, corrupt or incomplete envelopes are
// all treated as a plain cache miss.
func (s *snapshotStore) Load(ctx context.Context) (*entity.DirectorySnapshot, bool) {
	if !s.loading.CompareAndSwap(false, true) {
		// Another load is already hydrating state.
		return nil, false
	}
	defer s.loading.Store(false)

	raw, err := s.kv.Get(ctx, snapshotKey)
	if err != nil {
		if !errors.Is(err, service.ErrKeyNotFound) {
			s.logger.Warn("failed to read directory snapshot", slog.Any("error", err))
		}

		return nil, false
	}

	var snapshot entity.DirectorySnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		s.logger.Warn("discarding corrupt directory snapshot", slog.Any("error", err))

		return nil, false
	}

	if snapshot.LastUpdated == 0 || snapshot.Businesses == nil {
		return nil, false
	}

	return &snapshot, true
}

// IsValid reports whether an envelope taken at lastUpdated is still fresh.
// The boundary is exclusive: an envelope exactly window-old is stale.
func (s *snapshotStore) IsValid(lastUpdated time.Time) bool {
	return s.now().Sub(lastUpdated) < s.window
}
