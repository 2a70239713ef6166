package repository

import (
	"context"
	"time"

	"localfy/internal/domain/entity"
)

// SnapshotCache persists and retrieves the directory cache envelope on local
// storage. Saves are best effort: a cache-write failure must never block the
// caller.
type SnapshotCache interface {
	// Save wraps the list with the current timestamp and writes it.
	// Failures are logged, not propagated.
	Save(ctx context.Context, businesses []*entity.Business, categories []string)

	// Load reads and deserializes the envelope. ok is false when the
	// envelope is absent, corrupt or missing required fields.
	Load(ctx context.Context) (snapshot *entity.DirectorySnapshot, ok bool)

	// IsValid reports whether an envelope taken at lastUpdated is still
	// within the validity window. An envelope exactly window-old is stale.
	IsValid(lastUpdated time.Time) bool
}
