package localstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"localfy/config"
	"localfy/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSnapshotStore(t *testing.T) *snapshotStore {
	t.Helper()

	cfg := &config.Config{Directory: &config.DirectoryConfig{CacheTTL: 5 * time.Minute}}
	store := NewSnapshotStore(NewMemoryStore(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return store.(*snapshotStore)
}

func TestSnapshotStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestSnapshotStore(t)
	ctx := context.Background()

	businesses := []*entity.Business{
		{ID: "b1", Name: "Corner Cafe", Category: "cafe", Rating: 4.5},
		{ID: "b2", Name: "Main St Books", Category: "retail"},
	}
	store.Save(ctx, businesses, []string{"cafe", "retail"})

	snapshot, ok := store.Load(ctx)
	require.True(t, ok)
	require.Len(t, snapshot.Businesses, 2)
	assert.Equal(t, "b1", snapshot.Businesses[0].ID)
	assert.Equal(t, []string{"cafe", "retail"}, snapshot.Categories)
	assert.NotZero(t, snapshot.LastUpdated)
}

func TestSnapshotStore_LoadMissing(t *testing.T) {
	store := newTestSnapshotStore(t)

	snapshot, ok := store.Load(context.Background())
	assert.False(t, ok)
	assert.Nil(t, snapshot)
}

func TestSnapshotStore_LoadCorrupt(t *testing.T) {
	store := newTestSnapshotStore(t)
	ctx := context.Background()

	require.NoError(t, store.kv.Set(ctx, snapshotKey, "{not json"))

	_, ok := store.Load(ctx)
	assert.False(t, ok)
}

func TestSnapshotStore_LoadIncompleteEnvelope(t *testing.T) {
	store := newTestSnapshotStore(t)
	ctx := context.Background()

	// Valid JSON but missing required envelope fields.
	require.NoError(t, store.kv.Set(ctx, snapshotKey, `{"categories":["cafe"]}`))

	_, ok := store.Load(ctx)
	assert.False(t, ok)
}

func TestSnapshotStore_LoadReentrancyGuard(t *testing.T) {
	store := newTestSnapshotStore(t)
	ctx := context.Background()
	store.Save(ctx, []*entity.Business{{ID: "b1"}}, nil)

	store.loading.Store(true)
	_, ok := store.Load(ctx)
	assert.False(t, ok, "overlapping load must be rejected")

	store.loading.Store(false)
	_, ok = store.Load(ctx)
	assert.True(t, ok)
}

func TestSnapshotStore_IsValidBoundary(t *testing.T) {
	store := newTestSnapshotStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	// One second inside the window.
	assert.True(t, store.IsValid(base.Add(-5*time.Minute+time.Second)))

	// Exactly window-old is stale.
	assert.False(t, store.IsValid(base.Add(-5*time.Minute)))

	// Well past the window.
	assert.False(t, store.IsValid(base.Add(-400*time.Second)))

	// Just fetched.
	assert.True(t, store.IsValid(base.Add(-time.Minute)))
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "localfy:favorites", `["b1","b2"]`))

	value, err := store.Get(ctx, "localfy:favorites")
	require.NoError(t, err)
	assert.Equal(t, `["b1","b2"]`, value)

	require.NoError(t, store.Delete(ctx, "localfy:favorites"))
	_, err = store.Get(ctx, "localfy:favorites")
	assert.Error(t, err)
}
