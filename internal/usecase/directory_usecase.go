// Package usecase defines the interfaces for application use cases.
package usecase

import (
	"context"

	"localfy/internal/domain/entity"
)

// DirectoryState is a point-in-time view of the directory held in memory.
// All slices are copies; mutating them does not affect the directory.
type DirectoryState struct {
	// Businesses is the unfiltered list, newest first.
	Businesses []*entity.Business

	// Filtered is the list currently visible after category selection.
	Filtered []*entity.Business

	// Categories are the distinct categories of the unfiltered list.
	Categories []string

	// SelectedCategory is nil when no category filter is active.
	SelectedCategory *string

	// Loading is true while an initial load or refresh is in flight.
	Loading bool

	// LoadingMore is true while a pagination fetch is in flight.
	LoadingMore bool

	// HasMore reports whether another page may exist remotely.
	HasMore bool

	// Ready is true once the first load attempt completed, success or not.
	Ready bool

	// ErrMsg holds the message of the last failed refresh, empty otherwise.
	ErrMsg string
}

// DirectoryUsecase is the business directory: a cached, paginated,
// category-filterable view over the remote businesses collection.
type DirectoryUsecase interface {
	// Init prepares the directory for use and loads persisted favorites.
	// It must be called once before any other method.
	Init(ctx context.Context) error

	// Dispose flushes pending favorite writes and releases resources.
	Dispose()

	// State returns a snapshot of the current in-memory state.
	State() DirectoryState

	// Refresh loads the first page of businesses. It serves from memory or
	// the local snapshot cache when fresh, unless force is true. Concurrent
	// calls coalesce into one fetch. A failed refresh records an error
	// message but keeps previously loaded data.
	Refresh(ctx context.Context, force bool) error

	// LoadMore appends the next page for the current category selection.
	// It is a no-op while a fetch is in flight, when no further page
	// exists, or when no cursor is held.
	LoadMore(ctx context.Context) error

	// SetSelectedCategory changes the active category filter and recomputes
	// the filtered view from data already in memory. nil clears the filter.
	SetSelectedCategory(category *string)

	// ResetPagination clears the pagination cursor and marks the directory
	// as having more data, so the next LoadMore starts from the top.
	ResetPagination()

	// GetBusinessByID returns the business from memory when present, and
	// falls back to a remote lookup otherwise.
	GetBusinessByID(ctx context.Context, id string) (*entity.Business, error)

	// UpdateBusiness applies the partial field set to the in-memory record
	// immediately, then writes it to the remote store. The reported bool is
	// the outcome of the remote write; the in-memory change is kept either
	// way.
	UpdateBusiness(ctx context.Context, id string, fields map[string]any) bool

	// Nearby returns businesses within radiusMeters of the given point,
	// computed over the in-memory list.
	Nearby(lat, lng, radiusMeters float64) []*entity.Business

	// AbsorbRemoteChange replaces the in-memory record with one observed
	// from the remote store. No remote write happens; records for IDs not
	// currently in memory are ignored.
	AbsorbRemoteChange(b *entity.Business)

	// ToggleFavorite flips the favorite mark for a business and schedules a
	// persistence write.
	ToggleFavorite(id string)

	// IsFavorite reports whether the business is currently marked.
	IsFavorite(id string) bool

	// Favorites returns the IDs of all favorited businesses.
	Favorites() []string
}
