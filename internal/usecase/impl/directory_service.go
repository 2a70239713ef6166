// Package impl provides the implementations of the application use cases.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"localfy/config"
	"localfy/internal/domain/entity"
	"localfy/internal/domain/repository"
	"localfy/internal/domain/service"
	"localfy/internal/usecase"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const favoritesKey = "localfy:directory:favorites"

// ErrDirectoryNotReady is returned when the directory is used before Init.
var ErrDirectoryNotReady = errors.New("directory not initialized")

type directoryService struct {
	businessRepo  repository.BusinessRepository
	snapshotCache repository.SnapshotCache
	kv            service.KVStore
	logger        *slog.Logger
	config        *config.Config

	// lookupCache memoizes single-business fetches that missed the list.
	lookupCache *gocache.Cache

	mu sync.Mutex

	baseCtx context.Context
	cancel  context.CancelFunc

	businesses       []*entity.Business
	filtered         []*entity.Business
	categories       []string
	selectedCategory *string
	cursor           repository.Cursor
	hasMore          bool
	loading          bool
	loadingMore      bool
	ready            bool
	errMsg           string
	lastFetched      time.Time

	favorites map[string]struct{}
	favTimer  *time.Timer

	now func() time.Time
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	BusinessRepo  repository.BusinessRepository
	SnapshotCache repository.SnapshotCache
	KV            service.KVStore
	Logger        *slog.Logger
	Config        *config.Config
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	cfg := params.Config.Directory

	return &directoryService{
		businessRepo:  params.BusinessRepo,
		snapshotCache: params.SnapshotCache,
		kv:            params.KV,
		logger:        params.Logger,
		config:        params.Config,
		lookupCache:   gocache.New(cfg.LookupTTL, 2*cfg.LookupTTL),
		hasMore:       true,
		favorites:     make(map[string]struct{}),
		now:           time.Now,
	}
}

// Init prepares the directory for use and loads persisted favorites.
func (s *directoryService) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseCtx != nil {
		return nil
	}
	s.baseCtx, s.cancel = context.WithCancel(ctx)

	raw, err := s.kv.Get(s.baseCtx, favoritesKey)
	if err != nil {
		if !errors.Is(err, service.ErrKeyNotFound) {
			s.logger.Warn("Failed to load favorites", slog.Any("error", err))
		}

		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("Discarding corrupt favorites entry", slog.Any("error", err))

		return nil
	}
	for _, id := range ids {
		s.favorites[id] = struct{}{}
	}

	return nil
}

// Dispose flushes pending favorite writes and stops background work.
func (s *directoryService) Dispose() {
	s.mu.Lock()
	if s.favTimer != nil {
		s.favTimer.Stop()
		s.favTimer = nil
	}
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	s.flushFavorites()
	if cancel != nil {
		cancel()
	}
}

// State returns a snapshot of the current in-memory state.
func (s *directoryService) State() usecase.DirectoryState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return usecase.DirectoryState{
		Businesses:       append([]*entity.Business(nil), s.businesses...),
		Filtered:         append([]*entity.Business(nil), s.filtered...),
		Categories:       append([]string(nil), s.categories...),
		SelectedCategory: s.selectedCategory,
		Loading:          s.loading,
		LoadingMore:      s.loadingMore,
		HasMore:          s.hasMore,
		Ready:            s.ready,
		ErrMsg:           s.errMsg,
	}
}

// Refresh loads the first page of businesses, serving from memory or the
// local snapshot cache when still fresh.
func (s *directoryService) Refresh(ctx context.Context, force bool) error {
	s.mu.Lock()
	if s.baseCtx == nil {
		s.mu.Unlock()

		return errors.WithStack(ErrDirectoryNotReady)
	}
	if s.loading {
		s.mu.Unlock()

		return nil
	}

	if !force {
		if len(s.businesses) > 0 && s.now().Sub(s.lastFetched) < s.config.Directory.CacheTTL {
			s.mu.Unlock()

			return nil
		}

		s.loading = true
		s.mu.Unlock()

		if snapshot, ok := s.snapshotCache.Load(ctx); ok {
			lastUpdated := time.UnixMilli(snapshot.LastUpdated)
			if s.snapshotCache.IsValid(lastUpdated) {
				s.hydrate(snapshot, lastUpdated)

				return nil
			}
		}
	} else {
		s.loading = true
		s.mu.Unlock()
	}

	return s.fetchFirstPage(ctx)
}

// hydrate installs a cached snapshot as the in-memory list. Pagination starts
// from the top on the next LoadMore because no cursor survives a hydrate.
func (s *directoryService) hydrate(snapshot *entity.DirectorySnapshot, lastUpdated time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.businesses = snapshot.Businesses
	s.categories = snapshot.Categories
	s.cursor = nil
	s.hasMore = true
	s.lastFetched = lastUpdated
	s.refilterLocked()
	s.loading = false
	s.ready = true
	s.errMsg = ""
}

func (s *directoryService) fetchFirstPage(ctx context.Context) error {
	page, err := s.businessRepo.FetchPage(ctx, "", nil, s.config.Directory.PageSize)

	s.mu.Lock()
	s.loading = false
	s.ready = true
	if err != nil {
		// Keep whatever was loaded before; only record the failure.
		s.errMsg = err.Error()
		s.mu.Unlock()

		return errors.Wrap(err, "failed to refresh directory")
	}

	s.businesses = page.Businesses
	s.cursor = page.Cursor
	s.hasMore = page.HasMore
	s.lastFetched = s.now()
	s.errMsg = ""
	s.recomputeCategoriesLocked()
	s.refilterLocked()
	businesses := s.businesses
	categories := s.categories
	s.mu.Unlock()

	s.snapshotCache.Save(ctx, businesses, categories)

	return nil
}

// LoadMore appends the next page for the current category selection.
func (s *directoryService) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.loading || s.loadingMore || !s.hasMore || s.cursor == nil {
		s.mu.Unlock()

		return nil
	}
	s.loadingMore = true
	cursor := s.cursor
	category := ""
	if s.selectedCategory != nil {
		category = *s.selectedCategory
	}
	s.mu.Unlock()

	page, err := s.businessRepo.FetchPage(ctx, category, cursor, s.config.Directory.PageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadingMore = false
	if err != nil {
		s.errMsg = err.Error()

		return errors.Wrap(err, "failed to load next page")
	}

	s.businesses = append(s.businesses, page.Businesses...)
	s.cursor = page.Cursor
	s.hasMore = page.HasMore
	s.recomputeCategoriesLocked()
	s.refilterLocked()

	return nil
}

// SetSelectedCategory changes the category filter and refilters in memory.
func (s *directoryService) SetSelectedCategory(category *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedCategory = category
	s.refilterLocked()
}

// ResetPagination clears the cursor so the next page fetch starts over.
func (s *directoryService) ResetPagination() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor = nil
	s.hasMore = true
}

// GetBusinessByID returns the record from memory when present, falling back
// to a memoized remote lookup.
func (s *directoryService) GetBusinessByID(ctx context.Context, id string) (*entity.Business, error) {
	s.mu.Lock()
	for _, b := range s.businesses {
		if b.ID == id {
			clone := b.Clone()
			s.mu.Unlock()

			return clone, nil
		}
	}
	s.mu.Unlock()

	if cached, ok := s.lookupCache.Get(id); ok {
		return cached.(*entity.Business).Clone(), nil
	}

	business, err := s.businessRepo.FindBusinessByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business by id")
	}
	s.lookupCache.SetDefault(id, business)

	return business.Clone(), nil
}

// UpdateBusiness patches the in-memory record immediately and then writes the
// change remotely. The in-memory change is kept even when the write fails.
// Records already handed out through State() are never mutated: the patch is
// applied to a clone which replaces the slice element.
func (s *directoryService) UpdateBusiness(ctx context.Context, id string, fields map[string]any) bool {
	s.mu.Lock()
	for i, b := range s.businesses {
		if b.ID == id {
			patched := b.Clone()
			patched.ApplyFields(fields)
			patched.UpdatedAt = s.now()
			s.businesses[i] = patched
		}
	}
	s.refilterLocked()
	s.mu.Unlock()
	s.lookupCache.Delete(id)

	if err := s.businessRepo.UpdateBusiness(ctx, id, fields); err != nil {
		s.logger.Warn("Remote business update failed, keeping local change",
			slog.String("business_id", id), slog.Any("error", err))

		return false
	}

	return true
}

// AbsorbRemoteChange replaces the in-memory record with an observed one.
func (s *directoryService) AbsorbRemoteChange(b *entity.Business) {
	if b == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.baseCtx == nil || s.baseCtx.Err() != nil {
		return
	}

	for i, existing := range s.businesses {
		if existing.ID == b.ID {
			s.businesses[i] = b
			s.refilterLocked()

			return
		}
	}
}

// Nearby returns businesses within radiusMeters of the given point.
func (s *directoryService) Nearby(lat, lng, radiusMeters float64) []*entity.Business {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*entity.Business
	for _, b := range s.businesses {
		if b.Location == nil {
			continue
		}
		if b.Location.DistanceMeters(lat, lng) <= radiusMeters {
			result = append(result, b)
		}
	}

	return result
}

// ToggleFavorite flips the favorite mark and schedules a coalesced write.
func (s *directoryService) ToggleFavorite(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.favorites[id]; ok {
		delete(s.favorites, id)
	} else {
		s.favorites[id] = struct{}{}
	}

	if s.favTimer != nil {
		s.favTimer.Stop()
	}
	s.favTimer = time.AfterFunc(s.config.Directory.FavoritesDebounce, s.flushFavorites)
}

// IsFavorite reports whether the business is currently marked.
func (s *directoryService) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.favorites[id]

	return ok
}

// Favorites returns the IDs of all favorited businesses, sorted.
func (s *directoryService) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.favoriteIDsLocked()
}

func (s *directoryService) favoriteIDsLocked() []string {
	ids := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// flushFavorites writes the favorite set to local storage, best effort.
func (s *directoryService) flushFavorites() {
	s.mu.Lock()
	ids := s.favoriteIDsLocked()
	ctx := s.baseCtx
	s.mu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		s.logger.Warn("Failed to encode favorites", slog.Any("error", err))

		return
	}
	if err := s.kv.Set(context.WithoutCancel(ctx), favoritesKey, string(raw)); err != nil {
		s.logger.Warn("Failed to persist favorites", slog.Any("error", err))
	}
}

// recomputeCategoriesLocked derives the distinct, sorted category list from
// the unfiltered businesses. Callers must hold the mutex.
func (s *directoryService) recomputeCategoriesLocked() {
	seen := make(map[string]struct{})
	var categories []string
	for _, b := range s.businesses {
		if b.Category == "" {
			continue
		}
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		categories = append(categories, b.Category)
	}
	sort.Strings(categories)
	s.categories = categories
}

// refilterLocked recomputes the filtered view. Callers must hold the mutex.
func (s *directoryService) refilterLocked() {
	if s.selectedCategory == nil {
		s.filtered = append([]*entity.Business(nil), s.businesses...)

		return
	}

	filtered := make([]*entity.Business, 0, len(s.businesses))
	for _, b := range s.businesses {
		if b.Category == *s.selectedCategory {
			filtered = append(filtered, b)
		}
	}
	s.filtered = filtered
}
