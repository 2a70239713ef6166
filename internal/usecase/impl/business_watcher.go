package impl

import (
	"context"
	"log/slog"
	"sync"

	"localfy/internal/domain/repository"
	"localfy/internal/usecase"

	"go.uber.org/fx"
)

type businessWatcher struct {
	ctx          context.Context
	businessRepo repository.BusinessRepository
	directory    usecase.DirectoryUsecase
	logger       *slog.Logger

	mu     sync.Mutex
	active map[string]func()
}

// WatcherParams holds dependencies for the business watcher, injected by Fx.
type WatcherParams struct {
	fx.In

	Ctx          context.Context
	BusinessRepo repository.BusinessRepository
	Directory    usecase.DirectoryUsecase
	Logger       *slog.Logger
}

// NewBusinessWatcher creates a new business watcher instance
func NewBusinessWatcher(params WatcherParams) usecase.WatcherUsecase {
	return &businessWatcher{
		ctx:          params.Ctx,
		businessRepo: params.BusinessRepo,
		directory:    params.Directory,
		logger:       params.Logger,
		active:       make(map[string]func()),
	}
}

// Observe reconciles the watched set against ids. Subscriptions for dropped
// IDs are stopped; new IDs get a fresh subscription. The returned teardown
// stops only the subscriptions this call created.
func (w *businessWatcher) Observe(ids []string) func() {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for id, stop := range w.active {
		if _, keep := wanted[id]; !keep {
			stop()
			delete(w.active, id)
		}
	}

	var created []string
	for _, id := range ids {
		if _, watching := w.active[id]; watching {
			continue
		}

		stop, err := w.businessRepo.WatchBusiness(w.ctx, id, w.directory.AbsorbRemoteChange)
		if err != nil {
			// One broken subscription must not take the others down.
			w.logger.Warn("Failed to watch business",
				slog.String("business_id", id), slog.Any("error", err))

			continue
		}
		w.active[id] = stop
		created = append(created, id)
	}

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()

		for _, id := range created {
			if stop, ok := w.active[id]; ok {
				stop()
				delete(w.active, id)
			}
		}
	}
}

// Close stops every active subscription.
func (w *businessWatcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, stop := range w.active {
		stop()
		delete(w.active, id)
	}
}
