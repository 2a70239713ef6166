package usecase

// WatcherUsecase maintains live subscriptions to individual business
// documents in the remote store.
type WatcherUsecase interface {
	// Observe reconciles the set of watched businesses against ids:
	// subscriptions for IDs no longer present are stopped, and new
	// subscriptions are created for IDs not yet watched. Changes flow into
	// the directory's in-memory list. The returned teardown stops only the
	// subscriptions this call created.
	Observe(ids []string) (teardown func())

	// Close stops every active subscription.
	Close()
}
