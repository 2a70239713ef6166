// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import (
	"context"
	"time"
)

// DefaultShutdownTimeout bounds graceful shutdown of a delivery.
const DefaultShutdownTimeout = 10 * time.Second

// Delivery is a long-running transport, started by the application runner.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
