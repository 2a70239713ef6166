// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"localfy/internal/domain/entity"
	"localfy/internal/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business document does not exist.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrInvalidCursor is returned when a pagination cursor was not produced
	// by this repository.
	ErrInvalidCursor = errors.New("invalid pagination cursor")
)

// Cursor is an opaque reference to the last document of a page, used to
// request the next page in the same order. Callers must treat it as a black
// box and pass it back unchanged.
type Cursor any

// BusinessPage is one page of the businesses collection, ordered by creation
// time descending.
type BusinessPage struct {
	Businesses []*entity.Business
	Cursor     Cursor // Cursor for the next page; nil when the page was empty.
	HasMore    bool   // True when the page was full, so another page may exist.
}

// BusinessRepository defines the interface for business-related remote store
// operations. Implementations normalize every document through the entity
// package before returning it.
type BusinessRepository interface {
	// FetchPage fetches one page of businesses ordered by creation time
	// descending, optionally filtered by category (empty string means no
	// filter), starting after the given cursor (nil means from the top).
	FetchPage(ctx context.Context, category string, cursor Cursor, pageSize int) (*BusinessPage, error)

	// FindBusinessByID retrieves a single business document.
	FindBusinessByID(ctx context.Context, id string) (*entity.Business, error)

	// UpdateBusiness writes the partial field set to the remote document.
	// The remote store assigns its own updated-at timestamp.
	UpdateBusiness(ctx context.Context, id string, fields map[string]any) error

	// WatchBusiness subscribes to remote changes of a single document. Each
	// change is delivered as a normalized record. The returned stop function
	// tears the subscription down; it is safe to call more than once.
	WatchBusiness(ctx context.Context, id string, onChange func(*entity.Business)) (func(), error)

	// FindOwnerDeviceTokens returns the push tokens registered for a
	// business owner, used for best-effort review notifications.
	FindOwnerDeviceTokens(ctx context.Context, ownerID string) ([]string, error)
}
