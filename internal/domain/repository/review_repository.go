package repository

import (
	"context"

	"localfy/internal/domain/entity"
)

// ReviewPage is one page of a business's reviews, newest first.
type ReviewPage struct {
	Reviews []*entity.Review
	Cursor  Cursor
	HasMore bool
}

// ReviewRepository defines the interface for review-related remote store
// operations.
type ReviewRepository interface {
	// FetchPage fetches one page of reviews for a business ordered by
	// creation time descending, starting after the given cursor.
	FetchPage(ctx context.Context, businessID string, cursor Cursor, pageSize int) (*ReviewPage, error)

	// AddReview persists a new review under the business's review
	// subcollection and returns the stored record with its assigned ID.
	AddReview(ctx context.Context, review *entity.Review) (*entity.Review, error)
}
