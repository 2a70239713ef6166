package usecase

import (
	"context"

	"localfy/internal/domain/entity"
	"localfy/internal/domain/repository"
)

// ReviewUsecase defines the interface for review management use cases
type ReviewUsecase interface {
	// ListReviews fetches one page of a business's reviews, newest first.
	ListReviews(ctx context.Context, businessID string, cursor repository.Cursor, pageSize int) (*repository.ReviewPage, error)

	// AddReview validates and persists a review, updates the business's
	// aggregate rating, and notifies the owner best effort.
	AddReview(ctx context.Context, review *entity.Review) (*entity.Review, error)
}
