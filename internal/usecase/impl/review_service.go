package impl

import (
	"context"
	"log/slog"

	"localfy/internal/domain/entity"
	"localfy/internal/domain/repository"
	"localfy/internal/domain/service"
	"localfy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrInvalidReviewRating is returned when the rating is outside 1..5.
	ErrInvalidReviewRating = errors.New("review rating must be between 1 and 5")
	// ErrMissingReviewTarget is returned when no business is referenced.
	ErrMissingReviewTarget = errors.New("review is missing a business reference")
)

// ratingSampleLimit bounds how many recent reviews feed the aggregate rating.
const ratingSampleLimit = 100

type reviewService struct {
	reviewRepo          repository.ReviewRepository
	businessRepo        repository.BusinessRepository
	notificationService service.NotificationService
	logger              *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo          repository.ReviewRepository
	BusinessRepo        repository.BusinessRepository
	NotificationService service.NotificationService `optional:"true"`
	Logger              *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:          params.ReviewRepo,
		businessRepo:        params.BusinessRepo,
		notificationService: params.NotificationService,
		logger:              params.Logger,
	}
}

// ListReviews fetches one page of a business's reviews, newest first.
func (s *reviewService) ListReviews(ctx context.Context, businessID string, cursor repository.Cursor, pageSize int) (*repository.ReviewPage, error) {
	page, err := s.reviewRepo.FetchPage(ctx, businessID, cursor, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return page, nil
}

// AddReview validates and persists a review, then refreshes the business's
// aggregate rating and notifies the owner best effort.
func (s *reviewService) AddReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if review.BusinessID == "" {
		return nil, errors.WithStack(ErrMissingReviewTarget)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, errors.WithStack(ErrInvalidReviewRating)
	}

	stored, err := s.reviewRepo.AddReview(ctx, review)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add review")
	}

	if err := s.updateAggregateRating(ctx, review.BusinessID); err != nil {
		s.logger.Warn("Failed to update aggregate rating",
			slog.String("business_id", review.BusinessID), slog.Any("error", err))
	}
	s.notifyOwner(ctx, stored)

	return stored, nil
}

// updateAggregateRating recomputes the business rating from its most recent
// reviews and writes it back.
func (s *reviewService) updateAggregateRating(ctx context.Context, businessID string) error {
	var (
		sum    float64
		count  int
		cursor repository.Cursor
	)
	for count < ratingSampleLimit {
		page, err := s.reviewRepo.FetchPage(ctx, businessID, cursor, ratingSampleLimit-count)
		if err != nil {
			return err
		}
		for _, r := range page.Reviews {
			sum += r.Rating
			count++
		}
		if !page.HasMore || page.Cursor == nil {
			break
		}
		cursor = page.Cursor
	}
	if count == 0 {
		return nil
	}

	return s.businessRepo.UpdateBusiness(ctx, businessID, map[string]any{
		"rating": sum / float64(count),
	})
}

// notifyOwner pushes a new-review notification to the owner's devices. Any
// failure here is logged and swallowed.
func (s *reviewService) notifyOwner(ctx context.Context, review *entity.Review) {
	if s.notificationService == nil {
		return
	}

	business, err := s.businessRepo.FindBusinessByID(ctx, review.BusinessID)
	if err != nil || business.CreatedBy == "" {
		return
	}

	tokens, err := s.businessRepo.FindOwnerDeviceTokens(ctx, business.CreatedBy)
	if err != nil || len(tokens) == 0 {
		return
	}

	report, err := s.notificationService.BroadcastPush(ctx, tokens, service.PushMessage{
		Kind:       service.PushKindNewReview,
		Title:      "New review on " + business.Name,
		Body:       review.AuthorName + " left a review",
		BusinessID: review.BusinessID,
		ReviewID:   review.ID,
	})
	if err != nil {
		s.logger.Warn("Failed to notify business owner",
			slog.String("business_id", review.BusinessID), slog.Any("error", err))

		return
	}
	if len(report.StaleTokens) > 0 {
		s.logger.Info("Owner has stale device tokens",
			slog.String("owner_id", business.CreatedBy),
			slog.Int("stale", len(report.StaleTokens)))
	}
}
