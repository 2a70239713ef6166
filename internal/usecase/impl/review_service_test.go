package impl

import (
	"context"
	"testing"

	"localfy/internal/domain/entity"
	"localfy/internal/domain/repository"
	"localfy/internal/domain/service"
	mockRepo "localfy/internal/mocks/repository"
	mockSvc "localfy/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_AddReview(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	notifier := mockSvc.NewMockNotificationService(t)
	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo:          reviewRepo,
		BusinessRepo:        businessRepo,
		NotificationService: notifier,
		Logger:              newDiscardLogger(),
	})

	ctx := context.Background()
	review := &entity.Review{
		BusinessID: "b1",
		AuthorID:   "u1",
		AuthorName: "Dana",
		Rating:     4,
		Comment:    "Great coffee",
	}
	stored := *review
	stored.ID = "r1"

	reviewRepo.EXPECT().AddReview(ctx, review).Return(&stored, nil)
	reviewRepo.EXPECT().FetchPage(ctx, "b1", nil, ratingSampleLimit).
		Return(&repository.ReviewPage{
			Reviews: []*entity.Review{
				{ID: "r1", Rating: 4},
				{ID: "r0", Rating: 5},
			},
			HasMore: false,
		}, nil)
	businessRepo.EXPECT().UpdateBusiness(ctx, "b1", map[string]any{"rating": 4.5}).
		Return(nil)

	owner := newBusiness("b1", "Cafe One", "cafe")
	owner.CreatedBy = "owner-1"
	businessRepo.EXPECT().FindBusinessByID(ctx, "b1").Return(owner, nil)
	businessRepo.EXPECT().FindOwnerDeviceTokens(ctx, "owner-1").
		Return([]string{"token-1"}, nil)
	notifier.EXPECT().BroadcastPush(ctx, []string{"token-1"}, mock.Anything).
		Run(func(args mock.Arguments) {
			msg := args.Get(2).(service.PushMessage)
			assert.Equal(t, service.PushKindNewReview, msg.Kind)
			assert.Equal(t, "b1", msg.BusinessID)
			assert.Equal(t, "r1", msg.ReviewID)
		}).
		Return(&service.PushReport{Delivered: 1}, nil)

	result, err := svc.AddReview(ctx, review)
	require.NoError(t, err)
	assert.Equal(t, "r1", result.ID)
}

func TestReviewService_AddReview_RejectsInvalidRating(t *testing.T) {
	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo:   mockRepo.NewMockReviewRepository(t),
		BusinessRepo: mockRepo.NewMockBusinessRepository(t),
		Logger:       newDiscardLogger(),
	})

	_, err := svc.AddReview(context.Background(), &entity.Review{BusinessID: "b1", Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidReviewRating)

	_, err = svc.AddReview(context.Background(), &entity.Review{BusinessID: "b1", Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidReviewRating)

	_, err = svc.AddReview(context.Background(), &entity.Review{Rating: 3})
	assert.ErrorIs(t, err, ErrMissingReviewTarget)
}

func TestReviewService_AddReview_AggregateFailureIsNotFatal(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo:   reviewRepo,
		BusinessRepo: businessRepo,
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	review := &entity.Review{BusinessID: "b1", Rating: 5}
	stored := *review
	stored.ID = "r1"

	reviewRepo.EXPECT().AddReview(ctx, review).Return(&stored, nil)
	reviewRepo.EXPECT().FetchPage(ctx, "b1", nil, ratingSampleLimit).
		Return(nil, repository.ErrBusinessNotFound)

	result, err := svc.AddReview(ctx, review)
	require.NoError(t, err, "a failed aggregate update never fails the review")
	assert.Equal(t, "r1", result.ID)
}

func TestReviewService_ListReviews(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo:   reviewRepo,
		BusinessRepo: mockRepo.NewMockBusinessRepository(t),
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	page := &repository.ReviewPage{
		Reviews: []*entity.Review{{ID: "r1", BusinessID: "b1", Rating: 5}},
		Cursor:  "cursor-1",
		HasMore: true,
	}
	reviewRepo.EXPECT().FetchPage(ctx, "b1", nil, 20).Return(page, nil)

	result, err := svc.ListReviews(ctx, "b1", nil, 20)
	require.NoError(t, err)
	assert.Len(t, result.Reviews, 1)
	assert.True(t, result.HasMore)
}
