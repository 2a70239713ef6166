package firestore

import (
	"context"
	"log/slog"
	"time"

	"localfy/internal/domain/entity"
	"localfy/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type reviewRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewReviewRepository creates a Firestore-backed review repository. Reviews
// live in a subcollection under their business document.
func NewReviewRepository(client *firestore.Client, logger *slog.Logger) repository.ReviewRepository {
	return &reviewRepository{
		client: client,
		logger: logger,
	}
}

func (r *reviewRepository) reviewsOf(businessID string) *firestore.CollectionRef {
	return r.client.Collection(collectionBusinesses).Doc(businessID).Collection(collectionReviews)
}

// FetchPage fetches one page of reviews newest first.
func (r *reviewRepository) FetchPage(ctx context.Context, businessID string, cursor repository.Cursor, pageSize int) (*repository.ReviewPage, error) {
	query := r.reviewsOf(businessID).
		OrderBy("createdAt", firestore.Desc).
		Limit(pageSize)

	if cursor != nil {
		snap, ok := cursor.(*firestore.DocumentSnapshot)
		if !ok {
			return nil, repository.ErrInvalidCursor
		}
		query = query.StartAfter(snap)
	}

	it := query.Documents(ctx)
	defer it.Stop()

	var reviews []*entity.Review
	var last *firestore.DocumentSnapshot
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch reviews for business %s", businessID)
		}

		reviews = append(reviews, entity.NewReviewFromDocument(businessID, doc.Ref.ID, doc.Data()))
		last = doc
	}

	page := &repository.ReviewPage{
		Reviews: reviews,
		HasMore: len(reviews) == pageSize,
	}
	if last != nil {
		page.Cursor = last
	}

	return page, nil
}

// AddReview persists a new review and returns it with the store-assigned ID.
func (r *reviewRepository) AddReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	data := map[string]any{
		"authorId":   review.AuthorID,
		"authorName": review.AuthorName,
		"rating":     review.Rating,
		"comment":    review.Comment,
		"createdAt":  firestore.ServerTimestamp,
	}

	ref, _, err := r.reviewsOf(review.BusinessID).Add(ctx, data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add review for business %s", review.BusinessID)
	}

	stored := *review
	stored.ID = ref.ID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	return &stored, nil
}
