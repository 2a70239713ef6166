package firestore

import (
	"context"
	"log/slog"

	"localfy/internal/domain/entity"
	"localfy/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type businessRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewBusinessRepository creates a Firestore-backed business repository.
func NewBusinessRepository(client *firestore.Client, logger *slog.Logger) repository.BusinessRepository {
	return &businessRepository{
		client: client,
		logger: logger,
	}
}

// FetchPage fetches one page of businesses ordered by creation time
// descending. The cursor is the last document snapshot of the previous page;
// hasMore is inferred from a full page.
func (r *businessRepository) FetchPage(ctx context.Context, category string, cursor repository.Cursor, pageSize int) (*repository.BusinessPage, error) {
	query := r.client.Collection(collectionBusinesses).
		OrderBy("createdAt", firestore.Desc).
		Limit(pageSize)

	if category != "" {
		query = query.Where("category", "==", category)
	}

	if cursor != nil {
		snap, ok := cursor.(*firestore.DocumentSnapshot)
		if !ok {
			return nil, repository.ErrInvalidCursor
		}
		query = query.StartAfter(snap)
	}

	it := query.Documents(ctx)
	defer it.Stop()

	var businesses []*entity.Business
	var last *firestore.DocumentSnapshot
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch businesses page")
		}

		businesses = append(businesses, entity.NewBusinessFromDocument(doc.Ref.ID, doc.Data()))
		last = doc
	}

	page := &repository.BusinessPage{
		Businesses: businesses,
		HasMore:    len(businesses) == pageSize,
	}
	if last != nil {
		page.Cursor = last
	}

	return page, nil
}

// FindBusinessByID retrieves and normalizes a single business document.
func (r *businessRepository) FindBusinessByID(ctx context.Context, id string) (*entity.Business, error) {
	doc, err := r.client.Collection(collectionBusinesses).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrapf(err, "failed to fetch business %s", id)
	}

	return entity.NewBusinessFromDocument(doc.Ref.ID, doc.Data()), nil
}

// UpdateBusiness writes the partial field set; the store assigns the
// updated-at timestamp server-side.
func (r *businessRepository) UpdateBusiness(ctx context.Context, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := r.client.Collection(collectionBusinesses).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrBusinessNotFound
		}

		return errors.Wrapf(err, "failed to update business %s", id)
	}

	return nil
}

// WatchBusiness subscribes to snapshot events for one document. Each remote
// change is normalized and handed to onChange. The returned stop function
// cancels the subscription.
func (r *businessRepository) WatchBusiness(ctx context.Context, id string, onChange func(*entity.Business)) (func(), error) {
	if id == "" {
		return nil, errors.New("business id is required")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	it := r.client.Collection(collectionBusinesses).Doc(id).Snapshots(watchCtx)

	go func() {
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.logger.Warn("business snapshot listener stopped",
						slog.String("business_id", id),
						slog.Any("error", err),
					)
				}

				return
			}
			if !snap.Exists() {
				continue
			}

			onChange(entity.NewBusinessFromDocument(snap.Ref.ID, snap.Data()))
		}
	}()

	return cancel, nil
}

// FindOwnerDeviceTokens reads the push tokens registered on the owner's user
// document.
func (r *businessRepository) FindOwnerDeviceTokens(ctx context.Context, ownerID string) ([]string, error) {
	doc, err := r.client.Collection(collectionUsers).Doc(ownerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to fetch user %s", ownerID)
	}

	raw, _ := doc.Data()["fcmTokens"].([]any)
	tokens := make([]string, 0, len(raw))
	for _, item := range raw {
		if token, ok := item.(string); ok && token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens, nil
}
