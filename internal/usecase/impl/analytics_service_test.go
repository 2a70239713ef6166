package impl

import (
	"context"
	"testing"
	"time"

	"localfy/internal/domain/service"
	mockSvc "localfy/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAnalyticsService_TrackBusinessView(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnalyticsService(publisher, newDiscardLogger()).(*analyticsService)

	now := time.Now()
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	publisher.EXPECT().PublishAnalyticsEvent(ctx, &service.AnalyticsEvent{
		Type:       service.EventBusinessView,
		BusinessID: "b1",
		UserID:     "u1",
		OccurredAt: now,
	}).Return(nil)

	svc.TrackBusinessView(ctx, "b1", "u1")
}

func TestAnalyticsService_SummarizeBusiness_CountsViews(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnalyticsService(publisher, newDiscardLogger())

	ctx := context.Background()
	publisher.EXPECT().PublishAnalyticsEvent(ctx, mock.Anything).Return(nil)

	svc.TrackBusinessView(ctx, "b1", "u1")
	svc.TrackBusinessView(ctx, "b1", "u2")
	svc.TrackBusinessView(ctx, "b2", "u1")

	assert.Equal(t, int64(2), svc.SummarizeBusiness("b1").Views)
	assert.Equal(t, int64(1), svc.SummarizeBusiness("b2").Views)
	assert.Zero(t, svc.SummarizeBusiness("unseen").Views)
}

func TestAnalyticsService_TrackSearch_SwallowsPublishErrors(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnalyticsService(publisher, newDiscardLogger())

	ctx := context.Background()
	publisher.EXPECT().PublishAnalyticsEvent(ctx, mock.Anything).
		Return(errors.New("pipeline down"))

	assert.NotPanics(t, func() {
		svc.TrackSearch(ctx, "tacos", 7, "u1")
	})
}
