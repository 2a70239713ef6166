package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"localfy/internal/domain/service"
	"localfy/internal/usecase"
)

type analyticsService struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time

	mu    sync.Mutex
	views map[string]int64
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(publisher service.EventPublisher, logger *slog.Logger) usecase.AnalyticsUsecase {
	return &analyticsService{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		views:     make(map[string]int64),
	}
}

// TrackBusinessView records that a user viewed a business profile.
func (s *analyticsService) TrackBusinessView(ctx context.Context, businessID, userID string) {
	s.mu.Lock()
	s.views[businessID]++
	s.mu.Unlock()

	s.publish(ctx, &service.AnalyticsEvent{
		Type:       service.EventBusinessView,
		BusinessID: businessID,
		UserID:     userID,
		OccurredAt: s.now(),
	})
}

// TrackSearch records a search and its result count.
func (s *analyticsService) TrackSearch(ctx context.Context, query string, resultCount int, userID string) {
	s.publish(ctx, &service.AnalyticsEvent{
		Type:        service.EventSearch,
		Query:       query,
		ResultCount: resultCount,
		UserID:      userID,
		OccurredAt:  s.now(),
	})
}

// SummarizeBusiness returns the live counters for one business.
func (s *analyticsService) SummarizeBusiness(businessID string) usecase.BusinessSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return usecase.BusinessSummary{
		BusinessID: businessID,
		Views:      s.views[businessID],
	}
}

// publish sends the event to the pipeline. Analytics never fail the caller.
func (s *analyticsService) publish(ctx context.Context, event *service.AnalyticsEvent) {
	if err := s.publisher.PublishAnalyticsEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish analytics event",
			slog.String("type", event.Type), slog.Any("error", err))
	}
}
