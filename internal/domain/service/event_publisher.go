package service

import (
	"context"
	"time"
)

// Analytics event types published for the owner dashboard pipeline.
const (
	EventBusinessView = "business_view"
	EventSearch       = "search"
)

// AnalyticsEvent is a single interaction event emitted by the directory.
type AnalyticsEvent struct {
	Type        string    `json:"type"`
	BusinessID  string    `json:"business_id,omitempty"`
	Query       string    `json:"query,omitempty"`
	ResultCount int       `json:"result_count,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher publishes analytics events to the event pipeline.
type EventPublisher interface {
	// PublishAnalyticsEvent publishes a single event. Implementations may
	// drop events when the pipeline is not configured.
	PublishAnalyticsEvent(ctx context.Context, event *AnalyticsEvent) error

	// Close releases publisher resources.
	Close() error
}
