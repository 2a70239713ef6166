package usecase

import "context"

// BusinessSummary aggregates the activity recorded for one business since
// the process started. Durable aggregation happens downstream of the event
// pipeline; this is the live counter the owner dashboard reads.
type BusinessSummary struct {
	BusinessID string `json:"business_id"`
	Views      int64  `json:"views"`
}

// AnalyticsUsecase records directory interaction events.
type AnalyticsUsecase interface {
	// TrackBusinessView records that a user viewed a business profile.
	TrackBusinessView(ctx context.Context, businessID, userID string)

	// TrackSearch records a search and its result count.
	TrackSearch(ctx context.Context, query string, resultCount int, userID string)

	// SummarizeBusiness returns the live counters for one business.
	SummarizeBusiness(businessID string) BusinessSummary
}
