package service

import "context"

// PushKind identifies what a notification is about. It travels in the data
// payload so the app can route the tap to the right screen.
type PushKind string

const (
	PushKindNewReview      PushKind = "review"
	PushKindBusinessUpdate PushKind = "business_update"
)

// PushMessage is one notification addressed to a business owner's devices.
type PushMessage struct {
	Kind       PushKind
	Title      string
	Body       string
	BusinessID string
	ReviewID   string
}

// PushReport summarizes a broadcast: delivery counts plus the tokens the
// dispatch service flagged as unusable, so callers can prune them.
type PushReport struct {
	Delivered   int
	Failed      int
	StaleTokens []string
}

// NotificationService delivers push notifications to device tokens.
type NotificationService interface {
	// SendPush delivers the message to a single device token.
	SendPush(ctx context.Context, token string, msg PushMessage) error

	// BroadcastPush delivers the message to every token and reports
	// per-token outcomes.
	BroadcastPush(ctx context.Context, tokens []string, msg PushMessage) (*PushReport, error)
}
