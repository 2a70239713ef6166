// Package notification implements push delivery through Firebase Cloud
// Messaging.
package notification

import (
	"context"

	"localfy/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// multicastLimit is the messaging API's per-request token cap; larger
// broadcasts are split into chunks of this size.
const multicastLimit = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendPush delivers the message to a single device token.
func (s *firebaseService) SendPush(ctx context.Context, token string, msg service.PushMessage) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: payload(msg),
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// BroadcastPush delivers the message to every token, splitting the set into
// API-sized chunks, and reports per-token outcomes.
func (s *firebaseService) BroadcastPush(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	report := &service.PushReport{}

	for start := 0; start < len(tokens); start += multicastLimit {
		end := min(start+multicastLimit, len(tokens))
		chunk := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: payload(msg),
		}

		response, err := s.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return report, errors.Wrap(err, "failed to send multicast notification")
		}

		report.Delivered += response.SuccessCount
		report.Failed += response.FailureCount
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error) {
				report.StaleTokens = append(report.StaleTokens, chunk[idx])
			}
		}
	}

	return report, nil
}

// payload builds the data payload the app uses to deep-link the tap.
func payload(msg service.PushMessage) map[string]string {
	data := map[string]string{"type": string(msg.Kind)}
	if msg.BusinessID != "" {
		data["business_id"] = msg.BusinessID
	}
	if msg.ReviewID != "" {
		data["review_id"] = msg.ReviewID
	}

	return data
}
