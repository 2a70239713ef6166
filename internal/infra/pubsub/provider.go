// Package pubsub implements the analytics event publisher.
package pubsub

import (
	"context"
	"log/slog"

	"localfy/config"
	"localfy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderGoogle selects the Google Pub/Sub publisher.
const ProviderGoogle = "google"

// noopPublisher is a no-op implementation when event publishing is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAnalyticsEvent(_ context.Context, event *service.AnalyticsEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("type", event.Type),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	if cfg.Provider != ProviderGoogle {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
	if cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google provider")
	}
	if cfg.TopicID == "" {
		return nil, errors.New("topic ID is required for google provider")
	}

	publisher, err := NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
