package pubsub

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"tuition/config"
	"tuition/internal/domain/constants"
	"tuition/internal/domain/entity"
	"tuition/internal/domain/service"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishProfileEvent(_ context.Context, event *entity.ProfileEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
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
	logger := params.Logger

	publisher, err := newPublisher(params.Ctx, params.Config, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, appConfig *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	cfg := appConfig.PubSub
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	case constants.PubSubProviderNATS:
		if appConfig.NATS == nil || appConfig.NATS.URL == "" {
			return nil, errors.New("nats url is required for nats provider")
		}

		return NewNATSPublisher(appConfig.NATS.URL, appConfig.NATS.Subject, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
