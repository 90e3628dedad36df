package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"

	"tuition/internal/domain/entity"
	"tuition/internal/domain/service"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishProfileEvent publishes an event to Google Pub/Sub and waits for the server ack
func (p *googlePubSubPublisher) PublishProfileEvent(ctx context.Context, event *entity.ProfileEvent) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	key := orderingKey(event)
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(ctx, event),
		OrderingKey: key,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(key)

		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
		slog.String("ordering_key", key),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
