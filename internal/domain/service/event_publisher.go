package service

import (
	"context"

	"tuition/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProfileEvent publishes a config or profile mutation for async processing
	PublishProfileEvent(ctx context.Context, event *entity.ProfileEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
