package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
	"tuition/internal/domain/service"
)

// eventEmitter publishes mutation events after their transaction commits.
// Publishing is best effort: a failure is logged and never fails the mutation.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newEventEmitter(publisher service.EventPublisher, logger *slog.Logger) eventEmitter {
	return eventEmitter{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// newEvent stamps an event with a fresh id, the acting user and the current time.
func (e eventEmitter) newEvent(ctx context.Context, eventType entity.EventType, configKey, targetType, targetID string) *entity.ProfileEvent {
	return &entity.ProfileEvent{
		ID:         uuid.New(),
		Type:       eventType,
		ActorID:    deliverycontext.GetActorID(ctx),
		ConfigKey:  configKey,
		TargetType: targetType,
		TargetID:   targetID,
		OccurredAt: e.now().UTC(),
	}
}

func (e eventEmitter) emit(ctx context.Context, event *entity.ProfileEvent) {
	if e.publisher == nil || event == nil {
		return
	}

	if err := e.publisher.PublishProfileEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish profile event",
			slog.String("type", string(event.Type)),
			slog.String("eventID", event.ID.String()),
			slog.Any("error", err),
		)
	}
}
