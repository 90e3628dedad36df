package usecase

import (
	"context"

	"github.com/google/uuid"

	"tuition/internal/domain/entity"
)

// ActivityUsecase consumes published events and serves the activity log.
type ActivityUsecase interface {
	// RecordEvent stores the event in the activity log and creates the
	// teacher notification the event calls for. Redelivery is harmless.
	RecordEvent(ctx context.Context, event *entity.ProfileEvent) error
	ListActivity(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.ActivityLog], error)
}

// NotificationUsecase serves a user's in-app notifications.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, query entity.ListQuery) (*entity.Page[*entity.Notification], error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
