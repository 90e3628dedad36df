package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tuition/internal/domain/entity"
	"tuition/internal/errors"
)

// ErrNotificationNotFound is returned when the notification does not exist for the user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository stores in-app notifications.
type NotificationRepository interface {
	// Create stores the notification. A second notification for the same
	// (user, event) pair is dropped.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByUser returns one page of the user's notifications, newest first.
	// Status "unread" or "read" filters on the read flag.
	ListByUser(ctx context.Context, userID uuid.UUID, query entity.ListQuery) ([]*entity.Notification, int64, error)

	// MarkRead stamps the notification read when it belongs to the user.
	MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) error
}

// ActivityRepository stores the activity log written from published events.
type ActivityRepository interface {
	// Create stores the log entry. Redelivered events with a known event id are dropped.
	Create(ctx context.Context, log *entity.ActivityLog) error

	// List returns one page of entries; status filters on event type and
	// search matches the config key or target id.
	List(ctx context.Context, query entity.ListQuery) ([]*entity.ActivityLog, int64, error)
}
