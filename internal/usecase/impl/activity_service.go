package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	"tuition/internal/usecase"
)

// activityService implements the ActivityUsecase and NotificationUsecase interfaces.
type activityService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewActivityService is the constructor for the activity log service.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return newActivityService(params)
}

// NewNotificationService is the constructor for the notification service.
func NewNotificationService(params ActivityServiceParams) usecase.NotificationUsecase {
	return newActivityService(params)
}

func newActivityService(params ActivityServiceParams) *activityService {
	return &activityService{
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordEvent writes the activity log entry and, for teacher-facing events,
// the teacher's notification in one transaction.
func (srv *activityService) RecordEvent(ctx context.Context, event *entity.ProfileEvent) error {
	if event == nil || event.ID == uuid.Nil || event.Type == "" {
		return domainerrors.ErrValidationFailed.WithDetails("event id and type are required")
	}

	srv.log(ctx).Debug("Recording profile event",
		slog.String("eventID", event.ID.String()),
		slog.String("type", string(event.Type)),
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ActivityRepo().Create(ctx, entity.ActivityFromEvent(event)); err != nil {
			return err
		}

		notification := notificationFor(event)
		if notification == nil {
			return nil
		}

		return repoFactory.NotificationRepo().Create(ctx, notification)
	})
	if err != nil {
		return translateError(err, "failed to record profile event")
	}

	return nil
}

// notificationFor builds the in-app notification an event calls for, or nil.
func notificationFor(event *entity.ProfileEvent) *entity.Notification {
	if !event.Type.NotifiesTeacher() || event.TeacherUserID == nil {
		return nil
	}

	n := &entity.Notification{
		UserID:  *event.TeacherUserID,
		EventID: event.ID,
		Kind:    event.Type,
		Data:    event.Payload,
	}

	switch event.Type {
	case entity.EventTeacherApproved:
		n.Title = "Profile approved"
		n.Body = "Your teacher profile has been approved and is now visible to students."
	case entity.EventTeacherRejected:
		n.Title = "Profile rejected"
		n.Body = "Your teacher profile was not approved."
		if reason, ok := event.Payload["reason"].(string); ok && reason != "" {
			n.Body = fmt.Sprintf("Your teacher profile was not approved: %s", reason)
		}
	case entity.EventTemplateApplied:
		n.Title = "Template applied"
		n.Body = "A profile template was applied to your layout."
		if name, ok := event.Payload["templateName"].(string); ok && name != "" {
			n.Body = fmt.Sprintf("The %q template was applied to your layout.", name)
		}
	}

	return n
}

// ListActivity returns one page of the activity log.
func (srv *activityService) ListActivity(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.ActivityLog], error) {
	query.Normalize()

	var (
		logs  []*entity.ActivityLog
		total int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		logs, total, err = repoFactory.ActivityRepo().List(ctx, query)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to list activity logs")
	}

	page := entity.NewPage(logs, query, total)

	return &page, nil
}

// ListNotifications returns one page of the user's notifications, newest first.
func (srv *activityService) ListNotifications(ctx context.Context, userID uuid.UUID, query entity.ListQuery) (*entity.Page[*entity.Notification], error) {
	query.Normalize()
	if query.Status != "" && query.Status != "read" && query.Status != "unread" {
		return nil, domainerrors.ErrInvalidEnum.WithDetails("status must be read or unread")
	}

	var (
		notifications []*entity.Notification
		total         int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		notifications, total, err = repoFactory.NotificationRepo().ListByUser(ctx, userID, query)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to list notifications")
	}

	page := entity.NewPage(notifications, query, total)

	return &page, nil
}

// MarkRead stamps the user's notification as read. Marking twice keeps the first timestamp.
func (srv *activityService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NotificationRepo().MarkRead(ctx, userID, notificationID, srv.now().UTC())
	})
	if err != nil {
		return translateError(err, "failed to mark notification read")
	}

	return nil
}
