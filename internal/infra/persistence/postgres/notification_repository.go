package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	"tuition/internal/infra/persistence/model"
)

const (
	notificationStatusUnread = "unread"
	notificationStatusRead   = "read"
)

var activitySortColumns = map[string]string{
	"occurredAt": "occurred_at",
	"createdAt":  "created_at",
	"type":       "type",
}

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create stores the notification once per (user, event).
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := &model.NotificationModel{
		ID:      notification.ID,
		UserID:  notification.UserID,
		EventID: notification.EventID,
		Kind:    string(notification.Kind),
		Title:   notification.Title,
		Body:    notification.Body,
		Data:    datatypes.JSONMap(notification.Data),
		ReadAt:  notification.ReadAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
			DoNothing: true,
		}).
		Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByUser returns one page of the user's notifications, newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, query entity.ListQuery) ([]*entity.Notification, int64, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ?", userID)
	switch query.Status {
	case notificationStatusUnread:
		tx = tx.Where("read_at IS NULL")
	case notificationStatusRead:
		tx = tx.Where("read_at IS NOT NULL")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}

	var notificationModels []*model.NotificationModel
	if err := tx.
		Order("created_at DESC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&notificationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, m := range notificationModels {
		notifications = append(notifications, &entity.Notification{
			ID:        m.ID,
			UserID:    m.UserID,
			EventID:   m.EventID,
			Kind:      entity.EventType(m.Kind),
			Title:     m.Title,
			Body:      m.Body,
			Data:      map[string]any(m.Data),
			ReadAt:    m.ReadAt,
			CreatedAt: m.CreatedAt,
		})
	}

	return notifications, total, nil
}

// MarkRead stamps the notification read. Marking it again keeps the first timestamp.
func (repo *notificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read_at", gorm.Expr("COALESCE(read_at, ?)", at))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create stores the entry; a redelivered event id is ignored.
func (repo *activityRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	logM := &model.ActivityLogModel{
		ID:            log.ID,
		EventID:       log.EventID,
		Type:          string(log.Type),
		ActorID:       log.ActorID,
		TeacherUserID: log.TeacherUserID,
		ConfigKey:     log.ConfigKey,
		TargetType:    log.TargetType,
		TargetID:      log.TargetID,
		Payload:       datatypes.JSONMap(log.Payload),
		OccurredAt:    log.OccurredAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// List returns one page of activity entries.
func (repo *activityRepository) List(ctx context.Context, query entity.ListQuery) ([]*entity.ActivityLog, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ActivityLogModel{})
	if query.Status != "" {
		tx = tx.Where("type = ?", query.Status)
	}
	if query.Search != "" {
		like := likePattern(query.Search)
		tx = tx.Where("config_key ILIKE ? OR target_id ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count activity logs")
	}

	var logModels []*model.ActivityLogModel
	if err := tx.
		Order(orderClause(query, activitySortColumns, "occurred_at")).
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&logModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(logModels))
	for _, m := range logModels {
		logs = append(logs, &entity.ActivityLog{
			ID:            m.ID,
			EventID:       m.EventID,
			Type:          entity.EventType(m.Type),
			ActorID:       m.ActorID,
			TeacherUserID: m.TeacherUserID,
			ConfigKey:     m.ConfigKey,
			TargetType:    m.TargetType,
			TargetID:      m.TargetID,
			Payload:       map[string]any(m.Payload),
			OccurredAt:    m.OccurredAt,
			CreatedAt:     m.CreatedAt,
		})
	}

	return logs, total, nil
}
