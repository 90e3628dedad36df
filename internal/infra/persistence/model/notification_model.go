package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// A user receives at most one notification per event.
type NotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_notification_user_event,priority:1"`
	EventID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_notification_user_event,priority:2"`
	Kind      string            `gorm:"type:varchar(64);not null"`
	Title     string            `gorm:"type:varchar(255);not null"`
	Body      string            `gorm:"type:text"`
	Data      datatypes.JSONMap `gorm:"type:jsonb"`
	ReadAt    *time.Time        `gorm:"index"`
	CreatedAt time.Time         `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ActivityLogModel is the GORM-specific struct for the 'activity_logs' table.
type ActivityLogModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventID       uuid.UUID         `gorm:"type:uuid;uniqueIndex;not null"`
	Type          string            `gorm:"type:varchar(64);not null;index"`
	ActorID       *uuid.UUID        `gorm:"type:uuid;index"`
	TeacherUserID *uuid.UUID        `gorm:"type:uuid;index"`
	ConfigKey     string            `gorm:"type:varchar(64)"`
	TargetType    string            `gorm:"type:varchar(32)"`
	TargetID      string            `gorm:"type:varchar(64)"`
	Payload       datatypes.JSONMap `gorm:"type:jsonb"`
	OccurredAt    time.Time         `gorm:"index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
