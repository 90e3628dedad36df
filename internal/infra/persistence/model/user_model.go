package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
