package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tuition/internal/domain/entity"
)

// TeacherProfileModel mirrors the 'teacher_profiles' table. UserID references users.id.
// The dynamic profile is stored as a nullable JSON document.
type TeacherProfileModel struct {
	ID                 uuid.UUID                               `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID             uuid.UUID                               `gorm:"type:uuid;uniqueIndex;not null"`
	DisplayName        string                                  `gorm:"type:varchar(255);not null"`
	Headline           string                                  `gorm:"type:varchar(255)"`
	Bio                string                                  `gorm:"type:text"`
	Qualifications     datatypes.JSONSlice[string]             `gorm:"type:jsonb"`
	ExperienceYears    int                                     `gorm:"not null;default:0"`
	HourlyRate         float64                                 `gorm:"type:numeric(12,2);not null;default:0"`
	Subjects           datatypes.JSONSlice[string]             `gorm:"type:jsonb"`
	EducationLevels    datatypes.JSONSlice[string]             `gorm:"type:jsonb"`
	Phone              string                                  `gorm:"type:varchar(32)"`
	City               string                                  `gorm:"type:varchar(64)"`
	District           string                                  `gorm:"type:varchar(64)"`
	Status             string                                  `gorm:"type:varchar(16);not null;index"`
	RejectionReason    string                                  `gorm:"type:text"`
	UsesDynamicProfile bool                                    `gorm:"not null;default:false"`
	DynamicProfile     datatypes.JSON                          `gorm:"type:jsonb"`
	ProfileLayout      datatypes.JSONSlice[entity.LayoutEntry] `gorm:"type:jsonb"`
	Version            int64                                   `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeacherProfileModel) TableName() string {
	return "teacher_profiles"
}
