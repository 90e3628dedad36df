package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tuition/internal/domain/entity"
)

// DynamicConfigModel mirrors the 'dynamic_configs' header table, one row per config key.
type DynamicConfigModel struct {
	ID               uuid.UUID                                 `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Key              string                                    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Active           bool                                      `gorm:"not null"`
	Settings         datatypes.JSONType[entity.ConfigSettings] `gorm:"type:jsonb;not null"`
	GeneralSettings  datatypes.JSONMap                         `gorm:"type:jsonb"`
	BrandingSettings datatypes.JSONMap                         `gorm:"type:jsonb"`
	Version          int64                                     `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DynamicConfigModel) TableName() string {
	return "dynamic_configs"
}

// TaxonomyItemModel mirrors the 'config_taxonomy_items' table keyed by (config_key, kind, code).
type TaxonomyItemModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ConfigKey   string            `gorm:"type:varchar(64);not null;uniqueIndex:idx_taxonomy_natural_key,priority:1"`
	Kind        string            `gorm:"type:varchar(32);not null;uniqueIndex:idx_taxonomy_natural_key,priority:2"`
	Code        string            `gorm:"type:varchar(64);not null;uniqueIndex:idx_taxonomy_natural_key,priority:3"`
	Name        string            `gorm:"type:varchar(255);not null"`
	Description string            `gorm:"type:text"`
	Active      bool              `gorm:"not null"`
	SortOrder   int               `gorm:"not null;default:0"`
	Seq         int64             `gorm:"not null;default:0"`
	Attributes  datatypes.JSONMap `gorm:"type:jsonb"`
	Version     int64             `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaxonomyItemModel) TableName() string {
	return "config_taxonomy_items"
}

// ProfileSectionModel mirrors the 'config_profile_sections' table keyed by (config_key, section_id).
type ProfileSectionModel struct {
	ID          uuid.UUID                                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ConfigKey   string                                      `gorm:"type:varchar(64);not null;uniqueIndex:idx_section_natural_key,priority:1"`
	SectionID   string                                      `gorm:"type:varchar(64);not null;uniqueIndex:idx_section_natural_key,priority:2"`
	Type        string                                      `gorm:"type:varchar(32);not null"`
	Title       string                                      `gorm:"type:varchar(255)"`
	Description string                                      `gorm:"type:text"`
	Visible     bool                                        `gorm:"not null"`
	Required    bool                                        `gorm:"not null;default:false"`
	Size        string                                      `gorm:"type:varchar(16);not null"`
	SortOrder   int                                         `gorm:"not null;default:0"`
	Seq         int64                                       `gorm:"not null;default:0"`
	Fields      datatypes.JSONSlice[entity.FieldDescriptor] `gorm:"type:jsonb"`
	Config      datatypes.JSONMap                           `gorm:"type:jsonb"`
	Version     int64                                       `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileSectionModel) TableName() string {
	return "config_profile_sections"
}

// ProfileTemplateModel mirrors the 'config_profile_templates' table keyed by (config_key, template_id).
type ProfileTemplateModel struct {
	ID          uuid.UUID                                  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ConfigKey   string                                     `gorm:"type:varchar(64);not null;uniqueIndex:idx_template_natural_key,priority:1"`
	TemplateID  string                                     `gorm:"type:varchar(64);not null;uniqueIndex:idx_template_natural_key,priority:2"`
	Name        string                                     `gorm:"type:varchar(255);not null"`
	Description string                                     `gorm:"type:text"`
	Tags        datatypes.JSONSlice[string]                `gorm:"type:jsonb"`
	Active      bool                                       `gorm:"not null"`
	IsDefault   bool                                       `gorm:"not null;default:false"`
	SortOrder   int                                        `gorm:"not null;default:0"`
	Seq         int64                                      `gorm:"not null;default:0"`
	Sections    datatypes.JSONSlice[entity.ProfileSection] `gorm:"type:jsonb"`
	Version     int64                                      `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileTemplateModel) TableName() string {
	return "config_profile_templates"
}
