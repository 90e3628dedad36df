package usecase

import (
	"context"

	"github.com/google/uuid"

	"tuition/internal/domain/entity"
	"tuition/internal/domain/form"
)

// DynamicProfileUsecase projects teacher profiles onto the configured sections.
type DynamicProfileUsecase interface {
	GetDynamicProfile(ctx context.Context, teacherUserID uuid.UUID) (*DynamicProfileOutput, error)
	UpdateDynamicProfile(ctx context.Context, teacherUserID uuid.UUID, input *UpdateDynamicProfileInput) (*entity.TeacherProfile, error)
	EnableDynamicProfile(ctx context.Context, teacherUserID uuid.UUID) (*entity.TeacherProfile, error)

	// DisableDynamicProfile switches back to legacy fields; stored dynamic data is kept.
	DisableDynamicProfile(ctx context.Context, teacherUserID uuid.UUID) (*entity.TeacherProfile, error)
	UpdateProfileLayout(ctx context.Context, teacherUserID uuid.UUID, layout []entity.LayoutEntry) (*entity.TeacherProfile, error)
	GetProfileTemplate(ctx context.Context, templateID string) (*entity.ProfileTemplate, error)

	// ApplyProfileTemplate snapshots the template's section placement into the teacher's layout.
	ApplyProfileTemplate(ctx context.Context, teacherUserID uuid.UUID, templateID string) (*entity.TeacherProfile, error)

	// GetProfileForm returns the render plan for the teacher's effective sections.
	GetProfileForm(ctx context.Context, teacherUserID uuid.UUID) (*form.Schema, error)
	GetProfileCompleteness(ctx context.Context, teacherUserID uuid.UUID) (*form.Completeness, error)
}

// --- Input DTOs ---

// UpdateDynamicProfileInput holds the parts of a dynamic profile a teacher may send.
// Section data and custom fields are merged per top-level key.
type UpdateDynamicProfileInput struct {
	SectionData   map[string]any       `json:"sectionData,omitempty"`
	CustomFields  map[string]any       `json:"customFields,omitempty"`
	TemplateID    *string              `json:"templateId,omitempty"`
	ProfileLayout []entity.LayoutEntry `json:"profileLayout,omitempty" validate:"omitempty,dive"`
	Version       *int64               `json:"version,omitempty"`
}

// --- Output DTOs ---

// DynamicProfileOutput is the teacher's profile together with the public config it renders against.
type DynamicProfileOutput struct {
	Teacher            *entity.TeacherProfile `json:"teacher"`
	Config             *entity.PublicConfig   `json:"config"`
	UsesDynamicProfile bool                   `json:"usesDynamicProfile"`
	DynamicProfile     *entity.DynamicProfile `json:"dynamicProfile"`
	ProfileLayout      []entity.LayoutEntry   `json:"profileLayout"`
}
