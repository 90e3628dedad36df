// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"tuition/internal/domain/entity"
)

// ConfigUsecase manages the admin-editable configuration store.
type ConfigUsecase interface {
	// GetConfig returns the config for key, seeding the default catalog on
	// first read when auto seeding is enabled.
	GetConfig(ctx context.Context, key string) (*entity.DynamicConfig, error)

	// UpdateConfig replaces every top-level value present in the input.
	UpdateConfig(ctx context.Context, key string, input *UpdateConfigInput) (*entity.DynamicConfig, error)

	// SeedConfig stores the default catalog under key unless one exists.
	SeedConfig(ctx context.Context, key string) (created bool, err error)

	// ImportConfig stores a full config, creating it or replacing every collection.
	ImportConfig(ctx context.Context, cfg *entity.DynamicConfig) (*entity.DynamicConfig, error)

	// ListConfigKeys returns every stored key.
	ListConfigKeys(ctx context.Context) ([]string, error)

	AddTaxonomyItem(ctx context.Context, key string, kind entity.TaxonomyKind, item *entity.TaxonomyItem) (*entity.TaxonomyItem, error)
	UpdateTaxonomyItem(ctx context.Context, key string, kind entity.TaxonomyKind, code string, input *UpdateTaxonomyItemInput) (*entity.TaxonomyItem, error)
	RemoveTaxonomyItem(ctx context.Context, key string, kind entity.TaxonomyKind, code string) error

	AddProfileSection(ctx context.Context, key string, section *entity.ProfileSection) (*entity.ProfileSection, error)
	UpdateProfileSection(ctx context.Context, key, id string, input *UpdateProfileSectionInput) (*entity.ProfileSection, error)
	RemoveProfileSection(ctx context.Context, key, id string) error

	// ReorderProfileSections applies the given orders; unknown ids are ignored.
	ReorderProfileSections(ctx context.Context, key string, orders []entity.SectionOrder) ([]entity.ProfileSection, error)

	AddProfileTemplate(ctx context.Context, key string, template *entity.ProfileTemplate) (*entity.ProfileTemplate, error)
	UpdateProfileTemplate(ctx context.Context, key, id string, input *UpdateProfileTemplateInput) (*entity.ProfileTemplate, error)
	RemoveProfileTemplate(ctx context.Context, key, id string) error
	GetProfileTemplate(ctx context.Context, key, id string) (*entity.ProfileTemplate, error)

	// GetPublicConfig returns the active and visible projection, served from cache when possible.
	GetPublicConfig(ctx context.Context, key string) (*entity.PublicConfig, error)
}

// --- Input DTOs ---

// UpdateConfigInput carries a shallow partial update. Nil members are left unchanged;
// a provided collection replaces the stored collection.
type UpdateConfigInput struct {
	EducationLevels  []entity.TaxonomyItem    `json:"educationLevels,omitempty"`
	Subjects         []entity.TaxonomyItem    `json:"subjects,omitempty"`
	Grades           []entity.TaxonomyItem    `json:"grades,omitempty"`
	Cities           []entity.TaxonomyItem    `json:"cities,omitempty"`
	Districts        []entity.TaxonomyItem    `json:"districts,omitempty"`
	Provinces        []entity.TaxonomyItem    `json:"provinces,omitempty"`
	ProfileSections  []entity.ProfileSection  `json:"profileSections,omitempty"`
	ProfileTemplates []entity.ProfileTemplate `json:"profileTemplates,omitempty"`
	Settings         *entity.ConfigSettings   `json:"settings,omitempty" validate:"omitempty"`
	GeneralSettings  map[string]any           `json:"generalSettings,omitempty"`
	BrandingSettings map[string]any           `json:"brandingSettings,omitempty"`
	// Version, when set, must equal the stored config version.
	Version *int64 `json:"version,omitempty"`
}

// Collection returns the taxonomy list supplied for kind, or nil.
func (in *UpdateConfigInput) Collection(kind entity.TaxonomyKind) []entity.TaxonomyItem {
	switch kind {
	case entity.TaxonomyEducationLevel:
		return in.EducationLevels
	case entity.TaxonomySubject:
		return in.Subjects
	case entity.TaxonomyGrade:
		return in.Grades
	case entity.TaxonomyCity:
		return in.Cities
	case entity.TaxonomyDistrict:
		return in.Districts
	case entity.TaxonomyProvince:
		return in.Provinces
	default:
		return nil
	}
}

// UpdateTaxonomyItemInput merges into a stored taxonomy item.
type UpdateTaxonomyItemInput struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string        `json:"description,omitempty"`
	Active      *bool          `json:"active,omitempty"`
	Order       *int           `json:"order,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	Version     *int64         `json:"version,omitempty"`
}

// UpdateProfileSectionInput merges into a stored profile section.
type UpdateProfileSectionInput struct {
	Type        *entity.SectionType      `json:"type,omitempty"`
	Title       *string                  `json:"title,omitempty"`
	Description *string                  `json:"description,omitempty"`
	Visible     *bool                    `json:"visible,omitempty"`
	Order       *int                     `json:"order,omitempty"`
	Required    *bool                    `json:"required,omitempty"`
	Size        *entity.SectionSize      `json:"size,omitempty"`
	Fields      []entity.FieldDescriptor `json:"fields,omitempty"`
	Config      map[string]any           `json:"config,omitempty"`
	Version     *int64                   `json:"version,omitempty"`
}

// UpdateProfileTemplateInput merges into a stored profile template.
type UpdateProfileTemplateInput struct {
	Name        *string                 `json:"name,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Tags        []string                `json:"tags,omitempty"`
	Active      *bool                   `json:"active,omitempty"`
	Order       *int                    `json:"order,omitempty"`
	Sections    []entity.ProfileSection `json:"sections,omitempty"`
	IsDefault   *bool                   `json:"isDefault,omitempty"`
	Version     *int64                  `json:"version,omitempty"`
}
