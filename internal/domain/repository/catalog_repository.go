package repository

import (
	"context"

	"tuition/internal/domain/entity"
	"tuition/internal/errors"
)

// Domain-specific errors for catalog persistence.
var (
	ErrTaxonomyItemNotFound  = errors.New("taxonomy item not found")
	ErrDuplicateTaxonomyItem = errors.New("taxonomy item already exists")
	ErrSectionNotFound       = errors.New("profile section not found")
	ErrDuplicateSection      = errors.New("profile section already exists")
	ErrTemplateNotFound      = errors.New("profile template not found")
	ErrDuplicateTemplate     = errors.New("profile template already exists")
)

// TaxonomyRepository persists taxonomy items keyed by (config key, kind, code).
type TaxonomyRepository interface {
	// ListByConfig returns all items of the config in insertion order.
	ListByConfig(ctx context.Context, configKey string) ([]entity.TaxonomyItem, error)

	// FindByCode returns one item by its natural key.
	FindByCode(ctx context.Context, configKey string, kind entity.TaxonomyKind, code string) (*entity.TaxonomyItem, error)

	// Create appends a new item, failing with ErrDuplicateTaxonomyItem when the code is taken.
	Create(ctx context.Context, configKey string, item *entity.TaxonomyItem) error

	// Update rewrites an item when its version still equals expectedVersion.
	Update(ctx context.Context, configKey string, item *entity.TaxonomyItem, expectedVersion int64) error

	// Delete removes an item. Deleting an absent item is not an error.
	Delete(ctx context.Context, configKey string, kind entity.TaxonomyKind, code string) error

	// ReplaceKind swaps every item of one kind for the given list.
	ReplaceKind(ctx context.Context, configKey string, kind entity.TaxonomyKind, items []entity.TaxonomyItem) error
}

// SectionRepository persists profile sections keyed by (config key, section id).
type SectionRepository interface {
	ListByConfig(ctx context.Context, configKey string) ([]entity.ProfileSection, error)
	FindByID(ctx context.Context, configKey, id string) (*entity.ProfileSection, error)
	Create(ctx context.Context, configKey string, section *entity.ProfileSection) error
	Update(ctx context.Context, configKey string, section *entity.ProfileSection, expectedVersion int64) error
	Delete(ctx context.Context, configKey, id string) error
	ReplaceAll(ctx context.Context, configKey string, sections []entity.ProfileSection) error

	// SavePositions stores the declared order and list position of each
	// section as given by the slice.
	SavePositions(ctx context.Context, configKey string, sections []entity.ProfileSection) error
}

// TemplateRepository persists profile templates keyed by (config key, template id).
type TemplateRepository interface {
	ListByConfig(ctx context.Context, configKey string) ([]entity.ProfileTemplate, error)
	FindByID(ctx context.Context, configKey, id string) (*entity.ProfileTemplate, error)
	Create(ctx context.Context, configKey string, template *entity.ProfileTemplate) error
	Update(ctx context.Context, configKey string, template *entity.ProfileTemplate, expectedVersion int64) error
	Delete(ctx context.Context, configKey, id string) error
	ReplaceAll(ctx context.Context, configKey string, templates []entity.ProfileTemplate) error
}
