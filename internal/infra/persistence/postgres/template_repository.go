package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	"tuition/internal/infra/persistence/model"
)

// templateRepository implements the repository.TemplateRepository interface.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository is the constructor for templateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// ListByConfig returns the templates in stored list position.
func (repo *templateRepository) ListByConfig(ctx context.Context, configKey string) ([]entity.ProfileTemplate, error) {
	var templateModels []*model.ProfileTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("config_key = ?", configKey).
		Order("seq ASC").
		Order("created_at ASC").
		Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profile templates")
	}

	templates := make([]entity.ProfileTemplate, 0, len(templateModels))
	for _, m := range templateModels {
		templates = append(templates, toTemplateDomain(m))
	}

	return templates, nil
}

// FindByID retrieves one template.
func (repo *templateRepository) FindByID(ctx context.Context, configKey, id string) (*entity.ProfileTemplate, error) {
	var templateM model.ProfileTemplateModel

	if err := repo.naturalKey(ctx, configKey, id).First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile template")
	}

	template := toTemplateDomain(&templateM)

	return &template, nil
}

// Create appends the template after the last stored one.
func (repo *templateRepository) Create(ctx context.Context, configKey string, template *entity.ProfileTemplate) error {
	seq, err := nextSeq(ctx, repo.db, &model.ProfileTemplateModel{}, "config_key = ?", configKey)
	if err != nil {
		return err
	}

	templateM := fromTemplateDomain(configKey, template, seq)
	if err := repo.db.WithContext(ctx).Create(templateM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTemplate
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile template")
	}

	template.Version = templateM.Version

	return nil
}

// Update rewrites the template when the stored version matches.
func (repo *templateRepository) Update(ctx context.Context, configKey string, template *entity.ProfileTemplate, expectedVersion int64) error {
	result := repo.naturalKey(ctx, configKey, template.ID).
		Where("version = ?", expectedVersion).
		Updates(map[string]any{
			"name":        template.Name,
			"description": template.Description,
			"tags":        datatypes.JSONSlice[string](template.Tags),
			"active":      template.Active,
			"is_default":  template.IsDefault,
			"sort_order":  template.Order,
			"sections":    datatypes.JSONSlice[entity.ProfileSection](template.Sections),
			"version":     gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile template")
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.naturalKey(ctx, configKey, template.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check profile template existence")
		}
		if count == 0 {
			return repository.ErrTemplateNotFound
		}

		return repository.ErrVersionConflict
	}

	template.Version = expectedVersion + 1

	return nil
}

// Delete removes the template if present.
func (repo *templateRepository) Delete(ctx context.Context, configKey, id string) error {
	if err := repo.naturalKey(ctx, configKey, id).
		Delete(&model.ProfileTemplateModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile template")
	}

	return nil
}

// ReplaceAll swaps every stored template for the given list.
func (repo *templateRepository) ReplaceAll(ctx context.Context, configKey string, templates []entity.ProfileTemplate) error {
	if err := repo.db.WithContext(ctx).
		Where("config_key = ?", configKey).
		Delete(&model.ProfileTemplateModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear profile templates")
	}
	if len(templates) == 0 {
		return nil
	}

	templateModels := make([]*model.ProfileTemplateModel, 0, len(templates))
	for i := range templates {
		templateModels = append(templateModels, fromTemplateDomain(configKey, &templates[i], int64(i+1)))
	}
	if err := repo.db.WithContext(ctx).Create(&templateModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTemplate
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert profile templates")
	}

	return nil
}

func (repo *templateRepository) naturalKey(ctx context.Context, configKey, id string) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ProfileTemplateModel{}).
		Where("config_key = ? AND template_id = ?", configKey, id)
}

func toTemplateDomain(m *model.ProfileTemplateModel) entity.ProfileTemplate {
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}
	sections := []entity.ProfileSection(m.Sections)
	if sections == nil {
		sections = []entity.ProfileSection{}
	}

	return entity.ProfileTemplate{
		ID:          m.TemplateID,
		Name:        m.Name,
		Description: m.Description,
		Tags:        tags,
		Active:      m.Active,
		Order:       m.SortOrder,
		Sections:    sections,
		IsDefault:   m.IsDefault,
		Version:     m.Version,
	}
}

func fromTemplateDomain(configKey string, template *entity.ProfileTemplate, seq int64) *model.ProfileTemplateModel {
	return &model.ProfileTemplateModel{
		ConfigKey:   configKey,
		TemplateID:  template.ID,
		Name:        template.Name,
		Description: template.Description,
		Tags:        datatypes.JSONSlice[string](template.Tags),
		Active:      template.Active,
		IsDefault:   template.IsDefault,
		SortOrder:   template.Order,
		Seq:         seq,
		Sections:    datatypes.JSONSlice[entity.ProfileSection](template.Sections),
		Version:     1,
	}
}
