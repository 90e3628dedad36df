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

// sectionRepository implements the repository.SectionRepository interface.
type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository is the constructor for sectionRepository.
func NewSectionRepository(db *gorm.DB) repository.SectionRepository {
	return &sectionRepository{
		db: db,
	}
}

// ListByConfig returns the sections in stored list position.
func (repo *sectionRepository) ListByConfig(ctx context.Context, configKey string) ([]entity.ProfileSection, error) {
	var sectionModels []*model.ProfileSectionModel

	if err := repo.db.WithContext(ctx).
		Where("config_key = ?", configKey).
		Order("seq ASC").
		Order("created_at ASC").
		Find(&sectionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profile sections")
	}

	sections := make([]entity.ProfileSection, 0, len(sectionModels))
	for _, m := range sectionModels {
		sections = append(sections, toSectionDomain(m))
	}

	return sections, nil
}

// FindByID retrieves one section.
func (repo *sectionRepository) FindByID(ctx context.Context, configKey, id string) (*entity.ProfileSection, error) {
	var sectionM model.ProfileSectionModel

	if err := repo.naturalKey(ctx, configKey, id).First(&sectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile section")
	}

	section := toSectionDomain(&sectionM)

	return &section, nil
}

// Create appends the section after the last stored one.
func (repo *sectionRepository) Create(ctx context.Context, configKey string, section *entity.ProfileSection) error {
	seq, err := nextSeq(ctx, repo.db, &model.ProfileSectionModel{}, "config_key = ?", configKey)
	if err != nil {
		return err
	}

	sectionM := fromSectionDomain(configKey, section, seq)
	if err := repo.db.WithContext(ctx).Create(sectionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSection
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile section")
	}

	section.Version = sectionM.Version

	return nil
}

// Update rewrites the section when the stored version matches.
func (repo *sectionRepository) Update(ctx context.Context, configKey string, section *entity.ProfileSection, expectedVersion int64) error {
	result := repo.naturalKey(ctx, configKey, section.ID).
		Where("version = ?", expectedVersion).
		Updates(map[string]any{
			"type":        string(section.Type),
			"title":       section.Title,
			"description": section.Description,
			"visible":     section.Visible,
			"required":    section.Required,
			"size":        string(section.Size),
			"sort_order":  section.Order,
			"fields":      datatypes.JSONSlice[entity.FieldDescriptor](section.Fields),
			"config":      datatypes.JSONMap(section.Config),
			"version":     gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile section")
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.naturalKey(ctx, configKey, section.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check profile section existence")
		}
		if count == 0 {
			return repository.ErrSectionNotFound
		}

		return repository.ErrVersionConflict
	}

	section.Version = expectedVersion + 1

	return nil
}

// Delete removes the section if present.
func (repo *sectionRepository) Delete(ctx context.Context, configKey, id string) error {
	if err := repo.naturalKey(ctx, configKey, id).
		Delete(&model.ProfileSectionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile section")
	}

	return nil
}

// ReplaceAll swaps every stored section for the given list.
func (repo *sectionRepository) ReplaceAll(ctx context.Context, configKey string, sections []entity.ProfileSection) error {
	if err := repo.db.WithContext(ctx).
		Where("config_key = ?", configKey).
		Delete(&model.ProfileSectionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear profile sections")
	}
	if len(sections) == 0 {
		return nil
	}

	sectionModels := make([]*model.ProfileSectionModel, 0, len(sections))
	for i := range sections {
		sectionModels = append(sectionModels, fromSectionDomain(configKey, &sections[i], int64(i+1)))
	}
	if err := repo.db.WithContext(ctx).Create(&sectionModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSection
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert profile sections")
	}

	return nil
}

// SavePositions stores each section's order and its index in the slice.
func (repo *sectionRepository) SavePositions(ctx context.Context, configKey string, sections []entity.ProfileSection) error {
	for i := range sections {
		result := repo.naturalKey(ctx, configKey, sections[i].ID).
			Updates(map[string]any{
				"sort_order": sections[i].Order,
				"seq":        int64(i + 1),
				"version":    gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save section position")
		}
		sections[i].Version++
	}

	return nil
}

func (repo *sectionRepository) naturalKey(ctx context.Context, configKey, id string) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ProfileSectionModel{}).
		Where("config_key = ? AND section_id = ?", configKey, id)
}

func toSectionDomain(m *model.ProfileSectionModel) entity.ProfileSection {
	fields := []entity.FieldDescriptor(m.Fields)
	if fields == nil {
		fields = []entity.FieldDescriptor{}
	}

	return entity.ProfileSection{
		ID:          m.SectionID,
		Type:        entity.SectionType(m.Type),
		Title:       m.Title,
		Description: m.Description,
		Visible:     m.Visible,
		Order:       m.SortOrder,
		Required:    m.Required,
		Size:        entity.SectionSize(m.Size),
		Fields:      fields,
		Config:      map[string]any(m.Config),
		Version:     m.Version,
	}
}

func fromSectionDomain(configKey string, section *entity.ProfileSection, seq int64) *model.ProfileSectionModel {
	return &model.ProfileSectionModel{
		ConfigKey:   configKey,
		SectionID:   section.ID,
		Type:        string(section.Type),
		Title:       section.Title,
		Description: section.Description,
		Visible:     section.Visible,
		Required:    section.Required,
		Size:        string(section.Size),
		SortOrder:   section.Order,
		Seq:         seq,
		Fields:      datatypes.JSONSlice[entity.FieldDescriptor](section.Fields),
		Config:      datatypes.JSONMap(section.Config),
		Version:     1,
	}
}
