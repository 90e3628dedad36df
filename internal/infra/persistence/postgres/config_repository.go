// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	"tuition/internal/infra/persistence/model"
)

// configRepository implements the repository.ConfigRepository interface.
type configRepository struct {
	db *gorm.DB
}

// NewConfigRepository is the constructor for configRepository.
func NewConfigRepository(db *gorm.DB) repository.ConfigRepository {
	return &configRepository{
		db: db,
	}
}

// FindByKey loads the active header row and every child row stored under the key.
func (repo *configRepository) FindByKey(ctx context.Context, key string) (*entity.DynamicConfig, error) {
	var cfgM model.DynamicConfigModel

	if err := repo.db.WithContext(ctx).
		Where("key = ? AND active = ?", key, true).
		First(&cfgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find config by key")
	}

	cfg := toConfigDomain(&cfgM)

	items, err := NewTaxonomyRepository(repo.db).ListByConfig(ctx, key)
	if err != nil {
		return nil, err
	}
	byKind := make(map[entity.TaxonomyKind][]entity.TaxonomyItem, len(entity.TaxonomyKinds))
	for _, item := range items {
		byKind[item.Kind] = append(byKind[item.Kind], item)
	}
	for _, kind := range entity.TaxonomyKinds {
		list := byKind[kind]
		if list == nil {
			list = []entity.TaxonomyItem{}
		}
		cfg.SetTaxonomy(kind, list)
	}

	if cfg.ProfileSections, err = NewSectionRepository(repo.db).ListByConfig(ctx, key); err != nil {
		return nil, err
	}
	if cfg.ProfileTemplates, err = NewTemplateRepository(repo.db).ListByConfig(ctx, key); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CreateIfAbsent inserts the header with ON CONFLICT (key) DO NOTHING. Children
// are written only by the caller that actually inserted the header.
func (repo *configRepository) CreateIfAbsent(ctx context.Context, cfg *entity.DynamicConfig) (bool, error) {
	cfgM := fromConfigDomain(cfg)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(cfgM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create config")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	taxonomy := NewTaxonomyRepository(repo.db)
	for _, kind := range entity.TaxonomyKinds {
		if err := taxonomy.ReplaceKind(ctx, cfg.Key, kind, cfg.Taxonomy(kind)); err != nil {
			return false, err
		}
	}
	if err := NewSectionRepository(repo.db).ReplaceAll(ctx, cfg.Key, cfg.ProfileSections); err != nil {
		return false, err
	}
	if err := NewTemplateRepository(repo.db).ReplaceAll(ctx, cfg.Key, cfg.ProfileTemplates); err != nil {
		return false, err
	}

	cfg.ID = cfgM.ID
	cfg.Version = cfgM.Version
	cfg.CreatedAt = cfgM.CreatedAt
	cfg.UpdatedAt = cfgM.UpdatedAt

	return true, nil
}

// UpdateSettings writes the settings maps guarded by the header version.
func (repo *configRepository) UpdateSettings(ctx context.Context, cfg *entity.DynamicConfig, expectedVersion int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DynamicConfigModel{}).
		Where("key = ? AND version = ?", cfg.Key, expectedVersion).
		Updates(map[string]any{
			"settings":          datatypes.NewJSONType(cfg.Settings),
			"general_settings":  datatypes.JSONMap(cfg.GeneralSettings),
			"branding_settings": datatypes.JSONMap(cfg.BrandingSettings),
			"version":           gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update config settings")
	}
	if result.RowsAffected == 0 {
		return repo.missingOrConflict(ctx, cfg.Key)
	}

	cfg.Version = expectedVersion + 1

	return nil
}

// ListKeys returns every stored config key.
func (repo *configRepository) ListKeys(ctx context.Context) ([]string, error) {
	var keys []string

	if err := repo.db.WithContext(ctx).
		Model(&model.DynamicConfigModel{}).
		Order("key ASC").
		Pluck("key", &keys).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list config keys")
	}

	return keys, nil
}

func (repo *configRepository) missingOrConflict(ctx context.Context, key string) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DynamicConfigModel{}).
		Where("key = ?", key).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check config existence")
	}
	if count == 0 {
		return repository.ErrConfigNotFound
	}

	return repository.ErrVersionConflict
}

func toConfigDomain(m *model.DynamicConfigModel) *entity.DynamicConfig {
	general := map[string]any(m.GeneralSettings)
	if general == nil {
		general = map[string]any{}
	}
	branding := map[string]any(m.BrandingSettings)
	if branding == nil {
		branding = map[string]any{}
	}

	return &entity.DynamicConfig{
		ID:               m.ID,
		Key:              m.Key,
		Active:           m.Active,
		Settings:         m.Settings.Data(),
		GeneralSettings:  general,
		BrandingSettings: branding,
		Version:          m.Version,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromConfigDomain(cfg *entity.DynamicConfig) *model.DynamicConfigModel {
	version := cfg.Version
	if version == 0 {
		version = 1
	}

	return &model.DynamicConfigModel{
		ID:               cfg.ID,
		Key:              cfg.Key,
		Active:           cfg.Active,
		Settings:         datatypes.NewJSONType(cfg.Settings),
		GeneralSettings:  datatypes.JSONMap(cfg.GeneralSettings),
		BrandingSettings: datatypes.JSONMap(cfg.BrandingSettings),
		Version:          version,
	}
}
