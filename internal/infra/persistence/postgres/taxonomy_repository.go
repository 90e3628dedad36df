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

// taxonomyRepository implements the repository.TaxonomyRepository interface.
type taxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository is the constructor for taxonomyRepository.
func NewTaxonomyRepository(db *gorm.DB) repository.TaxonomyRepository {
	return &taxonomyRepository{
		db: db,
	}
}

// ListByConfig returns the items of every kind in insertion order.
func (repo *taxonomyRepository) ListByConfig(ctx context.Context, configKey string) ([]entity.TaxonomyItem, error) {
	var itemModels []*model.TaxonomyItemModel

	if err := repo.db.WithContext(ctx).
		Where("config_key = ?", configKey).
		Order("seq ASC").
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list taxonomy items")
	}

	items := make([]entity.TaxonomyItem, 0, len(itemModels))
	for _, m := range itemModels {
		items = append(items, toTaxonomyDomain(m))
	}

	return items, nil
}

// FindByCode retrieves one item by its natural key.
func (repo *taxonomyRepository) FindByCode(ctx context.Context, configKey string, kind entity.TaxonomyKind, code string) (*entity.TaxonomyItem, error) {
	var itemM model.TaxonomyItemModel

	if err := repo.naturalKey(ctx, configKey, kind, code).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaxonomyItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find taxonomy item")
	}

	item := toTaxonomyDomain(&itemM)

	return &item, nil
}

// Create appends the item after the last item of its kind.
func (repo *taxonomyRepository) Create(ctx context.Context, configKey string, item *entity.TaxonomyItem) error {
	seq, err := nextSeq(ctx, repo.db, &model.TaxonomyItemModel{}, "config_key = ? AND kind = ?", configKey, string(item.Kind))
	if err != nil {
		return err
	}

	itemM := fromTaxonomyDomain(configKey, item, seq)
	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTaxonomyItem
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create taxonomy item")
	}

	item.Version = itemM.Version

	return nil
}

// Update rewrites the mutable columns when the stored version matches.
func (repo *taxonomyRepository) Update(ctx context.Context, configKey string, item *entity.TaxonomyItem, expectedVersion int64) error {
	result := repo.naturalKey(ctx, configKey, item.Kind, item.Code).
		Where("version = ?", expectedVersion).
		Updates(map[string]any{
			"name":        item.Name,
			"description": item.Description,
			"active":      item.Active,
			"sort_order":  item.Order,
			"attributes":  datatypes.JSONMap(item.Attributes),
			"version":     gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update taxonomy item")
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.naturalKey(ctx, configKey, item.Kind, item.Code).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check taxonomy item existence")
		}
		if count == 0 {
			return repository.ErrTaxonomyItemNotFound
		}

		return repository.ErrVersionConflict
	}

	item.Version = expectedVersion + 1

	return nil
}

// Delete removes the item if present.
func (repo *taxonomyRepository) Delete(ctx context.Context, configKey string, kind entity.TaxonomyKind, code string) error {
	if err := repo.naturalKey(ctx, configKey, kind, code).
		Delete(&model.TaxonomyItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete taxonomy item")
	}

	return nil
}

// ReplaceKind deletes every item of the kind and inserts the given list in order.
func (repo *taxonomyRepository) ReplaceKind(ctx context.Context, configKey string, kind entity.TaxonomyKind, items []entity.TaxonomyItem) error {
	if err := repo.db.WithContext(ctx).
		Where("config_key = ? AND kind = ?", configKey, string(kind)).
		Delete(&model.TaxonomyItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear taxonomy items")
	}
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.TaxonomyItemModel, 0, len(items))
	for i := range items {
		items[i].Kind = kind
		itemModels = append(itemModels, fromTaxonomyDomain(configKey, &items[i], int64(i+1)))
	}
	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTaxonomyItem
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert taxonomy items")
	}

	return nil
}

func (repo *taxonomyRepository) naturalKey(ctx context.Context, configKey string, kind entity.TaxonomyKind, code string) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.TaxonomyItemModel{}).
		Where("config_key = ? AND kind = ? AND code = ?", configKey, string(kind), code)
}

func toTaxonomyDomain(m *model.TaxonomyItemModel) entity.TaxonomyItem {
	return entity.TaxonomyItem{
		Kind:        entity.TaxonomyKind(m.Kind),
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		Active:      m.Active,
		Order:       m.SortOrder,
		Attributes:  map[string]any(m.Attributes),
		Version:     m.Version,
	}
}

func fromTaxonomyDomain(configKey string, item *entity.TaxonomyItem, seq int64) *model.TaxonomyItemModel {
	return &model.TaxonomyItemModel{
		ConfigKey:   configKey,
		Kind:        string(item.Kind),
		Code:        item.Code,
		Name:        item.Name,
		Description: item.Description,
		Active:      item.Active,
		SortOrder:   item.Order,
		Seq:         seq,
		Attributes:  datatypes.JSONMap(item.Attributes),
		Version:     1,
	}
}

// nextSeq returns the position after the last row matching the condition.
func nextSeq(ctx context.Context, db *gorm.DB, m any, query string, args ...any) (int64, error) {
	var last int64

	if err := db.WithContext(ctx).
		Model(m).
		Where(query, args...).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&last).Error; err != nil {
		return 0, errors.Wrap(err, "failed to compute next position")
	}

	return last + 1, nil
}
