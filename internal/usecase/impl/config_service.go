package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"go.uber.org/fx"

	"tuition/config"
	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/form"
	"tuition/internal/domain/repository"
	"tuition/internal/domain/service"
	"tuition/internal/errors"
	"tuition/internal/usecase"
)

const (
	targetConfig   = "config"
	targetSection  = "section"
	targetTemplate = "template"
)

// configService implements the ConfigUsecase interface.
type configService struct {
	txManager  repository.TransactionManager
	cache      service.PublicConfigCache
	events     eventEmitter
	defaultKey string
	autoSeed   bool
	logger     *slog.Logger
}

// ConfigServiceParams holds dependencies for ConfigService, injected by Fx.
type ConfigServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     service.PublicConfigCache
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewConfigService is the constructor for configService.
func NewConfigService(params ConfigServiceParams) usecase.ConfigUsecase {
	defaultKey := "default"
	autoSeed := true
	if params.Config != nil && params.Config.DynamicConfig != nil {
		if params.Config.DynamicConfig.DefaultKey != "" {
			defaultKey = params.Config.DynamicConfig.DefaultKey
		}
		autoSeed = params.Config.DynamicConfig.SeedsOnRead()
	}

	return &configService{
		txManager:  params.TxManager,
		cache:      params.Cache,
		events:     newEventEmitter(params.Publisher, params.Logger),
		defaultKey: defaultKey,
		autoSeed:   autoSeed,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *configService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *configService) resolveKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return srv.defaultKey
	}

	return key
}

// GetConfig returns the active config, creating the default catalog on first read.
func (srv *configService) GetConfig(ctx context.Context, key string) (*entity.DynamicConfig, error) {
	key = srv.resolveKey(key)

	var (
		cfg     *entity.DynamicConfig
		created bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		cfg, created, err = srv.loadOrSeed(ctx, repoFactory, key)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to get config")
	}

	if created {
		srv.log(ctx).Info("Seeded default config", slog.String("key", key))
		srv.invalidate(ctx, key)
		srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventConfigSeeded, key, targetConfig, key))
	}

	return cfg, nil
}

// loadOrSeed reads the config and, when missing and auto seeding is on,
// inserts the default catalog. A concurrent insert of the same key leaves
// created false and the re-read returns the winner's config.
func (srv *configService) loadOrSeed(ctx context.Context, repoFactory repository.RepositoryFactory, key string) (*entity.DynamicConfig, bool, error) {
	configRepo := repoFactory.ConfigRepo()

	cfg, err := configRepo.FindByKey(ctx, key)
	if err == nil {
		return cfg, false, nil
	}
	if !errors.Is(err, repository.ErrConfigNotFound) {
		return nil, false, errors.Wrap(err, "failed to find config")
	}
	if !srv.autoSeed {
		return nil, false, domainerrors.ErrConfigNotFound.WithDetails(fmt.Sprintf("config %q has not been seeded", key))
	}

	created, err := configRepo.CreateIfAbsent(ctx, entity.DefaultConfig(key))
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to seed config")
	}

	cfg, err = configRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to reload seeded config")
	}

	return cfg, created, nil
}

// mutate runs fn against the (auto-created) config inside one transaction and
// drops the cached public projection once the transaction commits.
func (srv *configService) mutate(ctx context.Context, key string, fn func(repoFactory repository.RepositoryFactory, cfg *entity.DynamicConfig) error) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cfg, _, err := srv.loadOrSeed(ctx, repoFactory, key)
		if err != nil {
			return err
		}

		return fn(repoFactory, cfg)
	})
	if err != nil {
		return err
	}

	srv.invalidate(ctx, key)

	return nil
}

func (srv *configService) invalidate(ctx context.Context, key string) {
	if srv.cache == nil {
		return
	}
	if err := srv.cache.Invalidate(ctx, key); err != nil {
		srv.log(ctx).Error("Failed to invalidate public config cache", slog.String("key", key), slog.Any("error", err))
	}
}

// UpdateConfig applies a shallow partial update to an existing config.
func (srv *configService) UpdateConfig(ctx context.Context, key string, input *usecase.UpdateConfigInput) (*entity.DynamicConfig, error) {
	key = srv.resolveKey(key)
	srv.log(ctx).Info("Updating config", slog.String("key", key))

	if err := prepareConfigInput(input); err != nil {
		return nil, translateError(err, "invalid config update")
	}

	var updated *entity.DynamicConfig
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		configRepo := repoFactory.ConfigRepo()

		cfg, err := configRepo.FindByKey(ctx, key)
		if err != nil {
			return err
		}
		if input.Version != nil && *input.Version != cfg.Version {
			return repository.ErrVersionConflict
		}

		if input.Settings != nil {
			cfg.Settings = *input.Settings
		}
		if input.GeneralSettings != nil {
			cfg.GeneralSettings = input.GeneralSettings
		}
		if input.BrandingSettings != nil {
			cfg.BrandingSettings = input.BrandingSettings
		}
		if err := configRepo.UpdateSettings(ctx, cfg, cfg.Version); err != nil {
			return err
		}

		for _, kind := range entity.TaxonomyKinds {
			items := input.Collection(kind)
			if items == nil {
				continue
			}
			if err := repoFactory.TaxonomyRepo().ReplaceKind(ctx, key, kind, items); err != nil {
				return err
			}
		}
		if input.ProfileSections != nil {
			if err := repoFactory.SectionRepo().ReplaceAll(ctx, key, input.ProfileSections); err != nil {
				return err
			}
		}
		if input.ProfileTemplates != nil {
			if err := repoFactory.TemplateRepo().ReplaceAll(ctx, key, input.ProfileTemplates); err != nil {
				return err
			}
		}

		updated, err = configRepo.FindByKey(ctx, key)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to update config")
	}

	srv.invalidate(ctx, key)
	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventConfigUpdated, key, targetConfig, key))

	return updated, nil
}

// prepareConfigInput normalizes and validates every collection present in the input.
func prepareConfigInput(input *usecase.UpdateConfigInput) error {
	for _, kind := range entity.TaxonomyKinds {
		if err := prepareTaxonomy(kind, input.Collection(kind)); err != nil {
			return err
		}
	}
	for i := range input.ProfileSections {
		input.ProfileSections[i].Normalize()
	}
	if err := ValidateSectionList(input.ProfileSections); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(input.ProfileTemplates))
	for i := range input.ProfileTemplates {
		t := &input.ProfileTemplates[i]
		t.Normalize()
		if err := validateTemplate(t); err != nil {
			return err
		}
		if _, dup := seen[t.ID]; dup {
			return errors.Wrapf(entity.ErrDuplicateID, "template %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	return nil
}

func prepareTaxonomy(kind entity.TaxonomyKind, items []entity.TaxonomyItem) error {
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		items[i].Kind = kind
		items[i].Normalize()
		if err := items[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[items[i].Code]; dup {
			return errors.Wrapf(entity.ErrDuplicateID, "%s %q", kind, items[i].Code)
		}
		seen[items[i].Code] = struct{}{}
	}

	return nil
}

// ValidateSectionList checks each section, section id uniqueness and that
// every field pattern compiles.
func ValidateSectionList(sections []entity.ProfileSection) error {
	if err := entity.ValidateSections(sections); err != nil {
		return err
	}
	if _, err := form.Build(sections); err != nil {
		return err
	}

	return nil
}

func validateTemplate(t *entity.ProfileTemplate) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := form.Build(t.Sections); err != nil {
		return errors.Wrapf(err, "template %q", t.ID)
	}

	return nil
}

// SeedConfig stores the default catalog under key unless one exists.
func (srv *configService) SeedConfig(ctx context.Context, key string) (bool, error) {
	key = srv.resolveKey(key)

	var created bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		created, err = repoFactory.ConfigRepo().CreateIfAbsent(ctx, entity.DefaultConfig(key))

		return err
	})
	if err != nil {
		return false, translateError(err, "failed to seed config")
	}

	if created {
		srv.invalidate(ctx, key)
		srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventConfigSeeded, key, targetConfig, key))
	}

	return created, nil
}

// ImportConfig creates the config or replaces every collection of an existing one.
func (srv *configService) ImportConfig(ctx context.Context, cfg *entity.DynamicConfig) (*entity.DynamicConfig, error) {
	cfg.Key = srv.resolveKey(cfg.Key)
	cfg.Active = true

	input := &usecase.UpdateConfigInput{
		EducationLevels:  nonNilTaxonomy(cfg.EducationLevels),
		Subjects:         nonNilTaxonomy(cfg.Subjects),
		Grades:           nonNilTaxonomy(cfg.Grades),
		Cities:           nonNilTaxonomy(cfg.Cities),
		Districts:        nonNilTaxonomy(cfg.Districts),
		Provinces:        nonNilTaxonomy(cfg.Provinces),
		ProfileSections:  nonNil(cfg.ProfileSections),
		ProfileTemplates: nonNil(cfg.ProfileTemplates),
		Settings:         &cfg.Settings,
		GeneralSettings:  nonNilMap(cfg.GeneralSettings),
		BrandingSettings: nonNilMap(cfg.BrandingSettings),
	}
	if err := prepareConfigInput(input); err != nil {
		return nil, translateError(err, "invalid config bundle")
	}

	var created bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		created, err = repoFactory.ConfigRepo().CreateIfAbsent(ctx, cfg)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to import config")
	}

	if created {
		srv.invalidate(ctx, cfg.Key)
		srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventConfigSeeded, cfg.Key, targetConfig, cfg.Key))

		return srv.GetConfig(ctx, cfg.Key)
	}

	// An existing config is replaced through the regular update path.
	return srv.UpdateConfig(ctx, cfg.Key, input)
}

// ListConfigKeys returns every stored key.
func (srv *configService) ListConfigKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		keys, err = repoFactory.ConfigRepo().ListKeys(ctx)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to list config keys")
	}

	return keys, nil
}

// AddTaxonomyItem appends a taxonomy item after checking the configured caps.
func (srv *configService) AddTaxonomyItem(ctx context.Context, key string, kind entity.TaxonomyKind, item *entity.TaxonomyItem) (*entity.TaxonomyItem, error) {
	key = srv.resolveKey(key)
	if !kind.IsValid() {
		return nil, domainerrors.ErrInvalidEnum.WithDetails(fmt.Sprintf("unknown taxonomy kind %q", kind))
	}

	item.Kind = kind
	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, translateError(err, "invalid taxonomy item")
	}

	err := srv.mutate(ctx, key, func(repoFactory repository.RepositoryFactory, cfg *entity.DynamicConfig) error {
		if _, exists := cfg.TaxonomyItem(kind, item.Code); exists {
			return domainerrors.ErrDuplicateKey.WithDetails(fmt.Sprintf("%s %q already exists", kind, item.Code))
		}
		if err := checkTaxonomyCaps(cfg, item); err != nil {
			return err
		}

		return repoFactory.TaxonomyRepo().Create(ctx, key, item)
	})
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to add %s %q", kind, item.Code))
	}

	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventTaxonomyAdded, key, string(kind), item.Code))

	return item, nil
}

func checkTaxonomyCaps(cfg *entity.DynamicConfig, item *entity.TaxonomyItem) error {
	settings := cfg.Settings

	switch item.Kind {
	case entity.TaxonomyEducationLevel:
		if settings.MaxEducationLevels > 0 && len(cfg.EducationLevels) >= settings.MaxEducationLevels {
			return domainerrors.ErrLimitExceeded.WithDetails(
				fmt.Sprintf("at most %d education levels are allowed", settings.MaxEducationLevels))
		}
	case entity.TaxonomySubject:
		if settings.MaxSubjectsPerLevel <= 0 {
			return nil
		}
		for _, level := range item.StringList(entity.AttrEducationLevels) {
			if cfg.SubjectsForLevel(level) >= settings.MaxSubjectsPerLevel {
				return domainerrors.ErrLimitExceeded.WithDetails(
					fmt.Sprintf("education level %q already has %d subjects", level, settings.MaxSubjectsPerLevel))
			}
		}
	}

	return nil
}

// UpdateTaxonomyItem merges the input into a stored item.
func (srv *configService) UpdateTaxonomyItem(ctx context.Context, key string, kind entity.TaxonomyKind, code string, input *usecase.UpdateTaxonomyItemInput) (*entity.TaxonomyItem, error) {
	key = srv.resolveKey(key)
	if !kind.IsValid() {
		return nil, domainerrors.ErrInvalidEnum.WithDetails(fmt.Sprintf("unknown taxonomy kind %q", kind))
	}

	var item *entity.TaxonomyItem
	err := srv.mutate(ctx, key, func(repoFactory repository.RepositoryFactory, _ *entity.DynamicConfig) error {
		taxonomyRepo := repoFactory.TaxonomyRepo()

		existing, err := taxonomyRepo.FindByCode(ctx, key, kind, code)
		if err != nil {
			return err
		}
		expected := existing.Version
		if input.Version != nil && *input.Version != expected {
			return repository.ErrVersionConflict
		}

		if input.Name != nil {
			existing.Name = *input.Name
		}
		if input.Description != nil {
			existing.Description = *input.Description
		}
		if input.Active != nil {
			existing.Active = *input.Active
		}
		if input.Order != nil {
			existing.Order = *input.Order
		}
		if input.Attributes != nil {
			if existing.Attributes == nil {
				existing.Attributes = map[string]any{}
			}
			maps.Copy(existing.Attributes, input.Attributes)
		}
		existing.Normalize()
		if err := existing.Validate(); err != nil {
			return err
		}

		if err := taxonomyRepo.Update(ctx, key, existing, expected); err != nil {
			return err
		}
		item = existing

		return nil
	})
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to update %s %q", kind, code))
	}

	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventTaxonomyUpdated, key, string(kind), code))

	return item, nil
}

// RemoveTaxonomyItem deletes an item; removing an absent item succeeds.
func (srv *configService) RemoveTaxonomyItem(ctx context.Context, key string, kind entity.TaxonomyKind, code string) error {
	key = srv.resolveKey(key)
	if !kind.IsValid() {
		return domainerrors.ErrInvalidEnum.WithDetails(fmt.Sprintf("unknown taxonomy kind %q", kind))
	}

	err := srv.mutate(ctx, key, func(repoFactory repository.RepositoryFactory, _ *entity.DynamicConfig) error {
		return repoFactory.TaxonomyRepo().Delete(ctx, key, kind, code)
	})
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to remove %s %q", kind, code))
	}

	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventTaxonomyRemoved, key, string(kind), code))

	return nil
}

// AddProfileSection appends a section after checking the custom section rules.
func (srv *configService) AddProfileSection(ctx context.Context, key string, section *entity.ProfileSection) (*entity.ProfileSection, error) {
	key = srv.resolveKey(key)

	section.Normalize()
	if err := ValidateSectionList([]entity.ProfileSection{*section}); err != nil {
		return nil, translateError(err, "invalid profile section")
	}

	err := srv.mutate(ctx, key, func(repoFactory repository.RepositoryFactory, cfg *entity.DynamicConfig) error {
		if _, exists := cfg.Section(section.ID); exists {
			return domainerrors.ErrDuplicateKey.WithDetails(fmt.Sprintf("section %q already exists", section.ID))
		}
		if err := checkSectionCaps(cfg.Settings, section); err != nil {
			return err
		}

		return repoFactory.SectionRepo().Create(ctx, key, section)
	})
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to add section %q", section.ID))
	}

	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventSectionAdded, key, targetSection, section.ID))

	return section, nil
}

func checkSectionCaps(settings entity.ConfigSettings, section *entity.ProfileSection) error {
	if section.Type != entity.SectionTypeCustom {
		return nil
	}
	if !settings.AllowCustomSections {
		return domainerrors.ErrValidationFailed.WithDetails("custom sections are disabled")
	}
	if settings.MaxCustomFields > 0 && len(section.Fields) > settings.MaxCustomFields {
		return domainerrors.ErrLimitExceeded.WithDetails(
			fmt.Sprintf("custom sections may have at most %d fields", settings.MaxCustomFields))
	}

	return nil
}

// UpdateProfileSection merges the input into a stored section.
func (srv *configService) UpdateProfileSection(ctx context.Context, key, id string, input *usecase.UpdateProfileSectionInput) (*entity.ProfileSection, error) {
	key = srv.resolveKey(key)

	var section *entity.ProfileSection
	err := srv.mutate(ctx, key, func(repoFactory repository.RepositoryFactory, cfg *entity.DynamicConfig) error {
		sectionRepo := repoFactory.SectionRepo()

		existing, err := sectionRepo.FindByID(ctx, key, id)
		if err != nil {
			return err
		}
		expected := existing.Version
		if input.Version != nil && *input.Version != expected {
			return repository.ErrVersionConflict
		}

		applySectionInput(existing, input)
		existing.Normalize()
		if err := ValidateSectionList([]entity.ProfileSection{*existing}); err != nil {
			return err
		}
		if err := checkSectionCaps(cfg.Settings, existing); err != nil {
			return err
		}

		if err := sectionRepo.Update(ctx, key, existing, expected); err != nil {
			return err
		}
		section = existing

		return nil
	})
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to update section %q", id))
	}

	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventSectionUpdated, key, targetSection, id))

	return section, nil
}

func applySectionInput(s *entity.ProfileSection, input *usecase.UpdateProfileSectionInput) {
	if input.Type != nil {
		s.Type = *input.Type
	}
	if input.Title != nil {
		s.Title = *input.Title
	}
	if input.Description != nil {
		s.Description = *input.Description
	}
	if input.Visible != nil {
		s.Visible = *input.Visible
	}
	if input.Order != nil {
		s.Order = *input.Order
	}
	if input.Required != nil {
		s.Required = *input.Required
	}
	if input.Size != nil {
		s.Size = *input.Size
	}
	if input.Fields != nil {
		s.Fields = input.Fields
	}
	if input.Config != nil {
		s.Config = input.Config
	}
}

// RemoveProfileSection deletes a section; removing an absent section succeeds.
func (srv *configService) RemoveProfileSection(ctx context.Context, key, id string) error {
	key = srv.resolveKey(key)

	err := srv.mutate(ctx, key, func(repoFactory repository.RepositoryFactory, _ *entity.DynamicConfig) error {
		return repoFactory.SectionRepo().Delete(ctx, key, id)
	})
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to remove section %q", id))
	}

	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventSectionRemoved, key, targetSection, id))

	return nil
}

// ReorderProfileSections sets the order of each listed section and stores
// the list sorted by (order, previous position).
func (srv *configService) ReorderProfileSections(ctx context.Context, key string, orders []entity.SectionOrder) ([]entity.ProfileSection, error) {
	key = srv.resolveKey(key)

	byID := make(map[string]int, len(orders))
	for _, o := range orders {
		byID[o.ID] = o.Order
	}

	var sections []entity.ProfileSection
	err := srv.mutate(ctx, key, func(repoFactory repository.RepositoryFactory, cfg *entity.DynamicConfig) error {
		sections = slices.Clone(cfg.ProfileSections)
		for i := range sections {
			if order, ok := byID[sections[i].ID]; ok {
				sections[i].Order = order
			}
		}
		entity.SortSections(sections)

		return repoFactory.SectionRepo().SavePositions(ctx, key, sections)
	})
	if err != nil {
		return nil, translateError(err, "failed to reorder sections")
	}

	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventSectionsReordered, key, targetSection, ""))

	return sections, nil
}

// AddProfileTemplate appends a template. A default template clears the flag on the others.
func (srv *configService) AddProfileTemplate(ctx context.Context, key string, template *entity.ProfileTemplate) (*entity.ProfileTemplate, error) {
	key = srv.resolveKey(key)

	template.Normalize()
	if err := validateTemplate(template); err != nil {
		return nil, translateError(err, "invalid profile template")
	}

	err := srv.mutate(ctx, key, func(repoFactory repository.RepositoryFactory, cfg *entity.DynamicConfig) error {
		if _, exists := cfg.Template(template.ID); exists {
			return domainerrors.ErrDuplicateKey.WithDetails(fmt.Sprintf("template %q already exists", template.ID))
		}
		if err := repoFactory.TemplateRepo().Create(ctx, key, template); err != nil {
			return err
		}

		return srv.clearOtherDefaults(ctx, repoFactory, key, cfg, template)
	})
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to add template %q", template.ID))
	}

	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventTemplateAdded, key, targetTemplate, template.ID))

	return template, nil
}

// clearOtherDefaults keeps at most one default template per config.
func (srv *configService) clearOtherDefaults(ctx context.Context, repoFactory repository.RepositoryFactory, key string, cfg *entity.DynamicConfig, template *entity.ProfileTemplate) error {
	if !template.IsDefault {
		return nil
	}

	templateRepo := repoFactory.TemplateRepo()
	for i := range cfg.ProfileTemplates {
		other := cfg.ProfileTemplates[i]
		if other.ID == template.ID || !other.IsDefault {
			continue
		}
		other.IsDefault = false
		if err := templateRepo.Update(ctx, key, &other, other.Version); err != nil {
			return err
		}
	}

	return nil
}

// UpdateProfileTemplate merges the input into a stored template.
func (srv *configService) UpdateProfileTemplate(ctx context.Context, key, id string, input *usecase.UpdateProfileTemplateInput) (*entity.ProfileTemplate, error) {
	key = srv.resolveKey(key)

	var template *entity.ProfileTemplate
	err := srv.mutate(ctx, key, func(repoFactory repository.RepositoryFactory, cfg *entity.DynamicConfig) error {
		templateRepo := repoFactory.TemplateRepo()

		existing, err := templateRepo.FindByID(ctx, key, id)
		if err != nil {
			return err
		}
		expected := existing.Version
		if input.Version != nil && *input.Version != expected {
			return repository.ErrVersionConflict
		}

		if input.Name != nil {
			existing.Name = *input.Name
		}
		if input.Description != nil {
			existing.Description = *input.Description
		}
		if input.Tags != nil {
			existing.Tags = input.Tags
		}
		if input.Active != nil {
			existing.Active = *input.Active
		}
		if input.Order != nil {
			existing.Order = *input.Order
		}
		if input.Sections != nil {
			existing.Sections = input.Sections
		}
		if input.IsDefault != nil {
			existing.IsDefault = *input.IsDefault
		}
		existing.Normalize()
		if err := validateTemplate(existing); err != nil {
			return err
		}

		if err := templateRepo.Update(ctx, key, existing, expected); err != nil {
			return err
		}
		template = existing

		return srv.clearOtherDefaults(ctx, repoFactory, key, cfg, existing)
	})
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to update template %q", id))
	}

	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventTemplateUpdated, key, targetTemplate, id))

	return template, nil
}

// RemoveProfileTemplate deletes a template; removing an absent template succeeds.
// Layouts already copied from the template are not affected.
func (srv *configService) RemoveProfileTemplate(ctx context.Context, key, id string) error {
	key = srv.resolveKey(key)

	err := srv.mutate(ctx, key, func(repoFactory repository.RepositoryFactory, _ *entity.DynamicConfig) error {
		return repoFactory.TemplateRepo().Delete(ctx, key, id)
	})
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to remove template %q", id))
	}

	srv.events.emit(ctx, srv.events.newEvent(ctx, entity.EventTemplateRemoved, key, targetTemplate, id))

	return nil
}

// GetProfileTemplate returns one template of the config.
func (srv *configService) GetProfileTemplate(ctx context.Context, key, id string) (*entity.ProfileTemplate, error) {
	cfg, err := srv.GetConfig(ctx, key)
	if err != nil {
		return nil, err
	}

	template, ok := cfg.Template(id)
	if !ok {
		return nil, domainerrors.ErrTemplateNotFound.WithDetails(fmt.Sprintf("template %q not found", id))
	}

	return &template, nil
}

// GetPublicConfig serves the public projection through the cache.
func (srv *configService) GetPublicConfig(ctx context.Context, key string) (*entity.PublicConfig, error) {
	key = srv.resolveKey(key)

	// The generation must be read before the store so a mutation that
	// commits while we load makes the write below a no-op.
	generation, cacheable := int64(0), false
	if srv.cache != nil {
		cached, found, err := srv.cache.Get(ctx, key)
		switch {
		case err != nil:
			srv.log(ctx).Warn("Public config cache read failed", slog.String("key", key), slog.Any("error", err))
		case found:
			return cached, nil
		default:
			generation, err = srv.cache.Generation(ctx, key)
			if err != nil {
				srv.log(ctx).Warn("Public config cache generation read failed", slog.String("key", key), slog.Any("error", err))
			} else {
				cacheable = true
			}
		}
	}

	cfg, err := srv.GetConfig(ctx, key)
	if err != nil {
		return nil, err
	}

	public := cfg.Public()
	if cacheable {
		stored, err := srv.cache.Set(ctx, key, generation, public)
		switch {
		case err != nil:
			srv.log(ctx).Warn("Public config cache write failed", slog.String("key", key), slog.Any("error", err))
		case !stored:
			srv.log(ctx).Debug("Public config changed during load, cache write skipped", slog.String("key", key))
		}
	}

	return public, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func nonNilTaxonomy(items []entity.TaxonomyItem) []entity.TaxonomyItem {
	return nonNil(items)
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	return m
}
