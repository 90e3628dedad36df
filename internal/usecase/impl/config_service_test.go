package impl

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tuition/config"
	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	"tuition/internal/domain/service"
	mockSvc "tuition/internal/mocks/service"
	"tuition/internal/errors"
	"tuition/internal/usecase"
)

type configServiceFixtures struct {
	service usecase.ConfigUsecase
	repos   *repoMocks
	cache   *mockSvc.MockPublicConfigCache
	events  *eventRecorder
}

func createTestConfigService(t *testing.T, autoSeed bool) configServiceFixtures {
	cache := mockSvc.NewMockPublicConfigCache(t)
	fx := createTestConfigServiceWithCache(t, autoSeed, cache)
	fx.cache = cache

	return fx
}

func createTestConfigServiceWithCache(t *testing.T, autoSeed bool, cache service.PublicConfigCache) configServiceFixtures {
	repos := newRepoMocks(t)
	publisher, events := newEventRecorder(t)

	svc := NewConfigService(ConfigServiceParams{
		TxManager: newTxManager(t, repos),
		Cache:     cache,
		Publisher: publisher,
		Config: &config.Config{
			DynamicConfig: &config.DynamicConfigConfig{DefaultKey: "default", AutoSeed: &autoSeed},
		},
		Logger: newTestLogger(),
	})

	return configServiceFixtures{
		service: svc,
		repos:   repos,
		events:  events,
	}
}

func TestConfigService_GetConfig_SeedsDefaultOnFirstRead(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	seeded := testConfig()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(nil, repository.ErrConfigNotFound).Once()
	fx.repos.config.EXPECT().
		CreateIfAbsent(ctx, mock.MatchedBy(func(cfg *entity.DynamicConfig) bool {
			return cfg.Key == "default" && len(cfg.EducationLevels) == 3 && len(cfg.Grades) == 13
		})).
		Return(true, nil).
		Once()
	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(seeded, nil).Once()
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil).Once()

	cfg, err := fx.service.GetConfig(ctx, "")

	require.NoError(t, err)
	assert.Same(t, seeded, cfg)
	assert.Equal(t, []entity.EventType{entity.EventConfigSeeded}, fx.events.types())
}

func TestConfigService_GetConfig_ConcurrentSeedReadsExistingConfig(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	winner := testConfig()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(nil, repository.ErrConfigNotFound).Once()
	fx.repos.config.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(false, nil).Once()
	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(winner, nil).Once()

	cfg, err := fx.service.GetConfig(ctx, "default")

	require.NoError(t, err)
	assert.Same(t, winner, cfg)
	assert.Empty(t, fx.events.types())
}

func TestConfigService_GetConfig_AutoSeedDisabled(t *testing.T) {
	fx := createTestConfigService(t, false)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(nil, repository.ErrConfigNotFound).Once()

	cfg, err := fx.service.GetConfig(ctx, "")

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, domainerrors.ErrConfigNotFound)
}

func TestConfigService_GetConfig_RepositoryFailure(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(nil, errors.New("connection reset")).Once()

	_, err := fx.service.GetConfig(ctx, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestConfigService_UpdateConfig_NotFound(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(nil, repository.ErrConfigNotFound).Once()

	_, err := fx.service.UpdateConfig(ctx, "", &usecase.UpdateConfigInput{
		GeneralSettings: map[string]any{"siteName": "Tutors"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrConfigNotFound)
}

func TestConfigService_UpdateConfig_DuplicateCodeInCollection(t *testing.T) {
	fx := createTestConfigService(t, true)

	_, err := fx.service.UpdateConfig(context.Background(), "", &usecase.UpdateConfigInput{
		Subjects: []entity.TaxonomyItem{
			{Code: "MATH", Name: "Mathematics"},
			{Code: "MATH", Name: "Maths"},
		},
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
}

func TestConfigService_UpdateConfig_StaleVersion(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	stored.Version = 4

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()

	_, err := fx.service.UpdateConfig(ctx, "", &usecase.UpdateConfigInput{Version: int64Ptr(3)})

	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
}

func TestConfigService_UpdateConfig_ReplacesProvidedCollections(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	updated := testConfig()
	updated.Version = 2

	settings := entity.DefaultSettings()
	settings.MaxCustomFields = 5

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()
	fx.repos.config.EXPECT().
		UpdateSettings(ctx, mock.MatchedBy(func(cfg *entity.DynamicConfig) bool {
			return cfg.Settings.MaxCustomFields == 5
		}), int64(1)).
		Return(nil).
		Once()
	fx.repos.taxonomy.EXPECT().
		ReplaceKind(ctx, "default", entity.TaxonomySubject, mock.MatchedBy(func(items []entity.TaxonomyItem) bool {
			return len(items) == 1 && items[0].Code == "PHYSICS" && items[0].Kind == entity.TaxonomySubject
		})).
		Return(nil).
		Once()
	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(updated, nil).Once()
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil).Once()

	cfg, err := fx.service.UpdateConfig(ctx, "", &usecase.UpdateConfigInput{
		Subjects: []entity.TaxonomyItem{{Code: " PHYSICS ", Name: "Physics", Active: true}},
		Settings: &settings,
	})

	require.NoError(t, err)
	assert.Same(t, updated, cfg)
	assert.Equal(t, []entity.EventType{entity.EventConfigUpdated}, fx.events.types())
}

func TestConfigService_AddTaxonomyItem_DuplicateCode(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()

	_, err := fx.service.AddTaxonomyItem(ctx, "", entity.TaxonomySubject, &entity.TaxonomyItem{
		Code: "MATH",
		Name: "Mathematics",
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
	assert.Empty(t, fx.events.types())
}

func TestConfigService_AddTaxonomyItem_EducationLevelCap(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	stored.Settings.MaxEducationLevels = 3

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()

	_, err := fx.service.AddTaxonomyItem(ctx, "", entity.TaxonomyEducationLevel, &entity.TaxonomyItem{
		Code: "UNI",
		Name: "University",
	})

	assert.ErrorIs(t, err, domainerrors.ErrLimitExceeded)
}

func TestConfigService_AddTaxonomyItem_SubjectsPerLevelCap(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	stored.Settings.MaxSubjectsPerLevel = 2

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()

	_, err := fx.service.AddTaxonomyItem(ctx, "", entity.TaxonomySubject, &entity.TaxonomyItem{
		Code:       "PHYSICS",
		Name:       "Physics",
		Attributes: map[string]any{entity.AttrEducationLevels: []any{"AL"}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrLimitExceeded)
}

func TestConfigService_AddTaxonomyItem_Success(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.taxonomy.EXPECT().
		Create(ctx, "default", mock.MatchedBy(func(item *entity.TaxonomyItem) bool {
			return item.Code == "PHYSICS" && item.Kind == entity.TaxonomySubject
		})).
		Return(nil).
		Once()
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil).Once()

	item, err := fx.service.AddTaxonomyItem(ctx, "", entity.TaxonomySubject, &entity.TaxonomyItem{
		Code:       " PHYSICS ",
		Name:       "Physics",
		Active:     true,
		Attributes: map[string]any{entity.AttrEducationLevels: []any{"AL"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "PHYSICS", item.Code)
	event := fx.events.last()
	require.NotNil(t, event)
	assert.Equal(t, entity.EventTaxonomyAdded, event.Type)
	assert.Equal(t, string(entity.TaxonomySubject), event.TargetType)
	assert.Equal(t, "PHYSICS", event.TargetID)
}

func TestConfigService_AddTaxonomyItem_UnknownKind(t *testing.T) {
	fx := createTestConfigService(t, true)

	_, err := fx.service.AddTaxonomyItem(context.Background(), "", entity.TaxonomyKind("planet"), &entity.TaxonomyItem{
		Code: "MARS",
		Name: "Mars",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidEnum)
}

func TestConfigService_RemoveTaxonomyItem_AbsentCodeSucceeds(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.taxonomy.EXPECT().Delete(ctx, "default", entity.TaxonomySubject, "NONEXISTENT").Return(nil).Once()
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil).Once()

	err := fx.service.RemoveTaxonomyItem(ctx, "", entity.TaxonomySubject, "NONEXISTENT")

	require.NoError(t, err)
}

func TestConfigService_UpdateTaxonomyItem_NotFound(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.taxonomy.EXPECT().
		FindByCode(ctx, "default", entity.TaxonomyGrade, "G99").
		Return(nil, repository.ErrTaxonomyItemNotFound).
		Once()

	_, err := fx.service.UpdateTaxonomyItem(ctx, "", entity.TaxonomyGrade, "G99", &usecase.UpdateTaxonomyItemInput{
		Name: strPtr("Grade 99"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrTaxonomyItemNotFound)
}

func TestConfigService_UpdateTaxonomyItem_StaleVersion(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.taxonomy.EXPECT().
		FindByCode(ctx, "default", entity.TaxonomySubject, "MATH").
		Return(&entity.TaxonomyItem{Kind: entity.TaxonomySubject, Code: "MATH", Name: "Mathematics", Version: 3}, nil).
		Once()

	_, err := fx.service.UpdateTaxonomyItem(ctx, "", entity.TaxonomySubject, "MATH", &usecase.UpdateTaxonomyItemInput{
		Name:    strPtr("Maths"),
		Version: int64Ptr(2),
	})

	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
}

func TestConfigService_UpdateTaxonomyItem_MergesAttributes(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.taxonomy.EXPECT().
		FindByCode(ctx, "default", entity.TaxonomySubject, "MATH").
		Return(&entity.TaxonomyItem{
			Kind:    entity.TaxonomySubject,
			Code:    "MATH",
			Name:    "Mathematics",
			Active:  true,
			Version: 1,
			Attributes: map[string]any{
				entity.AttrEducationLevels: []any{"OL", "AL"},
				entity.AttrCategory:        "core",
			},
		}, nil).
		Once()
	fx.repos.taxonomy.EXPECT().
		Update(ctx, "default", mock.MatchedBy(func(item *entity.TaxonomyItem) bool {
			return item.Name == "Maths" &&
				item.Attributes[entity.AttrCategory] == "stem" &&
				len(item.StringList(entity.AttrEducationLevels)) == 2
		}), int64(1)).
		Return(nil).
		Once()
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil).Once()

	item, err := fx.service.UpdateTaxonomyItem(ctx, "", entity.TaxonomySubject, "MATH", &usecase.UpdateTaxonomyItemInput{
		Name:       strPtr("Maths"),
		Attributes: map[string]any{entity.AttrCategory: "stem"},
	})

	require.NoError(t, err)
	assert.True(t, item.Active)
	assert.Equal(t, []entity.EventType{entity.EventTaxonomyUpdated}, fx.events.types())
}

func customSection(fields ...string) *entity.ProfileSection {
	section := &entity.ProfileSection{
		ID:      "hobbies",
		Type:    entity.SectionTypeCustom,
		Title:   "Hobbies",
		Visible: true,
	}
	for i, id := range fields {
		section.Fields = append(section.Fields, entity.FieldDescriptor{
			ID:      id,
			Type:    entity.FieldTypeText,
			Label:   id,
			Visible: true,
			Order:   i,
		})
	}

	return section
}

func TestConfigService_AddProfileSection_CustomSectionsDisabled(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	stored.Settings.AllowCustomSections = false

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()

	_, err := fx.service.AddProfileSection(ctx, "", customSection("sport"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestConfigService_AddProfileSection_TooManyCustomFields(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	stored.Settings.MaxCustomFields = 1

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()

	_, err := fx.service.AddProfileSection(ctx, "", customSection("sport", "music"))

	assert.ErrorIs(t, err, domainerrors.ErrLimitExceeded)
}

func TestConfigService_AddProfileSection_RejectsInvalidDescriptors(t *testing.T) {
	tests := []struct {
		name    string
		section *entity.ProfileSection
		wantErr error
	}{
		{
			name:    "duplicate field id",
			section: customSection("sport", "sport"),
			wantErr: domainerrors.ErrDuplicateKey,
		},
		{
			name: "unknown field type",
			section: &entity.ProfileSection{
				ID:    "basic",
				Type:  entity.SectionTypeBasic,
				Title: "Basic",
				Fields: []entity.FieldDescriptor{
					{ID: "name", Type: entity.FieldType("hologram"), Label: "Name"},
				},
			},
			wantErr: domainerrors.ErrInvalidEnum,
		},
		{
			name: "pattern does not compile",
			section: &entity.ProfileSection{
				ID:      "basic",
				Type:    entity.SectionTypeBasic,
				Title:   "Basic",
				Visible: true,
				Fields: []entity.FieldDescriptor{
					{
						ID:         "code",
						Type:       entity.FieldTypeText,
						Label:      "Code",
						Visible:    true,
						Validation: &entity.FieldValidation{Pattern: "(["},
					},
				},
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConfigService(t, true)

			_, err := fx.service.AddProfileSection(context.Background(), "", tt.section)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigService_AddProfileSection_DuplicateSectionID(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	stored.ProfileSections = []entity.ProfileSection{*customSection("sport")}

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()

	_, err := fx.service.AddProfileSection(ctx, "", customSection("music"))

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
}

func sectionIDs(sections []entity.ProfileSection) []string {
	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}

	return ids
}

func TestConfigService_ReorderProfileSections_StableAndIdempotent(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	stored.ProfileSections = []entity.ProfileSection{
		{ID: "a", Type: entity.SectionTypeBasic, Title: "A", Visible: true, Order: 1},
		{ID: "b", Type: entity.SectionTypeEducation, Title: "B", Visible: true, Order: 2},
		{ID: "c", Type: entity.SectionTypeContact, Title: "C", Visible: true, Order: 3},
	}

	fx.repos.config.EXPECT().
		FindByKey(ctx, "default").
		RunAndReturn(func(context.Context, string) (*entity.DynamicConfig, error) {
			snapshot := *stored
			snapshot.ProfileSections = slices.Clone(stored.ProfileSections)

			return &snapshot, nil
		})
	fx.repos.section.EXPECT().
		SavePositions(ctx, "default", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, sections []entity.ProfileSection) error {
			stored.ProfileSections = slices.Clone(sections)

			return nil
		})
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil)

	orders := []entity.SectionOrder{
		{ID: "c", Order: 0},
		{ID: "a", Order: 2},
		{ID: "unknown", Order: -5},
	}

	first, err := fx.service.ReorderProfileSections(ctx, "", orders)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, sectionIDs(first))

	second, err := fx.service.ReorderProfileSections(ctx, "", orders)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConfigService_AddProfileTemplate_ClearsPreviousDefault(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	stored.ProfileTemplates = []entity.ProfileTemplate{
		{ID: "classic", Name: "Classic", Active: true, IsDefault: true, Version: 4},
	}

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()
	fx.repos.template.EXPECT().
		Create(ctx, "default", mock.MatchedBy(func(tpl *entity.ProfileTemplate) bool {
			return tpl.ID == "modern" && tpl.IsDefault
		})).
		Return(nil).
		Once()
	fx.repos.template.EXPECT().
		Update(ctx, "default", mock.MatchedBy(func(tpl *entity.ProfileTemplate) bool {
			return tpl.ID == "classic" && !tpl.IsDefault
		}), int64(4)).
		Return(nil).
		Once()
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil).Once()

	tpl, err := fx.service.AddProfileTemplate(ctx, "", &entity.ProfileTemplate{
		ID:        "modern",
		Name:      "Modern",
		Active:    true,
		IsDefault: true,
	})

	require.NoError(t, err)
	assert.NotNil(t, tpl.Tags)
	assert.NotNil(t, tpl.Sections)
}

func TestConfigService_UpdateProfileSection_NotFound(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.section.EXPECT().FindByID(ctx, "default", "ghost").Return(nil, repository.ErrSectionNotFound).Once()

	_, err := fx.service.UpdateProfileSection(ctx, "", "ghost", &usecase.UpdateProfileSectionInput{
		Title: strPtr("Ghost"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrSectionNotFound)
	assert.Empty(t, fx.events.types())
}

func TestConfigService_UpdateProfileSection_StaleVersion(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	existing := customSection("sport")
	existing.Version = 3

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.section.EXPECT().FindByID(ctx, "default", "hobbies").Return(existing, nil).Once()

	_, err := fx.service.UpdateProfileSection(ctx, "", "hobbies", &usecase.UpdateProfileSectionInput{
		Title:   strPtr("Pastimes"),
		Version: int64Ptr(2),
	})

	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
}

func TestConfigService_UpdateProfileSection_RechecksCaps(t *testing.T) {
	customType := entity.SectionTypeCustom

	tests := []struct {
		name     string
		settings func(*entity.ConfigSettings)
		existing *entity.ProfileSection
		input    *usecase.UpdateProfileSectionInput
		wantErr  error
	}{
		{
			name:     "fields beyond the custom field cap",
			settings: func(s *entity.ConfigSettings) { s.MaxCustomFields = 1 },
			existing: customSection("sport"),
			input: &usecase.UpdateProfileSectionInput{
				Fields: customSection("sport", "music").Fields,
			},
			wantErr: domainerrors.ErrLimitExceeded,
		},
		{
			name:     "switching to custom while custom sections are disabled",
			settings: func(s *entity.ConfigSettings) { s.AllowCustomSections = false },
			existing: &entity.ProfileSection{
				ID:      "hobbies",
				Type:    entity.SectionTypeBasic,
				Title:   "Hobbies",
				Visible: true,
				Version: 1,
			},
			input:   &usecase.UpdateProfileSectionInput{Type: &customType},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConfigService(t, true)
			ctx := context.Background()
			stored := testConfig()
			tt.settings(&stored.Settings)

			fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()
			fx.repos.section.EXPECT().FindByID(ctx, "default", "hobbies").Return(tt.existing, nil).Once()

			_, err := fx.service.UpdateProfileSection(ctx, "", "hobbies", tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigService_UpdateProfileSection_Success(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	existing := customSection("sport")
	existing.Version = 2

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.section.EXPECT().FindByID(ctx, "default", "hobbies").Return(existing, nil).Once()
	fx.repos.section.EXPECT().
		Update(ctx, "default", mock.MatchedBy(func(s *entity.ProfileSection) bool {
			return s.Title == "Pastimes" && len(s.Fields) == 1
		}), int64(2)).
		Return(nil).
		Once()
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil).Once()

	section, err := fx.service.UpdateProfileSection(ctx, "", "hobbies", &usecase.UpdateProfileSectionInput{
		Title:   strPtr("Pastimes"),
		Version: int64Ptr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, "Pastimes", section.Title)
	assert.Equal(t, []entity.EventType{entity.EventSectionUpdated}, fx.events.types())
}

func TestConfigService_RemoveProfileSection_AbsentIDSucceeds(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.section.EXPECT().Delete(ctx, "default", "ghost").Return(nil).Once()
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil).Once()

	err := fx.service.RemoveProfileSection(ctx, "", "ghost")

	require.NoError(t, err)
	assert.Equal(t, []entity.EventType{entity.EventSectionRemoved}, fx.events.types())
}

func TestConfigService_UpdateProfileTemplate_NotFound(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.template.EXPECT().FindByID(ctx, "default", "ghost").Return(nil, repository.ErrTemplateNotFound).Once()

	_, err := fx.service.UpdateProfileTemplate(ctx, "", "ghost", &usecase.UpdateProfileTemplateInput{
		Name: strPtr("Ghost"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestConfigService_UpdateProfileTemplate_StaleVersion(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.template.EXPECT().
		FindByID(ctx, "default", "modern").
		Return(&entity.ProfileTemplate{ID: "modern", Name: "Modern", Active: true, Version: 5}, nil).
		Once()

	_, err := fx.service.UpdateProfileTemplate(ctx, "", "modern", &usecase.UpdateProfileTemplateInput{
		Name:    strPtr("Modern II"),
		Version: int64Ptr(4),
	})

	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
}

func TestConfigService_UpdateProfileTemplate_ClearsPreviousDefault(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	stored.ProfileTemplates = []entity.ProfileTemplate{
		{ID: "classic", Name: "Classic", Active: true, IsDefault: true, Version: 4},
		{ID: "modern", Name: "Modern", Active: true, Version: 2},
	}

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()
	fx.repos.template.EXPECT().
		FindByID(ctx, "default", "modern").
		Return(&entity.ProfileTemplate{ID: "modern", Name: "Modern", Active: true, Version: 2}, nil).
		Once()
	fx.repos.template.EXPECT().
		Update(ctx, "default", mock.MatchedBy(func(tpl *entity.ProfileTemplate) bool {
			return tpl.ID == "modern" && tpl.IsDefault
		}), int64(2)).
		Return(nil).
		Once()
	fx.repos.template.EXPECT().
		Update(ctx, "default", mock.MatchedBy(func(tpl *entity.ProfileTemplate) bool {
			return tpl.ID == "classic" && !tpl.IsDefault
		}), int64(4)).
		Return(nil).
		Once()
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil).Once()

	tpl, err := fx.service.UpdateProfileTemplate(ctx, "", "modern", &usecase.UpdateProfileTemplateInput{
		IsDefault: boolPtr(true),
		Version:   int64Ptr(2),
	})

	require.NoError(t, err)
	assert.True(t, tpl.IsDefault)
	assert.Equal(t, []entity.EventType{entity.EventTemplateUpdated}, fx.events.types())
}

func TestConfigService_RemoveProfileTemplate_AbsentIDSucceeds(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.repos.template.EXPECT().Delete(ctx, "default", "ghost").Return(nil).Once()
	fx.cache.EXPECT().Invalidate(ctx, "default").Return(nil).Once()

	err := fx.service.RemoveProfileTemplate(ctx, "", "ghost")

	require.NoError(t, err)
	assert.Equal(t, []entity.EventType{entity.EventTemplateRemoved}, fx.events.types())
}

func TestConfigService_GetProfileTemplate_NotFound(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()

	_, err := fx.service.GetProfileTemplate(ctx, "", "missing")

	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestConfigService_GetPublicConfig_CacheHit(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	cached := &entity.PublicConfig{Key: "default"}

	fx.cache.EXPECT().Get(ctx, "default").Return(cached, true, nil).Once()

	public, err := fx.service.GetPublicConfig(ctx, "")

	require.NoError(t, err)
	assert.Same(t, cached, public)
}

func TestConfigService_GetPublicConfig_MissHidesInactiveItems(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()
	stored := testConfig()
	stored.Subjects[1].Active = false

	fx.cache.EXPECT().Get(ctx, "default").Return(nil, false, nil).Once()
	fx.cache.EXPECT().Generation(ctx, "default").Return(int64(3), nil).Once()
	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(stored, nil).Once()
	fx.cache.EXPECT().
		Set(ctx, "default", int64(3), mock.MatchedBy(func(p *entity.PublicConfig) bool {
			return len(p.Subjects) == 2
		})).
		Return(true, nil).
		Once()

	public, err := fx.service.GetPublicConfig(ctx, "")

	require.NoError(t, err)
	for _, s := range public.Subjects {
		assert.NotEqual(t, "SCIENCE", s.Code)
	}
}

func TestConfigService_GetPublicConfig_CacheFailureFallsBackToStore(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "default").Return(nil, false, errors.New("redis down")).Once()
	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()

	public, err := fx.service.GetPublicConfig(ctx, "")

	require.NoError(t, err)
	assert.Len(t, public.EducationLevels, 3)
}

func TestConfigService_GetPublicConfig_GenerationFailureSkipsWrite(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "default").Return(nil, false, nil).Once()
	fx.cache.EXPECT().Generation(ctx, "default").Return(int64(0), errors.New("redis down")).Once()
	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()

	public, err := fx.service.GetPublicConfig(ctx, "")

	require.NoError(t, err)
	assert.Len(t, public.Subjects, 3)
}

func TestConfigService_GetPublicConfig_RejectedWriteStillServes(t *testing.T) {
	fx := createTestConfigService(t, true)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "default").Return(nil, false, nil).Once()
	fx.cache.EXPECT().Generation(ctx, "default").Return(int64(1), nil).Once()
	fx.repos.config.EXPECT().FindByKey(ctx, "default").Return(testConfig(), nil).Once()
	fx.cache.EXPECT().Set(ctx, "default", int64(1), mock.Anything).Return(false, nil).Once()

	public, err := fx.service.GetPublicConfig(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, "default", public.Key)
}

// guardedMemoryCache keeps projections in process with the same generation
// guard as the Redis cache. beforeSet runs once, ahead of the first write.
type guardedMemoryCache struct {
	mu          sync.Mutex
	entries     map[string]*entity.PublicConfig
	generations map[string]int64
	beforeSet   func()
}

func newGuardedMemoryCache() *guardedMemoryCache {
	return &guardedMemoryCache{
		entries:     map[string]*entity.PublicConfig{},
		generations: map[string]int64{},
	}
}

func (c *guardedMemoryCache) Get(_ context.Context, key string) (*entity.PublicConfig, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg, ok := c.entries[key]

	return cfg, ok, nil
}

func (c *guardedMemoryCache) Generation(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generations[key], nil
}

func (c *guardedMemoryCache) Set(_ context.Context, key string, generation int64, cfg *entity.PublicConfig) (bool, error) {
	if hook := c.beforeSet; hook != nil {
		c.beforeSet = nil
		hook()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[key] != generation {
		return false, nil
	}
	c.entries[key] = cfg

	return true, nil
}

func (c *guardedMemoryCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[key]++
	delete(c.entries, key)

	return nil
}

func subjectCodes(public *entity.PublicConfig) []string {
	codes := make([]string, 0, len(public.Subjects))
	for _, s := range public.Subjects {
		codes = append(codes, s.Code)
	}

	return codes
}

func TestConfigService_GetPublicConfig_DeactivationDuringLoadIsNotCached(t *testing.T) {
	cache := newGuardedMemoryCache()
	fx := createTestConfigServiceWithCache(t, true, cache)
	ctx := context.Background()
	stored := testConfig()

	fx.repos.config.EXPECT().
		FindByKey(ctx, "default").
		RunAndReturn(func(context.Context, string) (*entity.DynamicConfig, error) {
			snapshot := *stored
			snapshot.Subjects = slices.Clone(stored.Subjects)

			return &snapshot, nil
		})
	fx.repos.taxonomy.EXPECT().
		FindByCode(ctx, "default", entity.TaxonomySubject, "SCIENCE").
		RunAndReturn(func(context.Context, string, entity.TaxonomyKind, string) (*entity.TaxonomyItem, error) {
			for _, item := range stored.Subjects {
				if item.Code == "SCIENCE" {
					return &item, nil
				}
			}

			return nil, repository.ErrTaxonomyItemNotFound
		}).
		Once()
	fx.repos.taxonomy.EXPECT().
		Update(ctx, "default", mock.AnythingOfType("*entity.TaxonomyItem"), mock.AnythingOfType("int64")).
		RunAndReturn(func(_ context.Context, _ string, item *entity.TaxonomyItem, _ int64) error {
			for i := range stored.Subjects {
				if stored.Subjects[i].Code == item.Code {
					stored.Subjects[i] = *item
				}
			}

			return nil
		}).
		Once()

	// The admin deactivates SCIENCE after the reader loaded the store but
	// before its cache write lands.
	cache.beforeSet = func() {
		_, err := fx.service.UpdateTaxonomyItem(ctx, "", entity.TaxonomySubject, "SCIENCE", &usecase.UpdateTaxonomyItemInput{
			Active: boolPtr(false),
		})
		require.NoError(t, err)
	}

	first, err := fx.service.GetPublicConfig(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, subjectCodes(first), "SCIENCE")

	second, err := fx.service.GetPublicConfig(ctx, "")
	require.NoError(t, err)
	assert.NotContains(t, subjectCodes(second), "SCIENCE")

	third, err := fx.service.GetPublicConfig(ctx, "")
	require.NoError(t, err)
	assert.Same(t, second, third)
}

func TestConfigService_SeedConfig_ReportsCreation(t *testing.T) {
	fx := createTestConfigService(t, false)
	ctx := context.Background()

	fx.repos.config.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(true, nil).Once()
	fx.cache.EXPECT().Invalidate(ctx, "tenant-a").Return(nil).Once()

	created, err := fx.service.SeedConfig(ctx, "tenant-a")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, []entity.EventType{entity.EventConfigSeeded}, fx.events.types())
}
