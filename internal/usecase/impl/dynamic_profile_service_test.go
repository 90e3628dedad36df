package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	mockUsecase "tuition/internal/mocks/usecase"
	"tuition/internal/usecase"
)

type dynamicProfileFixtures struct {
	service usecase.DynamicProfileUsecase
	repos   *repoMocks
	configs *mockUsecase.MockConfigUsecase
	events  *eventRecorder
	now     time.Time
}

func createTestDynamicProfileService(t *testing.T) dynamicProfileFixtures {
	repos := newRepoMocks(t)
	configs := mockUsecase.NewMockConfigUsecase(t)
	publisher, events := newEventRecorder(t)
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	service := NewDynamicProfileService(DynamicProfileServiceParams{
		TxManager: newTxManager(t, repos),
		Configs:   configs,
		Publisher: publisher,
		Logger:    newTestLogger(),
	})
	service.(*dynamicProfileService).now = func() time.Time { return now }

	return dynamicProfileFixtures{
		service: service,
		repos:   repos,
		configs: configs,
		events:  events,
		now:     now,
	}
}

func legacyTeacher(userID uuid.UUID) *entity.TeacherProfile {
	return &entity.TeacherProfile{
		ID:              uuid.New(),
		UserID:          userID,
		DisplayName:     "Nimal Perera",
		Headline:        "A/L Physics",
		Subjects:        []string{"PHYSICS"},
		EducationLevels: []string{"AL"},
		ExperienceYears: 8,
		HourlyRate:      2500,
		City:            "Colombo",
		Status:          entity.ApprovalApproved,
		ProfileLayout:   []entity.LayoutEntry{},
		Version:         2,
	}
}

func pricingSection() entity.ProfileSection {
	minRate := 0.0
	return entity.ProfileSection{
		ID:      entity.LegacySectionPricing,
		Type:    entity.SectionTypePricing,
		Title:   "Pricing",
		Visible: true,
		Order:   1,
		Size:    entity.SectionSizeFull,
		Fields: []entity.FieldDescriptor{
			{
				ID:         "hourlyRate",
				Type:       entity.FieldTypeNumber,
				Label:      "Hourly rate",
				Visible:    true,
				Size:       entity.FieldSizeMedium,
				Validation: &entity.FieldValidation{Required: true, Min: &minRate},
			},
		},
	}
}

func contactSection() entity.ProfileSection {
	return entity.ProfileSection{
		ID:      entity.LegacySectionContact,
		Type:    entity.SectionTypeContact,
		Title:   "Contact",
		Visible: true,
		Order:   2,
		Size:    entity.SectionSizeFull,
		Fields: []entity.FieldDescriptor{
			{
				ID:         "phone",
				Type:       entity.FieldTypePhone,
				Label:      "Phone",
				Visible:    true,
				Size:       entity.FieldSizeMedium,
				Validation: &entity.FieldValidation{Required: true},
			},
		},
	}
}

func TestDynamicProfileService_GetDynamicProfile_LegacyFallback(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	teacher := legacyTeacher(userID)
	public := testConfig().Public()

	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()
	fx.configs.EXPECT().GetPublicConfig(ctx, "").Return(public, nil).Once()

	out, err := fx.service.GetDynamicProfile(ctx, userID)

	require.NoError(t, err)
	assert.False(t, out.UsesDynamicProfile)
	assert.Same(t, public, out.Config)
	require.NotNil(t, out.DynamicProfile)
	assert.Contains(t, out.DynamicProfile.SectionData, entity.LegacySectionBasicInfo)
	assert.Contains(t, out.DynamicProfile.SectionData, entity.LegacySectionPricing)
	assert.Nil(t, teacher.DynamicProfile, "projection must not persist into the stored profile")
}

func TestDynamicProfileService_GetDynamicProfile_StoredSectionWins(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	teacher := legacyTeacher(userID)
	teacher.EnableDynamic(fx.now)
	teacher.DynamicProfile.SectionData[entity.LegacySectionPricing] = map[string]any{"hourlyRate": 4000.0}

	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()
	fx.configs.EXPECT().GetPublicConfig(ctx, "").Return(testConfig().Public(), nil).Once()

	out, err := fx.service.GetDynamicProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"hourlyRate": 4000.0}, out.DynamicProfile.SectionData[entity.LegacySectionPricing])
	assert.Contains(t, out.DynamicProfile.SectionData, entity.LegacySectionBasicInfo)
	assert.Len(t, teacher.DynamicProfile.SectionData, 1)
}

func TestDynamicProfileService_GetDynamicProfile_NotFound(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrTeacherProfileNotFound).Once()

	_, err := fx.service.GetDynamicProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrTeacherProfileNotFound)
}

func TestDynamicProfileService_UpdateDynamicProfile_MergesAndPreservesOtherSections(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	teacher := legacyTeacher(userID)
	teacher.EnableDynamic(fx.now.Add(-time.Hour))
	teacher.DynamicProfile.SectionData["education"] = map[string]any{"degree": "BSc"}
	teacher.UsesDynamicProfile = false

	cfg := testConfig()
	cfg.ProfileSections = []entity.ProfileSection{pricingSection()}

	fx.configs.EXPECT().GetConfig(ctx, "").Return(cfg, nil).Once()
	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()
	fx.repos.teacherProfile.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.TeacherProfile) bool {
			data := p.DynamicProfile.SectionData
			return p.UsesDynamicProfile &&
				data["education"] != nil &&
				data[entity.LegacySectionPricing] != nil &&
				p.DynamicProfile.CustomFields["languages"] != nil &&
				p.DynamicProfile.LastUpdated.Equal(fx.now)
		}), int64(2)).
		Return(nil).
		Once()

	profile, err := fx.service.UpdateDynamicProfile(ctx, userID, &usecase.UpdateDynamicProfileInput{
		SectionData:  map[string]any{entity.LegacySectionPricing: map[string]any{"hourlyRate": 3000.0}},
		CustomFields: map[string]any{"languages": []any{"si", "en"}},
		Version:      int64Ptr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"degree": "BSc"}, profile.DynamicProfile.SectionData["education"])
	event := fx.events.last()
	require.NotNil(t, event)
	assert.Equal(t, entity.EventProfileUpdated, event.Type)
	require.NotNil(t, event.TeacherUserID)
	assert.Equal(t, userID, *event.TeacherUserID)
}

func TestDynamicProfileService_UpdateDynamicProfile_InitialisesOnFirstUpdate(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	teacher := legacyTeacher(userID)

	fx.configs.EXPECT().GetConfig(ctx, "").Return(testConfig(), nil).Once()
	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()
	fx.repos.teacherProfile.EXPECT().Update(ctx, teacher, int64(2)).Return(nil).Once()

	profile, err := fx.service.UpdateDynamicProfile(ctx, userID, &usecase.UpdateDynamicProfileInput{
		SectionData: map[string]any{"unknown-section": map[string]any{"anything": 1}},
	})

	require.NoError(t, err)
	assert.True(t, profile.UsesDynamicProfile)
	require.NotNil(t, profile.DynamicProfile)
	assert.NotNil(t, profile.DynamicProfile.CustomFields)
	assert.Contains(t, profile.DynamicProfile.SectionData, "unknown-section")
}

func TestDynamicProfileService_UpdateDynamicProfile_RejectsInvalidSectionData(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	cfg := testConfig()
	cfg.ProfileSections = []entity.ProfileSection{pricingSection()}

	fx.configs.EXPECT().GetConfig(ctx, "").Return(cfg, nil).Once()
	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(legacyTeacher(userID), nil).Once()

	_, err := fx.service.UpdateDynamicProfile(ctx, userID, &usecase.UpdateDynamicProfileInput{
		SectionData: map[string]any{entity.LegacySectionPricing: map[string]any{"hourlyRate": -5.0}},
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var fieldErr *domainerrors.FieldErrorsError
	require.ErrorAs(t, err, &fieldErr)
	assert.NotEmpty(t, fieldErr.Fields())
	assert.Empty(t, fx.events.types())
}

func TestDynamicProfileService_UpdateDynamicProfile_StaleVersion(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.configs.EXPECT().GetConfig(ctx, "").Return(testConfig(), nil).Once()
	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(legacyTeacher(userID), nil).Once()

	_, err := fx.service.UpdateDynamicProfile(ctx, userID, &usecase.UpdateDynamicProfileInput{
		CustomFields: map[string]any{"motto": "Learn daily"},
		Version:      int64Ptr(1),
	})

	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
}

func TestDynamicProfileService_UpdateDynamicProfile_ConcurrentWriteConflicts(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.configs.EXPECT().GetConfig(ctx, "").Return(testConfig(), nil).Once()
	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(legacyTeacher(userID), nil).Once()
	fx.repos.teacherProfile.EXPECT().Update(ctx, mock.Anything, int64(2)).Return(repository.ErrVersionConflict).Once()

	_, err := fx.service.UpdateDynamicProfile(ctx, userID, &usecase.UpdateDynamicProfileInput{
		CustomFields: map[string]any{"motto": "Learn daily"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
}

func TestDynamicProfileService_UpdateDynamicProfile_UnknownTemplate(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()

	fx.configs.EXPECT().GetConfig(ctx, "").Return(testConfig(), nil).Once()

	_, err := fx.service.UpdateDynamicProfile(ctx, uuid.New(), &usecase.UpdateDynamicProfileInput{
		TemplateID: strPtr("missing"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestDynamicProfileService_DisableDynamicProfile_KeepsData(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	teacher := legacyTeacher(userID)
	teacher.EnableDynamic(fx.now)
	teacher.DynamicProfile.SectionData["education"] = map[string]any{"degree": "BSc"}

	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()
	fx.repos.teacherProfile.EXPECT().Update(ctx, teacher, int64(2)).Return(nil).Once()

	profile, err := fx.service.DisableDynamicProfile(ctx, userID)

	require.NoError(t, err)
	assert.False(t, profile.UsesDynamicProfile)
	assert.Equal(t, map[string]any{"degree": "BSc"}, profile.DynamicProfile.SectionData["education"])
	assert.Equal(t, []entity.EventType{entity.EventProfileDisabled}, fx.events.types())
}

func TestDynamicProfileService_UpdateProfileLayout_RejectsDuplicateIDs(t *testing.T) {
	fx := createTestDynamicProfileService(t)

	_, err := fx.service.UpdateProfileLayout(context.Background(), uuid.New(), []entity.LayoutEntry{
		{ID: "pricing", Type: entity.SectionTypePricing, Order: 1, Visible: true},
		{ID: "pricing", Type: entity.SectionTypePricing, Order: 2, Visible: true},
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
}

func TestDynamicProfileService_UpdateProfileLayout_RejectsUnknownType(t *testing.T) {
	fx := createTestDynamicProfileService(t)

	_, err := fx.service.UpdateProfileLayout(context.Background(), uuid.New(), []entity.LayoutEntry{
		{ID: "gallery", Type: entity.SectionType("gallery"), Visible: true},
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidEnum)
}

func TestDynamicProfileService_ApplyProfileTemplate_SnapshotSurvivesTemplateChanges(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	teacher := legacyTeacher(userID)

	template := &entity.ProfileTemplate{
		ID:     "modern",
		Name:   "Modern",
		Active: true,
		Sections: []entity.ProfileSection{
			contactSection(),
			pricingSection(),
		},
	}

	fx.configs.EXPECT().GetProfileTemplate(ctx, "", "modern").Return(template, nil).Once()
	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()
	fx.repos.teacherProfile.EXPECT().Update(ctx, teacher, int64(2)).Return(nil).Once()

	profile, err := fx.service.ApplyProfileTemplate(ctx, userID, "modern")
	require.NoError(t, err)

	template.Sections = nil

	require.Len(t, profile.ProfileLayout, 2)
	assert.Equal(t, entity.LegacySectionPricing, profile.ProfileLayout[0].ID)
	assert.Equal(t, entity.LegacySectionContact, profile.ProfileLayout[1].ID)
	assert.Equal(t, "modern", profile.DynamicProfile.TemplateID)
	assert.True(t, profile.DynamicProfile.LastUpdated.Equal(fx.now))

	event := fx.events.last()
	require.NotNil(t, event)
	assert.Equal(t, entity.EventTemplateApplied, event.Type)
	assert.Equal(t, "Modern", event.Payload["templateName"])
}

func TestDynamicProfileService_ApplyProfileTemplate_NotFound(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()

	fx.configs.EXPECT().
		GetProfileTemplate(ctx, "", "missing").
		Return(nil, domainerrors.ErrTemplateNotFound.WithDetails("template \"missing\" not found")).
		Once()

	_, err := fx.service.ApplyProfileTemplate(ctx, uuid.New(), "missing")

	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestDynamicProfileService_GetProfileForm_AppliesLayout(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	teacher := legacyTeacher(userID)
	teacher.ProfileLayout = []entity.LayoutEntry{
		{ID: entity.LegacySectionContact, Type: entity.SectionTypeContact, Order: 0, Visible: true},
		{ID: entity.LegacySectionPricing, Type: entity.SectionTypePricing, Order: 1, Visible: false},
		{ID: "removed-section", Type: entity.SectionTypeCustom, Order: 2, Visible: true},
	}

	cfg := testConfig()
	cfg.ProfileSections = []entity.ProfileSection{pricingSection(), contactSection()}

	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()
	fx.configs.EXPECT().GetConfig(ctx, "").Return(cfg, nil).Once()

	schema, err := fx.service.GetProfileForm(ctx, userID)

	require.NoError(t, err)
	require.Len(t, schema.Sections, 1)
	assert.Equal(t, entity.LegacySectionContact, schema.Sections[0].ID)
}

func TestDynamicProfileService_GetProfileCompleteness_UsesLegacyFallback(t *testing.T) {
	fx := createTestDynamicProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	teacher := legacyTeacher(userID)

	cfg := testConfig()
	cfg.ProfileSections = []entity.ProfileSection{pricingSection(), contactSection()}

	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()
	fx.configs.EXPECT().GetConfig(ctx, "").Return(cfg, nil).Once()

	completeness, err := fx.service.GetProfileCompleteness(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2, completeness.Required)
	assert.Equal(t, 1, completeness.Filled)
	assert.Equal(t, 50, completeness.Percent)
	assert.Equal(t, []string{"contact.phone"}, completeness.Missing)
}

func TestEffectiveSections_FallsBackToAppliedTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.ProfileSections = []entity.ProfileSection{pricingSection()}
	cfg.ProfileTemplates = []entity.ProfileTemplate{
		{ID: "modern", Name: "Modern", Sections: []entity.ProfileSection{contactSection()}},
	}

	teacher := legacyTeacher(uuid.New())
	teacher.EnableDynamic(time.Now())
	teacher.DynamicProfile.TemplateID = "modern"
	teacher.ProfileLayout = []entity.LayoutEntry{
		{ID: entity.LegacySectionContact, Type: entity.SectionTypeContact, Order: 5, Visible: true},
		{ID: entity.LegacySectionPricing, Type: entity.SectionTypePricing, Order: 1, Visible: true},
	}

	sections := EffectiveSections(cfg, teacher)

	require.Len(t, sections, 2)
	assert.Equal(t, entity.LegacySectionContact, sections[0].ID)
	assert.Equal(t, 5, sections[0].Order)
	assert.Equal(t, 1, sections[1].Order)
}
