package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/form"
	"tuition/internal/domain/repository"
	"tuition/internal/domain/service"
	"tuition/internal/usecase"
)

const targetTeacher = "teacher"

// dynamicProfileService implements the DynamicProfileUsecase interface.
type dynamicProfileService struct {
	txManager repository.TransactionManager
	configs   usecase.ConfigUsecase
	events    eventEmitter
	logger    *slog.Logger
	now       func() time.Time
}

// DynamicProfileServiceParams holds dependencies for DynamicProfileService, injected by Fx.
type DynamicProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Configs   usecase.ConfigUsecase
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewDynamicProfileService is the constructor for dynamicProfileService.
func NewDynamicProfileService(params DynamicProfileServiceParams) usecase.DynamicProfileUsecase {
	return &dynamicProfileService{
		txManager: params.TxManager,
		configs:   params.Configs,
		events:    newEventEmitter(params.Publisher, params.Logger),
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dynamicProfileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *dynamicProfileService) findProfile(ctx context.Context, teacherUserID uuid.UUID) (*entity.TeacherProfile, error) {
	var profile *entity.TeacherProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = repoFactory.TeacherProfileRepo().FindByUserID(ctx, teacherUserID)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to find teacher profile")
	}

	return profile, nil
}

// modify loads the profile, applies fn and writes it back guarded by the
// version read in the same transaction.
func (srv *dynamicProfileService) modify(ctx context.Context, teacherUserID uuid.UUID, expectedVersion *int64, fn func(profile *entity.TeacherProfile) error) (*entity.TeacherProfile, error) {
	var profile *entity.TeacherProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.TeacherProfileRepo()

		var err error
		profile, err = profileRepo.FindByUserID(ctx, teacherUserID)
		if err != nil {
			return err
		}
		version := profile.Version
		if expectedVersion != nil && *expectedVersion != version {
			return repository.ErrVersionConflict
		}

		if err := fn(profile); err != nil {
			return err
		}

		return profileRepo.Update(ctx, profile, version)
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (srv *dynamicProfileService) emit(ctx context.Context, eventType entity.EventType, teacherUserID uuid.UUID, payload map[string]any) {
	event := srv.events.newEvent(ctx, eventType, "", targetTeacher, teacherUserID.String())
	event.TeacherUserID = &teacherUserID
	event.Payload = payload
	srv.events.emit(ctx, event)
}

// GetDynamicProfile returns the teacher's profile with the public config it renders against.
func (srv *dynamicProfileService) GetDynamicProfile(ctx context.Context, teacherUserID uuid.UUID) (*usecase.DynamicProfileOutput, error) {
	profile, err := srv.findProfile(ctx, teacherUserID)
	if err != nil {
		return nil, err
	}

	public, err := srv.configs.GetPublicConfig(ctx, "")
	if err != nil {
		return nil, err
	}

	return &usecase.DynamicProfileOutput{
		Teacher:            profile,
		Config:             public,
		UsesDynamicProfile: profile.UsesDynamicProfile,
		DynamicProfile:     projectDynamicProfile(profile),
		ProfileLayout:      profile.ProfileLayout,
	}, nil
}

// projectDynamicProfile fills unwritten sections from the legacy fields. The
// stored profile is left untouched.
func projectDynamicProfile(profile *entity.TeacherProfile) *entity.DynamicProfile {
	projected := entity.DynamicProfile{
		CustomFields: map[string]any{},
	}
	if profile.DynamicProfile != nil {
		projected = *profile.DynamicProfile
		if projected.CustomFields == nil {
			projected.CustomFields = map[string]any{}
		}
	}
	projected.SectionData = profile.EffectiveSectionData()

	return &projected
}

// UpdateDynamicProfile merges section data and custom fields into the teacher's dynamic profile.
func (srv *dynamicProfileService) UpdateDynamicProfile(ctx context.Context, teacherUserID uuid.UUID, input *usecase.UpdateDynamicProfileInput) (*entity.TeacherProfile, error) {
	srv.log(ctx).Info("Updating dynamic profile", slog.String("teacherUserID", teacherUserID.String()))

	if input.ProfileLayout != nil {
		if err := entity.ValidateLayout(input.ProfileLayout); err != nil {
			return nil, translateError(err, "invalid profile layout")
		}
	}

	cfg, err := srv.configs.GetConfig(ctx, "")
	if err != nil {
		return nil, err
	}

	var template *entity.ProfileTemplate
	if input.TemplateID != nil && *input.TemplateID != "" {
		t, ok := cfg.Template(*input.TemplateID)
		if !ok {
			return nil, domainerrors.ErrTemplateNotFound.WithDetails(fmt.Sprintf("template %q not found", *input.TemplateID))
		}
		template = &t
	}

	profile, err := srv.modify(ctx, teacherUserID, input.Version, func(profile *entity.TeacherProfile) error {
		now := srv.now().UTC()
		profile.EnableDynamic(now)

		if input.ProfileLayout != nil {
			profile.ProfileLayout = input.ProfileLayout
		}
		if template != nil {
			profile.DynamicProfile.TemplateID = template.ID
		}

		if len(input.SectionData) > 0 {
			schema, err := form.Build(EffectiveSections(cfg, profile))
			if err != nil {
				return err
			}
			if violations := schema.ValidateAll(input.SectionData); len(violations) > 0 {
				return domainerrors.ErrValidationFailed.WithFields(form.Summary(violations), violations)
			}
			profile.MergeSectionData(input.SectionData)
		}
		if len(input.CustomFields) > 0 {
			profile.MergeCustomFields(input.CustomFields)
		}
		profile.DynamicProfile.LastUpdated = now

		return nil
	})
	if err != nil {
		return nil, translateError(err, "failed to update dynamic profile")
	}

	srv.emit(ctx, entity.EventProfileUpdated, teacherUserID, nil)

	return profile, nil
}

// EnableDynamicProfile switches the teacher to dynamic sections.
func (srv *dynamicProfileService) EnableDynamicProfile(ctx context.Context, teacherUserID uuid.UUID) (*entity.TeacherProfile, error) {
	profile, err := srv.modify(ctx, teacherUserID, nil, func(profile *entity.TeacherProfile) error {
		profile.EnableDynamic(srv.now().UTC())

		return nil
	})
	if err != nil {
		return nil, translateError(err, "failed to enable dynamic profile")
	}

	srv.emit(ctx, entity.EventProfileEnabled, teacherUserID, nil)

	return profile, nil
}

// DisableDynamicProfile switches the teacher back to legacy fields.
func (srv *dynamicProfileService) DisableDynamicProfile(ctx context.Context, teacherUserID uuid.UUID) (*entity.TeacherProfile, error) {
	profile, err := srv.modify(ctx, teacherUserID, nil, func(profile *entity.TeacherProfile) error {
		profile.UsesDynamicProfile = false

		return nil
	})
	if err != nil {
		return nil, translateError(err, "failed to disable dynamic profile")
	}

	srv.emit(ctx, entity.EventProfileDisabled, teacherUserID, nil)

	return profile, nil
}

// UpdateProfileLayout replaces the teacher's section placement.
func (srv *dynamicProfileService) UpdateProfileLayout(ctx context.Context, teacherUserID uuid.UUID, layout []entity.LayoutEntry) (*entity.TeacherProfile, error) {
	if layout == nil {
		layout = []entity.LayoutEntry{}
	}
	if err := entity.ValidateLayout(layout); err != nil {
		return nil, translateError(err, "invalid profile layout")
	}

	profile, err := srv.modify(ctx, teacherUserID, nil, func(profile *entity.TeacherProfile) error {
		now := srv.now().UTC()
		profile.EnableDynamic(now)
		profile.ProfileLayout = layout
		profile.DynamicProfile.LastUpdated = now

		return nil
	})
	if err != nil {
		return nil, translateError(err, "failed to update profile layout")
	}

	srv.emit(ctx, entity.EventProfileLayout, teacherUserID, nil)

	return profile, nil
}

// GetProfileTemplate returns a template of the default config.
func (srv *dynamicProfileService) GetProfileTemplate(ctx context.Context, templateID string) (*entity.ProfileTemplate, error) {
	return srv.configs.GetProfileTemplate(ctx, "", templateID)
}

// ApplyProfileTemplate copies the template's section placement into the teacher's layout.
func (srv *dynamicProfileService) ApplyProfileTemplate(ctx context.Context, teacherUserID uuid.UUID, templateID string) (*entity.TeacherProfile, error) {
	template, err := srv.configs.GetProfileTemplate(ctx, "", templateID)
	if err != nil {
		return nil, err
	}

	profile, err := srv.modify(ctx, teacherUserID, nil, func(profile *entity.TeacherProfile) error {
		profile.ApplyTemplate(template, srv.now().UTC())

		return nil
	})
	if err != nil {
		return nil, translateError(err, "failed to apply profile template")
	}

	srv.emit(ctx, entity.EventTemplateApplied, teacherUserID, map[string]any{
		"templateId":   template.ID,
		"templateName": template.Name,
	})

	return profile, nil
}

// GetProfileForm returns the render plan for the teacher's effective sections.
func (srv *dynamicProfileService) GetProfileForm(ctx context.Context, teacherUserID uuid.UUID) (*form.Schema, error) {
	schema, _, err := srv.schemaFor(ctx, teacherUserID)

	return schema, err
}

// GetProfileCompleteness reports how many required fields of the effective sections hold a value.
func (srv *dynamicProfileService) GetProfileCompleteness(ctx context.Context, teacherUserID uuid.UUID) (*form.Completeness, error) {
	schema, profile, err := srv.schemaFor(ctx, teacherUserID)
	if err != nil {
		return nil, err
	}

	completeness := schema.Completeness(profile.EffectiveSectionData())

	return &completeness, nil
}

func (srv *dynamicProfileService) schemaFor(ctx context.Context, teacherUserID uuid.UUID) (*form.Schema, *entity.TeacherProfile, error) {
	profile, err := srv.findProfile(ctx, teacherUserID)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := srv.configs.GetConfig(ctx, "")
	if err != nil {
		return nil, nil, err
	}

	schema, err := form.Build(EffectiveSections(cfg, profile))
	if err != nil {
		return nil, nil, translateError(err, "failed to build profile form")
	}

	return schema, profile, nil
}

// EffectiveSections resolves the sections a teacher fills in. Without a
// layout the config's sections are used as stored. With a layout, each entry
// picks the config section of the same id, falling back to the section of the
// applied template, and overrides its order and visibility. Entries that
// resolve to nothing are skipped.
func EffectiveSections(cfg *entity.DynamicConfig, profile *entity.TeacherProfile) []entity.ProfileSection {
	if len(profile.ProfileLayout) == 0 {
		return cfg.ProfileSections
	}

	var template *entity.ProfileTemplate
	if profile.DynamicProfile != nil && profile.DynamicProfile.TemplateID != "" {
		if t, ok := cfg.Template(profile.DynamicProfile.TemplateID); ok {
			template = &t
		}
	}

	sections := make([]entity.ProfileSection, 0, len(profile.ProfileLayout))
	for _, entry := range profile.ProfileLayout {
		section, ok := cfg.Section(entry.ID)
		if !ok && template != nil {
			section, ok = templateSection(template, entry.ID)
		}
		if !ok {
			continue
		}
		section.Order = entry.Order
		section.Visible = entry.Visible
		sections = append(sections, section)
	}

	return sections
}

func templateSection(t *entity.ProfileTemplate, id string) (entity.ProfileSection, bool) {
	for _, s := range t.Sections {
		if s.ID == id {
			return s, true
		}
	}

	return entity.ProfileSection{}, false
}
