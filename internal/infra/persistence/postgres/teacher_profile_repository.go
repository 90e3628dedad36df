package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	"tuition/internal/infra/persistence/model"
)

var teacherProfileSortColumns = map[string]string{
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
	"displayName":     "display_name",
	"experienceYears": "experience_years",
	"hourlyRate":      "hourly_rate",
	"status":          "status",
}

// teacherProfileRepository implements the repository.TeacherProfileRepository interface.
type teacherProfileRepository struct {
	db *gorm.DB
}

// NewTeacherProfileRepository is the constructor for teacherProfileRepository.
func NewTeacherProfileRepository(db *gorm.DB) repository.TeacherProfileRepository {
	return &teacherProfileRepository{
		db: db,
	}
}

// Create persists a new profile.
func (repo *teacherProfileRepository) Create(ctx context.Context, profile *entity.TeacherProfile) error {
	profileM, err := fromTeacherProfileDomain(profile)
	if err != nil {
		return err
	}
	profileM.Version = 1

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTeacherProfile
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create teacher profile")
	}

	profile.ID = profileM.ID
	profile.Version = profileM.Version
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the profile owned by the user.
func (repo *teacherProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.TeacherProfile, error) {
	var profileM model.TeacherProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeacherProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find teacher profile by user id")
	}

	return toTeacherProfileDomain(&profileM)
}

// Update writes every mutable column guarded by the version.
func (repo *teacherProfileRepository) Update(ctx context.Context, profile *entity.TeacherProfile, expectedVersion int64) error {
	profileM, err := fromTeacherProfileDomain(profile)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TeacherProfileModel{}).
		Where("user_id = ? AND version = ?", profile.UserID, expectedVersion).
		Updates(map[string]any{
			"display_name":         profileM.DisplayName,
			"headline":             profileM.Headline,
			"bio":                  profileM.Bio,
			"qualifications":       profileM.Qualifications,
			"experience_years":     profileM.ExperienceYears,
			"hourly_rate":          profileM.HourlyRate,
			"subjects":             profileM.Subjects,
			"education_levels":     profileM.EducationLevels,
			"phone":                profileM.Phone,
			"city":                 profileM.City,
			"district":             profileM.District,
			"status":               profileM.Status,
			"rejection_reason":     profileM.RejectionReason,
			"uses_dynamic_profile": profileM.UsesDynamicProfile,
			"dynamic_profile":      profileM.DynamicProfile,
			"profile_layout":       profileM.ProfileLayout,
			"version":              gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update teacher profile")
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.TeacherProfileModel{}).
			Where("user_id = ?", profile.UserID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check teacher profile existence")
		}
		if count == 0 {
			return repository.ErrTeacherProfileNotFound
		}

		return repository.ErrVersionConflict
	}

	profile.Version = expectedVersion + 1

	return nil
}

// List returns one page of profiles.
func (repo *teacherProfileRepository) List(ctx context.Context, query entity.ListQuery) ([]*entity.TeacherProfile, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.TeacherProfileModel{})
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	if query.Search != "" {
		like := likePattern(query.Search)
		tx = tx.Where("display_name ILIKE ? OR headline ILIKE ? OR city ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count teacher profiles")
	}

	var profileModels []*model.TeacherProfileModel
	if err := tx.
		Order(orderClause(query, teacherProfileSortColumns, "created_at")).
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&profileModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list teacher profiles")
	}

	profiles := make([]*entity.TeacherProfile, 0, len(profileModels))
	for _, m := range profileModels {
		profile, err := toTeacherProfileDomain(m)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, total, nil
}

func toTeacherProfileDomain(m *model.TeacherProfileModel) (*entity.TeacherProfile, error) {
	profile := &entity.TeacherProfile{
		ID:                 m.ID,
		UserID:             m.UserID,
		DisplayName:        m.DisplayName,
		Headline:           m.Headline,
		Bio:                m.Bio,
		Qualifications:     nonNilStrings(m.Qualifications),
		ExperienceYears:    m.ExperienceYears,
		HourlyRate:         m.HourlyRate,
		Subjects:           nonNilStrings(m.Subjects),
		EducationLevels:    nonNilStrings(m.EducationLevels),
		Phone:              m.Phone,
		City:               m.City,
		District:           m.District,
		Status:             entity.ApprovalStatus(m.Status),
		RejectionReason:    m.RejectionReason,
		UsesDynamicProfile: m.UsesDynamicProfile,
		ProfileLayout:      []entity.LayoutEntry(m.ProfileLayout),
		Version:            m.Version,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if profile.ProfileLayout == nil {
		profile.ProfileLayout = []entity.LayoutEntry{}
	}

	if len(m.DynamicProfile) > 0 && string(m.DynamicProfile) != "null" {
		var dp entity.DynamicProfile
		if err := json.Unmarshal(m.DynamicProfile, &dp); err != nil {
			return nil, errors.Wrap(err, "failed to decode dynamic profile")
		}
		profile.DynamicProfile = &dp
	}

	return profile, nil
}

func fromTeacherProfileDomain(p *entity.TeacherProfile) (*model.TeacherProfileModel, error) {
	m := &model.TeacherProfileModel{
		ID:                 p.ID,
		UserID:             p.UserID,
		DisplayName:        p.DisplayName,
		Headline:           p.Headline,
		Bio:                p.Bio,
		Qualifications:     datatypes.JSONSlice[string](nonNilStrings(p.Qualifications)),
		ExperienceYears:    p.ExperienceYears,
		HourlyRate:         p.HourlyRate,
		Subjects:           datatypes.JSONSlice[string](nonNilStrings(p.Subjects)),
		EducationLevels:    datatypes.JSONSlice[string](nonNilStrings(p.EducationLevels)),
		Phone:              p.Phone,
		City:               p.City,
		District:           p.District,
		Status:             string(p.Status),
		RejectionReason:    p.RejectionReason,
		UsesDynamicProfile: p.UsesDynamicProfile,
		ProfileLayout:      datatypes.JSONSlice[entity.LayoutEntry](p.ProfileLayout),
		Version:            p.Version,
	}

	if p.DynamicProfile != nil {
		raw, err := json.Marshal(p.DynamicProfile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode dynamic profile")
		}
		m.DynamicProfile = datatypes.JSON(raw)
	}

	return m, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
