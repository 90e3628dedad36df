package usecase

import (
	"context"

	"github.com/google/uuid"

	"tuition/internal/domain/entity"
)

// TeacherProfileUsecase covers teacher onboarding and admin review.
type TeacherProfileUsecase interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, input *CreateTeacherProfileInput) (*entity.TeacherProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.TeacherProfile, error)
	ListProfiles(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.TeacherProfile], error)
	ApproveProfile(ctx context.Context, adminID, userID uuid.UUID) (*entity.TeacherProfile, error)
	RejectProfile(ctx context.Context, adminID, userID uuid.UUID, reason string) (*entity.TeacherProfile, error)

	// GetShareQRCode renders a PNG QR code linking to the teacher's public profile.
	GetShareQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// ResolveShareQRCode returns the approved teacher a scanned share QR code points to.
	ResolveShareQRCode(ctx context.Context, qrData string) (*entity.TeacherProfile, error)
}

// --- Input DTOs ---

// CreateTeacherProfileInput holds the legacy profile fields of a new teacher.
type CreateTeacherProfileInput struct {
	DisplayName     string   `json:"displayName" validate:"required,min=2,max=255"`
	Headline        string   `json:"headline" validate:"max=255"`
	Bio             string   `json:"bio" validate:"max=5000"`
	Qualifications  []string `json:"qualifications" validate:"dive,max=255"`
	ExperienceYears int      `json:"experienceYears" validate:"gte=0,lte=80"`
	HourlyRate      float64  `json:"hourlyRate" validate:"gte=0"`
	Subjects        []string `json:"subjects" validate:"dive,required"`
	EducationLevels []string `json:"educationLevels" validate:"dive,required"`
	Phone           string   `json:"phone" validate:"omitempty,max=32"`
	City            string   `json:"city" validate:"max=64"`
	District        string   `json:"district" validate:"max=64"`
}

// ResolveQRCodeInput carries the raw content of a scanned share QR code.
type ResolveQRCodeInput struct {
	Data string `json:"data" validate:"required,max=2048"`
}

// RejectTeacherInput carries the reason shown to the teacher.
type RejectTeacherInput struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}
