package repository

import (
	"context"

	"github.com/google/uuid"

	"tuition/internal/domain/entity"
	"tuition/internal/errors"
)

// Domain-specific errors for teacher profile persistence.
var (
	ErrTeacherProfileNotFound  = errors.New("teacher profile not found")
	ErrDuplicateTeacherProfile = errors.New("teacher profile already exists")
)

// TeacherProfileRepository defines persistence for teacher profiles.
type TeacherProfileRepository interface {
	// Create persists a new profile; one profile per user.
	Create(ctx context.Context, profile *entity.TeacherProfile) error

	// FindByUserID retrieves the profile owned by the user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.TeacherProfile, error)

	// Update writes the profile when its stored version equals expectedVersion
	// and advances profile.Version on success.
	Update(ctx context.Context, profile *entity.TeacherProfile, expectedVersion int64) error

	// List returns one page of profiles filtered by status and a display name search.
	List(ctx context.Context, query entity.ListQuery) ([]*entity.TeacherProfile, int64, error)
}
