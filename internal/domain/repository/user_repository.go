package repository

import (
	"context"

	"github.com/google/uuid"

	"tuition/internal/domain/entity"
	"tuition/internal/errors"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}
