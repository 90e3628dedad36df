// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tuition/internal/domain/entity"
	"tuition/internal/errors"
)

// Domain-specific errors for configuration persistence.
var (
	// ErrConfigNotFound is returned when no active config exists for a key.
	ErrConfigNotFound = errors.New("config not found")
	// ErrVersionConflict is returned when a row changed since it was read.
	ErrVersionConflict = errors.New("version conflict")
)

// ConfigRepository persists the config header row and assembles full configs.
type ConfigRepository interface {
	// FindByKey loads the active config for key together with every taxonomy
	// item, section and template stored under it.
	FindByKey(ctx context.Context, key string) (*entity.DynamicConfig, error)

	// CreateIfAbsent inserts the config and its children unless a config with
	// the same key already exists. It reports whether this call created it.
	CreateIfAbsent(ctx context.Context, cfg *entity.DynamicConfig) (bool, error)

	// UpdateSettings writes settings, general settings and branding settings,
	// bumping the header version when it still equals expectedVersion.
	UpdateSettings(ctx context.Context, cfg *entity.DynamicConfig, expectedVersion int64) error

	// ListKeys returns the keys of every stored config.
	ListKeys(ctx context.Context) ([]string, error)
}
