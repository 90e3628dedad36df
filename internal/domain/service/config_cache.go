package service

import (
	"context"

	"tuition/internal/domain/entity"
)

// PublicConfigCache holds rendered public config projections by key.
//
// Every Invalidate bumps a per-key generation. Readers take the generation
// before loading the store and hand it back to Set, which stores nothing if
// an invalidation happened in between.
type PublicConfigCache interface {
	// Get returns the cached projection; found is false on a miss.
	Get(ctx context.Context, key string) (cfg *entity.PublicConfig, found bool, err error)

	// Generation returns the current invalidation generation for key.
	Generation(ctx context.Context, key string) (int64, error)

	// Set stores the projection only while key is still at generation.
	// stored is false when a newer invalidation won the race.
	Set(ctx context.Context, key string, generation int64, cfg *entity.PublicConfig) (stored bool, err error)

	// Invalidate drops the projection for key and bumps its generation.
	Invalidate(ctx context.Context, key string) error
}
