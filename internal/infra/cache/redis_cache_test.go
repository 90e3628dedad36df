package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuition/internal/domain/entity"
	"tuition/internal/infra/metrics"
)

func TestNoopCache_AlwaysMisses(t *testing.T) {
	ctx := context.Background()
	cache := NewNoopCache()

	stored, err := cache.Set(ctx, "default", 0, &entity.PublicConfig{Key: "default"})
	require.NoError(t, err)
	assert.False(t, stored)

	gen, err := cache.Generation(ctx, "default")
	require.NoError(t, err)
	assert.Zero(t, gen)

	cfg, found, err := cache.Get(ctx, "default")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cfg)
	assert.NoError(t, cache.Invalidate(ctx, "default"))
}

func TestRedisCache_Key(t *testing.T) {
	cache := &redisCache{prefix: "tuition:"}

	assert.Equal(t, "tuition:config:public:{default}", cache.key("default"))
	assert.Equal(t, "tuition:config:public:{default}:gen", cache.generationKey("default"))
}

func TestRedisCache_UnreachableServerReportsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewRedisCache(client, "test:", time.Minute, metrics.New())

	ctx := context.Background()

	_, found, err := cache.Get(ctx, "default")
	assert.Error(t, err)
	assert.False(t, found)

	_, err = cache.Generation(ctx, "default")
	assert.Error(t, err)

	stored, err := cache.Set(ctx, "default", 0, &entity.PublicConfig{Key: "default"})
	assert.Error(t, err)
	assert.False(t, stored)

	assert.Error(t, cache.Invalidate(ctx, "default"))
}
