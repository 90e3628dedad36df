// Package cache holds the public config cache backends.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"tuition/config"
	"tuition/internal/domain/entity"
	"tuition/internal/domain/lifecycle"
	"tuition/internal/domain/service"
	"tuition/internal/infra/metrics"
)

const (
	publicConfigKey  = "config:public:"
	generationSuffix = ":gen"
)

// setIfGeneration writes the projection only while the generation counter
// still holds the value the reader saw before loading the store.
//
//nolint:gochecknoglobals
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// redisCache stores public config projections as JSON strings with a TTL.
type redisCache struct {
	client  redis.UniversalClient
	prefix  string
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client redis.UniversalClient, prefix string, ttl time.Duration, m *metrics.Metrics) service.PublicConfigCache {
	return &redisCache{
		client:  client,
		prefix:  prefix,
		ttl:     ttl,
		metrics: m,
	}
}

// key hash-tags the config key so the value and its generation share a slot.
func (c *redisCache) key(configKey string) string {
	return c.prefix + publicConfigKey + "{" + configKey + "}"
}

func (c *redisCache) generationKey(configKey string) string {
	return c.key(configKey) + generationSuffix
}

// Get returns the cached projection; a missing key is a miss, not an error.
func (c *redisCache) Get(ctx context.Context, key string) (*entity.PublicConfig, bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.CacheLookup(metrics.CacheMiss)

		return nil, false, nil
	}
	if err != nil {
		c.metrics.CacheLookup(metrics.CacheError)

		return nil, false, errors.Wrap(err, "redis get public config")
	}

	var cfg entity.PublicConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		c.metrics.CacheLookup(metrics.CacheError)

		return nil, false, errors.Wrap(err, "decode cached public config")
	}
	c.metrics.CacheLookup(metrics.CacheHit)

	return &cfg, true, nil
}

// Generation returns the invalidation counter for key; an unset counter is 0.
func (c *redisCache) Generation(ctx context.Context, key string) (int64, error) {
	gen, err := c.client.Get(ctx, c.generationKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return gen, errors.Wrap(err, "redis get public config generation")
}

// Set stores the projection for the configured TTL unless key was
// invalidated after generation was read.
func (c *redisCache) Set(ctx context.Context, key string, generation int64, cfg *entity.PublicConfig) (bool, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return false, errors.WithStack(err)
	}

	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{c.generationKey(key), c.key(key)},
		generation, raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, errors.Wrap(err, "redis set public config")
	}

	return stored == 1, nil
}

// Invalidate bumps the generation and drops the projection in one transaction.
func (c *redisCache) Invalidate(ctx context.Context, key string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.generationKey(key))
		pipe.Del(ctx, c.key(key))

		return nil
	})

	return errors.Wrap(err, "redis invalidate public config")
}

// noopCache never stores anything; every read is a miss.
type noopCache struct{}

// NewNoopCache returns a cache that always misses.
func NewNoopCache() service.PublicConfigCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) (*entity.PublicConfig, bool, error) {
	return nil, false, nil
}

func (noopCache) Generation(context.Context, string) (int64, error) { return 0, nil }

func (noopCache) Set(context.Context, string, int64, *entity.PublicConfig) (bool, error) {
	return false, nil
}

func (noopCache) Invalidate(context.Context, string) error { return nil }

// CacheParams holds dependencies for the public config cache, injected by Fx.
type CacheParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewPublicConfigCache connects to Redis when configured and falls back to a
// cache that always misses otherwise.
func NewPublicConfigCache(params CacheParams) service.PublicConfigCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Address == "" {
		params.Logger.Info("Redis not configured, public config cache disabled")

		return NewNoopCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				// The service keeps answering from Postgres while Redis is down.
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	params.Logger.Info("Public config cache backed by Redis",
		slog.String("address", cfg.Address),
		slog.Duration("ttl", params.Config.DynamicConfig.PublicCacheTTL),
	)

	return NewRedisCache(client, cfg.KeyPrefix, params.Config.DynamicConfig.PublicCacheTTL, params.Metrics)
}

// Module provides the public config cache.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPublicConfigCache),
)
