// Package cache implements service.Cache on Redis, with a no-op fallback when Redis is not configured.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"comerciojusto/config"
	"comerciojusto/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	pingTimeout = 5 * time.Second
	scanCount   = 100
)

// Params holds dependencies for the cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis-backed cache, or a no-op cache when redis.addr is empty.
func New(params Params) (service.Cache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, caching disabled")

		return NewNoOpCache(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				// The cache is an optimisation; keep serving from the database.
				params.Logger.Warn("Redis ping failed, cache calls will error until it recovers",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)

				return nil
			}
			params.Logger.Info("Connected to Redis cache", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisCache(client), nil
}

// RedisCache stores JSON-encoded values in Redis.
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

// Get decodes the value stored under key into dest.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) error {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return service.ErrCacheMiss
	}
	if err != nil {
		return errors.Wrapf(err, "redis get %s", key)
	}

	return errors.WithStack(json.Unmarshal(val, dest))
}

// Set stores value under key for ttl.
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrapf(c.client.Set(ctx, key, data, ttl).Err(), "redis set %s", key)
}

// Delete removes the given keys.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return errors.Wrap(c.client.Del(ctx, keys...).Err(), "redis del")
}

// DeletePattern walks the keyspace with SCAN and removes matching keys.
func (c *RedisCache) DeletePattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, scanCount).Iterator()
	batch := make([]string, 0, scanCount)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanCount {
			if err := c.Delete(ctx, batch...); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrapf(err, "redis scan %s", pattern)
	}

	return c.Delete(ctx, batch...)
}

// NoOpCache never stores anything.
type NoOpCache struct{}

// NewNoOpCache returns a cache that always misses.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (NoOpCache) Get(context.Context, string, any) error {
	return service.ErrCacheMiss
}

func (NoOpCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (NoOpCache) Delete(context.Context, ...string) error {
	return nil
}

func (NoOpCache) DeletePattern(context.Context, string) error {
	return nil
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
