package impl

import (
	"context"
	"log/slog"
	"time"

	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Cache key prefixes. The management CLI flushes by these patterns.
const (
	userCachePrefix      = "usuario:"
	profileCachePrefix   = "perfil:"
	cartCountCachePrefix = "carrinho:"
)

// CachePatterns lists every pattern owned by the use cases.
func CachePatterns() []string {
	return []string{userCachePrefix + "*", profileCachePrefix + "*", cartCountCachePrefix + "*"}
}

func userCacheKey(id uuid.UUID) string {
	return userCachePrefix + id.String()
}

func profileCacheKey(id uuid.UUID) string {
	return profileCachePrefix + id.String()
}

func cartCountCacheKey(owner entity.CartOwner) string {
	if owner.UserID != nil {
		return cartCountCachePrefix + "u:" + owner.UserID.String()
	}

	return cartCountCachePrefix + "s:" + owner.SessionID
}

// cacheGet reads a cached value. Misses and backend errors both report false.
func cacheGet(ctx context.Context, cache service.Cache, logger *slog.Logger, key string, dest any) bool {
	if cache == nil {
		return false
	}

	err := cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		logger.Warn("Cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	return false
}

func cacheSet(ctx context.Context, cache service.Cache, logger *slog.Logger, key string, value any, ttl time.Duration) {
	if cache == nil {
		return
	}
	if err := cache.Set(ctx, key, value, ttl); err != nil {
		logger.Warn("Cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func cacheDelete(ctx context.Context, cache service.Cache, logger *slog.Logger, keys ...string) {
	if cache == nil || len(keys) == 0 {
		return
	}
	if err := cache.Delete(ctx, keys...); err != nil {
		logger.Warn("Cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}
