package bootstrap

import (
	"context"
	"log/slog"

	"storefront-api/internal/infra/cache"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewDiscountCache,
	),
)

// NewDiscountCache returns the Redis-backed cache when Redis is enabled and
// a noop cache otherwise, so the checkout path never branches on config.
func NewDiscountCache(lc fx.Lifecycle, cfg config.Config) usecase.DiscountCache {
	if !cfg.Redis.Enabled {
		slog.Info("discount cache disabled, using noop cache")
		return cache.NewNoopDiscountCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("discount cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.DiscountTTL)
	return cache.NewRedisDiscountCache(client, cfg.Redis)
}
