package bootstrap

import (
	"context"
	"log/slog"

	"halisaha-api/internal/infra/cache"
	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/usecase/queries"
	"halisaha-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewVenueListCache,
		func(c VenueListCache) queries.VenueListCache { return c },
		func(c VenueListCache) shared.VenueListInvalidator { return c },
	),
)

type VenueListCache interface {
	queries.VenueListCache
	shared.VenueListInvalidator
}

// NewRedisClient returns nil when Redis is disabled. An unreachable server is only logged:
// the cache and the limiters degrade instead of blocking startup.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled; venue list cache and rate limits are off")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable at startup", slog.String("addr", cfg.Redis.Addr), slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

func NewVenueListCache(rdb *redis.Client, cfg config.Config, logger *slog.Logger) VenueListCache {
	if rdb == nil {
		return cache.NopVenueCache{}
	}
	return cache.NewVenueCache(rdb, cfg.Cache.VenueListTTL, logger)
}
