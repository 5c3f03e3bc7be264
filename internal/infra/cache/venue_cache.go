// Package cache keeps the public venue list in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"halisaha-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const VenueListKey = "haliSahalar:all"

type VenueCache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewVenueCache(rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *VenueCache {
	return &VenueCache{rdb: rdb, ttl: ttl, logger: logger}
}

// GetVenueList reports a miss for absent or undecodable entries.
func (c *VenueCache) GetVenueList(ctx context.Context) ([]*queries.VenueView, bool, error) {
	raw, err := c.rdb.Get(ctx, VenueListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var views []*queries.VenueView
	if err := json.Unmarshal(raw, &views); err != nil {
		c.logger.Warn("dropping undecodable venue list cache entry", "error", err)
		_ = c.rdb.Del(ctx, VenueListKey).Err()
		return nil, false, nil
	}
	return views, true, nil
}

func (c *VenueCache) SetVenueList(ctx context.Context, views []*queries.VenueView) error {
	raw, err := json.Marshal(views)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, VenueListKey, raw, c.ttl).Err()
}

func (c *VenueCache) InvalidateVenueList(ctx context.Context) error {
	return c.rdb.Del(ctx, VenueListKey).Err()
}

// NopVenueCache is used when Redis is disabled; every read misses.
type NopVenueCache struct{}

func (NopVenueCache) GetVenueList(context.Context) ([]*queries.VenueView, bool, error) {
	return nil, false, nil
}

func (NopVenueCache) SetVenueList(context.Context, []*queries.VenueView) error { return nil }

func (NopVenueCache) InvalidateVenueList(context.Context) error { return nil }
