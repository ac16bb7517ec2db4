// Copyright (c) 2026 BrewBuzz. All rights reserved.

package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/brewbuzz/brewbuzz/internal/platform/constants"
)

// RedisStatsCache implements [StatsCache] on Redis with a bounded TTL.
//
// Cached stats are derived data: every entry can be recomputed from the
// review rows at any time, so losing the cache is harmless and the TTL
// bounds staleness even if an invalidation is missed.
type RedisStatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a new Redis-backed [StatsCache].
func NewStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{client: client}
}

func statsKey(coffeeID string) string {
	return constants.RedisPrefixCoffeeStats + coffeeID
}

/*
Get retrieves cached stats for a coffee.

Description: A missing key returns (nil, nil) so callers fall through to
recomputation. A corrupt value is treated the same way and dropped.

Parameters:
  - context: context.Context
  - coffeeID: string (UUID)

Returns:
  - *Stats: Cached value, or nil on miss
  - error: Connectivity errors
*/
func (cache *RedisStatsCache) Get(context context.Context, coffeeID string) (*Stats, error) {
	payload, err := cache.client.Get(context, statsKey(coffeeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_stats_get_failed: %w", err)
	}

	var stats Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		// Corrupt entry: drop it and report a miss
		_ = cache.client.Del(context, statsKey(coffeeID)).Err()
		return nil, nil
	}
	return &stats, nil
}

/*
Set stores freshly computed stats under the coffee's key.

Parameters:
  - context: context.Context
  - coffeeID: string (UUID)
  - stats: Stats

Returns:
  - error: Serialization or execution errors
*/
func (cache *RedisStatsCache) Set(context context.Context, coffeeID string, stats Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("redis_stats_marshal_failed: %w", err)
	}

	if err := cache.client.Set(context, statsKey(coffeeID), payload, constants.CoffeeStatsCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_stats_set_failed: %w", err)
	}
	return nil
}

/*
Invalidate drops the cached stats for one coffee and bumps the listing
version so downstream caches know the catalog's derived data moved.

Parameters:
  - context: context.Context
  - coffeeID: string (UUID)

Returns:
  - error: Execution errors
*/
func (cache *RedisStatsCache) Invalidate(context context.Context, coffeeID string) error {
	if err := cache.client.Del(context, statsKey(coffeeID)).Err(); err != nil {
		return fmt.Errorf("redis_stats_del_failed: %w", err)
	}

	// Listing version bump; best-effort
	if err := cache.client.Incr(context, constants.RedisKeyListingVersion).Err(); err != nil {
		return fmt.Errorf("redis_listing_version_failed: %w", err)
	}
	return nil
}
