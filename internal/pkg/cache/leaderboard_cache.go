package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

const leaderboardKeyPrefix = "leaderboard:top:"

// LeaderboardCache is a cache-aside layer over the leaderboard query,
// keyed per limit. A nil *LeaderboardCache is valid and degrades every
// operation to a no-op, so callers never branch on whether Redis is
// configured.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaderboardCache creates a leaderboard cache over the given client.
func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: ttl}
}

// GetTop returns the cached top-N entries, or ok=false on miss or any
// Redis error. Cache failures never fail the request.
func (c *LeaderboardCache) GetTop(ctx context.Context, limit int) ([]dto.LeaderboardEntry, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, leaderboardKey(limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn().Err(err).Int("limit", limit).Msg("Leaderboard cache read failed")
		}
		return nil, false
	}

	var entries []dto.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Warn().Err(err).Int("limit", limit).Msg("Leaderboard cache entry corrupt, ignoring")
		return nil, false
	}

	return entries, true
}

// SetTop stores the top-N entries with the configured TTL.
func (c *LeaderboardCache) SetTop(ctx context.Context, limit int, entries []dto.LeaderboardEntry) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to marshal leaderboard entries for cache")
		return
	}

	if err := c.client.Set(ctx, leaderboardKey(limit), raw, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Int("limit", limit).Msg("Leaderboard cache write failed")
	}
}

// Invalidate drops every cached leaderboard window. Called after any write
// that can change the ordering.
func (c *LeaderboardCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, leaderboardKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn().Err(err).Str("key", iter.Val()).Msg("Leaderboard cache invalidation failed")
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn().Err(err).Msg("Leaderboard cache scan failed")
	}
}

func leaderboardKey(limit int) string {
	return fmt.Sprintf("%s%d", leaderboardKeyPrefix, limit)
}
