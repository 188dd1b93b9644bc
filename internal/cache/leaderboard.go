// Package cache is a read-through Redis cache for the leaderboard.
// Settlement passes invalidate the cached standings explicitly; anything
// else that touches them, like a new registration, is covered by the short
// TTL.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/akaya/fightpicks/internal/dto"
	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "fightpicks:leaderboard"

func ConnectRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

type LeaderboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLeaderboardCache(rdb *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached entries and whether the key was present. Decode
// failures count as a miss.
func (c *LeaderboardCache) Get(ctx context.Context) ([]dto.LeaderboardEntry, bool, error) {
	raw, err := c.rdb.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var entries []dto.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, nil
	}
	return entries, true, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, entries []dto.LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, leaderboardKey, raw, c.ttl).Err()
}

func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, leaderboardKey).Err()
}
