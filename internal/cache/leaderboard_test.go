package cache

import (
	"context"
	"testing"
	"time"

	"github.com/akaya/fightpicks/internal/dto"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*LeaderboardCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewLeaderboardCache(rdb, time.Minute), mr
}

func sampleEntries() []dto.LeaderboardEntry {
	return []dto.LeaderboardEntry{
		{Rank: 1, UserID: uuid.New(), Name: "Ann", Points: 20},
		{Rank: 2, UserID: uuid.New(), Name: "Bob", Points: 5},
	}
}

func TestGetMissOnEmptyCache(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	entries := sampleEntries()
	require.NoError(t, c.Set(ctx, entries))

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entries, got)
}

func TestEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleEntries()))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleEntries()))
	require.NoError(t, c.Invalidate(ctx))

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptPayloadCountsAsMiss(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set("fightpicks:leaderboard", "not-json"))

	_, ok, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
