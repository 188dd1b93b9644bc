package services

import (
	"context"
	"testing"
	"time"

	"github.com/akaya/fightpicks/internal/cache"
	"github.com/akaya/fightpicks/internal/models"
	"github.com/akaya/fightpicks/internal/store/memory"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, st *memory.Store, name string, points int, createdAt time.Time) uuid.UUID {
	t.Helper()
	user := models.User{
		ID:        uuid.New(),
		Email:     name + "@x.com",
		Password:  "hash",
		Name:      name,
		Points:    points,
		CreatedAt: createdAt,
	}
	require.NoError(t, st.Users().Create(&user))
	return user.ID
}

func TestStandingsOrderAndTieBreak(t *testing.T) {
	st := memory.New()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	seedUser(t, st, "carol", 5, base)
	early := seedUser(t, st, "ann", 20, base.Add(1*time.Hour))
	late := seedUser(t, st, "bob", 20, base.Add(2*time.Hour))
	seedUser(t, st, "dave", 0, base)

	svc := NewLeaderboardService(st, nil)

	for range 3 {
		entries, err := svc.Standings(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 4)

		assert.Equal(t, []int{20, 20, 5, 0}, []int{
			entries[0].Points, entries[1].Points, entries[2].Points, entries[3].Points,
		})
		// Equal points break by earliest join, every time.
		assert.Equal(t, early, entries[0].UserID)
		assert.Equal(t, late, entries[1].UserID)

		for i, e := range entries {
			assert.Equal(t, i+1, e.Rank)
		}
	}
}

func TestStandingsServedFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	lc := cache.NewLeaderboardCache(rdb, time.Minute)

	st := memory.New()
	seedUser(t, st, "ann", 10, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	svc := NewLeaderboardService(st, lc)
	ctx := context.Background()

	first, err := svc.Standings(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A later registration is invisible until the cache expires or is
	// invalidated.
	seedUser(t, st, "bob", 99, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))

	cached, err := svc.Standings(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	svc.Invalidate(ctx)

	fresh, err := svc.Standings(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 2)
	assert.Equal(t, "bob", fresh[0].Name)
}

func TestStandingsSurvivesCacheOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	lc := cache.NewLeaderboardCache(rdb, time.Minute)

	st := memory.New()
	seedUser(t, st, "ann", 10, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	svc := NewLeaderboardService(st, lc)

	mr.Close()

	entries, err := svc.Standings(context.Background())
	require.NoError(t, err, "a cache outage must degrade to a database read")
	assert.Len(t, entries, 1)
}
