package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akaya/fightpicks/internal/cache"
	"github.com/akaya/fightpicks/internal/dto"
	"github.com/akaya/fightpicks/internal/metrics"
	"github.com/akaya/fightpicks/internal/store"
)

// LeaderboardService derives the points-ordered ranking over the user
// registry. The cache is optional; without it (or when Redis is down) every
// read goes to the database.
type LeaderboardService struct {
	store store.Store
	cache *cache.LeaderboardCache
}

func NewLeaderboardService(st store.Store, c *cache.LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{store: st, cache: c}
}

func (s *LeaderboardService) Standings(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx)
		if err != nil {
			slog.Warn("leaderboard cache read failed", "error", err)
		} else if ok {
			metrics.LeaderboardCacheHits.Inc()
			return entries, nil
		}
		metrics.LeaderboardCacheMisses.Inc()
	}

	users, err := s.store.Users().ListByPoints()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	entries := make([]dto.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, dto.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   u.ID,
			Name:     u.Name,
			Avatar:   u.Avatar,
			Points:   u.Points,
			JoinedAt: u.CreatedAt,
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, entries); err != nil {
			slog.Warn("leaderboard cache write failed", "error", err)
		}
	}

	return entries, nil
}

// Invalidate drops the cached ranking. Called after every settlement pass.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		slog.Warn("leaderboard cache invalidation failed", "error", err)
	}
}
