package dto

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is one row of the points-ordered ranking. Ties on points
// break by join date (earliest first), then id, so ranks are stable across
// repeated reads.
type LeaderboardEntry struct {
	Rank     int       `json:"rank"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar,omitempty"`
	Points   int       `json:"points"`
	JoinedAt time.Time `json:"joined_at"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
