package memory

import (
	"testing"
	"time"

	"github.com/akaya/fightpicks/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByUserNewestFirst(t *testing.T) {
	s := New()
	userID := uuid.New()
	base := time.Date(2026, 6, 7, 20, 0, 0, 0, time.UTC)

	bets := []models.Bet{
		{UserID: userID, EventID: "ufc-316", FightID: "ufc-316-0", SelectedFighter: 1, CreatedAt: base},
		{UserID: userID, EventID: "ufc-316", FightID: "ufc-316-1", SelectedFighter: 2, CreatedAt: base.Add(time.Hour)},
	}
	require.NoError(t, s.Bets().CreateBatch(bets))

	got, err := s.Bets().ByUser(userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ufc-316-1", got[0].FightID)
	assert.Equal(t, "ufc-316-0", got[1].FightID)
}

func TestPendingByEventOldestFirst(t *testing.T) {
	s := New()
	userID := uuid.New()
	base := time.Date(2026, 6, 7, 20, 0, 0, 0, time.UTC)

	bets := []models.Bet{
		{UserID: userID, EventID: "ufc-316", FightID: "ufc-316-1", SelectedFighter: 2, CreatedAt: base.Add(time.Hour)},
		{UserID: userID, EventID: "ufc-316", FightID: "ufc-316-0", SelectedFighter: 1, CreatedAt: base},
		{UserID: userID, EventID: "ufc-316", FightID: "ufc-316-2", SelectedFighter: 1, CreatedAt: base, Status: models.BetStatusWon},
	}
	require.NoError(t, s.Bets().CreateBatch(bets))

	got, err := s.Bets().PendingByEvent("ufc-316")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ufc-316-0", got[0].FightID)
	assert.Equal(t, "ufc-316-1", got[1].FightID)
}
