package services

import (
	"testing"

	"github.com/akaya/fightpicks/internal/dto"
	"github.com/akaya/fightpicks/internal/picks"
	"github.com/akaya/fightpicks/internal/store/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPicksService() (*PicksService, *memory.Store) {
	st := memory.New()
	return NewPicksService(st, picks.NewManager()), st
}

func TestSelectEventUnknownCard(t *testing.T) {
	svc, _ := newPicksService()

	_, err := svc.SelectEvent(uuid.New(), "ufc-999")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestSelectFighterTransitions(t *testing.T) {
	svc, _ := newPicksService()
	userID := uuid.New()

	resp, err := svc.SelectEvent(userID, "ufc-316")
	require.NoError(t, err)
	assert.Equal(t, string(picks.StateNoSelection), resp.State)
	assert.Equal(t, 3, resp.FightCount)

	resp, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: "ufc-316-0", SelectedFighter: 1})
	require.NoError(t, err)
	assert.Equal(t, string(picks.StatePartialPicks), resp.State)
	assert.Equal(t, 1, resp.PickCount)

	resp, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: "ufc-316-1", SelectedFighter: 2})
	require.NoError(t, err)
	assert.Equal(t, string(picks.StatePartialPicks), resp.State)

	resp, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: "ufc-316-2", SelectedFighter: 1})
	require.NoError(t, err)
	assert.Equal(t, string(picks.StateAllPicksMade), resp.State)

	// Overwriting an existing pick does not change the count.
	resp, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: "ufc-316-2", SelectedFighter: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.PickCount)
	assert.Equal(t, string(picks.StateAllPicksMade), resp.State)
}

func TestSelectFighterValidation(t *testing.T) {
	svc, _ := newPicksService()
	userID := uuid.New()

	// No event selected yet.
	_, err := svc.SelectFighter(userID, &dto.PickRequest{FightID: "ufc-316-0", SelectedFighter: 1})
	assert.Error(t, err)

	_, err = svc.SelectEvent(userID, "ufc-316")
	require.NoError(t, err)

	// Side must be 1 or 2.
	_, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: "ufc-316-0", SelectedFighter: 3})
	assert.Error(t, err)

	// Fight must be on the selected card.
	_, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: "ufc-317-0", SelectedFighter: 1})
	assert.Error(t, err)
}

func TestSubmitIncomplete(t *testing.T) {
	svc, st := newPicksService()
	userID := uuid.New()

	// Nothing selected at all.
	_, err := svc.Submit(userID)
	assert.ErrorIs(t, err, ErrIncompletePicks)

	_, err = svc.SelectEvent(userID, "ufc-316")
	require.NoError(t, err)

	for _, fightID := range []string{"ufc-316-0", "ufc-316-1"} {
		_, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: fightID, SelectedFighter: 1})
		require.NoError(t, err)

		_, err = svc.Submit(userID)
		assert.ErrorIs(t, err, ErrIncompletePicks)
	}

	bets, err := st.Bets().ByUser(userID)
	require.NoError(t, err)
	assert.Empty(t, bets, "an incomplete submission must not touch the ledger")
}

func TestSubmitAppendsAndResets(t *testing.T) {
	svc, st := newPicksService()
	userID := uuid.New()

	_, err := svc.SelectEvent(userID, "ufc-316")
	require.NoError(t, err)

	sides := map[string]int{"ufc-316-0": 1, "ufc-316-1": 2, "ufc-316-2": 1}
	for fightID, side := range sides {
		_, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: fightID, SelectedFighter: side})
		require.NoError(t, err)
	}

	resp, err := svc.Submit(userID)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Submitted)
	assert.Equal(t, "ufc-316", resp.EventID)

	bets, err := st.Bets().ByUser(userID)
	require.NoError(t, err)
	require.Len(t, bets, 3)
	for _, bet := range bets {
		assert.Equal(t, sides[bet.FightID], bet.SelectedFighter)
		assert.Equal(t, "pending", bet.Status)
	}

	session := svc.Session(userID)
	assert.Equal(t, string(picks.StateNoSelection), session.State)
	assert.Empty(t, session.Picks)
}

func TestResubmissionAppendsFreshBatch(t *testing.T) {
	svc, st := newPicksService()
	userID := uuid.New()

	for range 2 {
		_, err := svc.SelectEvent(userID, "ufc-316")
		require.NoError(t, err)
		for _, fightID := range []string{"ufc-316-0", "ufc-316-1", "ufc-316-2"} {
			_, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: fightID, SelectedFighter: 1})
			require.NoError(t, err)
		}
		_, err = svc.Submit(userID)
		require.NoError(t, err)
	}

	bets, err := st.Bets().ByUser(userID)
	require.NoError(t, err)
	assert.Len(t, bets, 6, "the ledger is append-only")
}

func TestSwitchingEventResetsSession(t *testing.T) {
	svc, _ := newPicksService()
	userID := uuid.New()

	_, err := svc.SelectEvent(userID, "ufc-316")
	require.NoError(t, err)
	_, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: "ufc-316-0", SelectedFighter: 1})
	require.NoError(t, err)

	resp, err := svc.SelectEvent(userID, "ufc-317")
	require.NoError(t, err)
	assert.Equal(t, string(picks.StateNoSelection), resp.State)
	assert.Empty(t, resp.Picks)
}

func TestBetsStats(t *testing.T) {
	svc, _ := newPicksService()
	userID := uuid.New()

	_, err := svc.SelectEvent(userID, "ufc-316")
	require.NoError(t, err)
	for _, fightID := range []string{"ufc-316-0", "ufc-316-1", "ufc-316-2"} {
		_, err = svc.SelectFighter(userID, &dto.PickRequest{FightID: fightID, SelectedFighter: 2})
		require.NoError(t, err)
	}
	_, err = svc.Submit(userID)
	require.NoError(t, err)

	resp, err := svc.Bets(userID)
	require.NoError(t, err)
	assert.Len(t, resp.Bets, 3)
	assert.Equal(t, dto.BetStats{Total: 3, Pending: 3}, resp.Stats)
}
