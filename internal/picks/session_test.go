package picks

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStateFor(t *testing.T) {
	tests := []struct {
		name   string
		picked int
		total  int
		want   State
	}{
		{"no picks", 0, 3, StateNoSelection},
		{"one of three", 1, 3, StatePartialPicks},
		{"two of three", 2, 3, StatePartialPicks},
		{"all picked", 3, 3, StateAllPicksMade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateFor(tt.picked, tt.total))
		})
	}
}

func TestSetPickRequiresSelectedEvent(t *testing.T) {
	m := NewManager()
	userID := uuid.New()

	assert.False(t, m.SetPick(userID, "ufc-316", "ufc-316-0", 1))

	m.SelectEvent(userID, "ufc-316")
	assert.True(t, m.SetPick(userID, "ufc-316", "ufc-316-0", 1))
}

func TestSetPickRejectsStaleCard(t *testing.T) {
	m := NewManager()
	userID := uuid.New()
	m.SelectEvent(userID, "ufc-316")

	m.SelectEvent(userID, "ufc-317")
	assert.False(t, m.SetPick(userID, "ufc-316", "ufc-316-0", 1))

	_, picks := m.Snapshot(userID)
	assert.Empty(t, picks)
}

func TestSetPickOverwrites(t *testing.T) {
	m := NewManager()
	userID := uuid.New()
	m.SelectEvent(userID, "ufc-316")

	m.SetPick(userID, "ufc-316", "ufc-316-0", 1)
	m.SetPick(userID, "ufc-316", "ufc-316-0", 2)

	_, picks := m.Snapshot(userID)
	assert.Equal(t, map[string]int{"ufc-316-0": 2}, picks)
}

func TestSwitchingEventClearsPicks(t *testing.T) {
	m := NewManager()
	userID := uuid.New()

	m.SelectEvent(userID, "ufc-316")
	m.SetPick(userID, "ufc-316", "ufc-316-0", 1)
	m.SetPick(userID, "ufc-316", "ufc-316-1", 2)

	m.SelectEvent(userID, "ufc-317")
	eventID, picks := m.Snapshot(userID)
	assert.Equal(t, "ufc-317", eventID)
	assert.Empty(t, picks)
}

func TestReselectingSameEventClearsPicks(t *testing.T) {
	m := NewManager()
	userID := uuid.New()

	m.SelectEvent(userID, "ufc-316")
	m.SetPick(userID, "ufc-316", "ufc-316-0", 1)

	m.SelectEvent(userID, "ufc-316")
	_, picks := m.Snapshot(userID)
	assert.Empty(t, picks)
}

func TestSnapshotIsACopy(t *testing.T) {
	m := NewManager()
	userID := uuid.New()
	m.SelectEvent(userID, "ufc-316")
	m.SetPick(userID, "ufc-316", "ufc-316-0", 1)

	_, picks := m.Snapshot(userID)
	picks["ufc-316-1"] = 2

	_, again := m.Snapshot(userID)
	assert.Len(t, again, 1)
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	m := NewManager()
	alice := uuid.New()
	bob := uuid.New()

	m.SelectEvent(alice, "ufc-316")
	m.SetPick(alice, "ufc-316", "ufc-316-0", 1)
	m.SelectEvent(bob, "ufc-317")

	eventID, picks := m.Snapshot(bob)
	assert.Equal(t, "ufc-317", eventID)
	assert.Empty(t, picks)

	m.Clear(alice)
	eventID, _ = m.Snapshot(alice)
	assert.Empty(t, eventID)
}
