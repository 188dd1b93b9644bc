// Package picks tracks each user's in-progress picks for the card they are
// browsing. Sessions live in memory only; nothing here is durable until the
// picks are submitted to the bet ledger.
package picks

import (
	"sync"

	"github.com/google/uuid"
)

// State of a pick session for the selected card.
type State string

const (
	StateNoSelection  State = "no_selection"
	StatePartialPicks State = "partial_picks"
	StateAllPicksMade State = "all_picks_made"
)

// StateFor derives the session state from distinct picks versus total fights.
func StateFor(picked, total int) State {
	switch {
	case picked == 0:
		return StateNoSelection
	case picked < total:
		return StatePartialPicks
	default:
		return StateAllPicksMade
	}
}

type session struct {
	eventID string
	picks   map[string]int
}

// Manager holds pick sessions keyed by user. Safe for concurrent requests.
type Manager struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]*session
}

func NewManager() *Manager {
	return &Manager{byUser: make(map[uuid.UUID]*session)}
}

// SelectEvent switches the user's session to the given card. Any in-progress
// picks are dropped, including when re-selecting the current card.
func (m *Manager) SelectEvent(userID uuid.UUID, eventID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUser[userID] = &session{eventID: eventID, picks: make(map[string]int)}
}

// SetPick records the pick for one fight on the given card, overwriting any
// previous pick for that fight. Returns false when no card is selected or the
// session has moved to a different card since the caller looked it up.
func (m *Manager) SetPick(userID uuid.UUID, eventID, fightID string, side int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.byUser[userID]
	if !ok || sess.eventID != eventID {
		return false
	}
	sess.picks[fightID] = side
	return true
}

// Snapshot returns the selected card id and a copy of the current picks.
func (m *Manager) Snapshot(userID uuid.UUID) (string, map[string]int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.byUser[userID]
	if !ok {
		return "", map[string]int{}
	}
	picks := make(map[string]int, len(sess.picks))
	for k, v := range sess.picks {
		picks[k] = v
	}
	return sess.eventID, picks
}

// Clear resets the user's session to no selection. Called after a successful
// submission.
func (m *Manager) Clear(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byUser, userID)
}
