package catalog

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsOrderAndIDs(t *testing.T) {
	events := Events()
	require.NotEmpty(t, events)

	assert.Equal(t, "ufc-316", events[0].ID)
	assert.Equal(t, "UFC 316", events[0].Name)

	for _, ev := range events {
		require.NotEmpty(t, ev.Fights)
		for i, f := range ev.Fights {
			assert.Equal(t, fmt.Sprintf("%s-%d", ev.ID, i), f.ID)
			assert.NotEmpty(t, f.Fighter1Name)
			assert.NotEmpty(t, f.Fighter2Name)
			assert.NotEmpty(t, f.WeightDivision)
		}
	}
}

func TestGet(t *testing.T) {
	ev, ok := Get("ufc-316")
	require.True(t, ok)
	assert.Len(t, ev.Fights, 3)

	_, ok = Get("ufc-999")
	assert.False(t, ok)
}

func TestEventFightLookup(t *testing.T) {
	ev, ok := Get("ufc-316")
	require.True(t, ok)

	fight, ok := ev.Fight("ufc-316-1")
	require.True(t, ok)
	assert.Equal(t, "Julianna Peña", fight.Fighter1Name)

	_, ok = ev.Fight("ufc-317-0")
	assert.False(t, ok)
}

func TestFightJSONShape(t *testing.T) {
	ev, ok := Get("ufc-316")
	require.True(t, ok)

	raw, err := json.Marshal(ev.Fights[0])
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{
		"id", "event_date",
		"fighter1_name", "fighter1_country", "fighter1_odds", "fighter1_rank",
		"fighter2_name", "fighter2_country", "fighter2_odds", "fighter2_rank",
		"weight_division",
	} {
		assert.Contains(t, m, key)
	}
}

func TestEventsReturnsCopy(t *testing.T) {
	events := Events()
	events[0].Name = "mutated"

	again := Events()
	assert.Equal(t, "UFC 316", again[0].Name)
}
