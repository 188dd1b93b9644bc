// Package catalog holds the fight-card data. Cards are compiled in: there is
// no network or file I/O, and the data is read-only at runtime.
package catalog

import (
	"fmt"
	"strings"
)

// Fight is one bout on a card. Rank "C" marks the champion, "#N" a ranked
// contender, empty an unranked fighter. Odds are American-style strings,
// "-" when unavailable. Country fields are blank on the current cards.
type Fight struct {
	ID              string `json:"id"`
	EventDate       string `json:"event_date"`
	Fighter1Name    string `json:"fighter1_name"`
	Fighter1Country string `json:"fighter1_country"`
	Fighter1Odds    string `json:"fighter1_odds"`
	Fighter1Rank    string `json:"fighter1_rank"`
	Fighter2Name    string `json:"fighter2_name"`
	Fighter2Country string `json:"fighter2_country"`
	Fighter2Odds    string `json:"fighter2_odds"`
	Fighter2Rank    string `json:"fighter2_rank"`
	WeightDivision  string `json:"weight_division"`
}

// Event is a named, ordered fight card.
type Event struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Fights []Fight `json:"fights"`
}

type seedCard struct {
	id     string
	fights []Fight
}

var seedCards = []seedCard{
	{
		id: "ufc-316",
		fights: []Fight{
			{
				EventDate:      "Sat, Jun 7 / 10:00 PM EDT",
				Fighter1Name:   "Merab Dvalishvili",
				Fighter1Odds:   "-325",
				Fighter1Rank:   "C",
				Fighter2Name:   "Sean O'Malley",
				Fighter2Odds:   "+260",
				Fighter2Rank:   "#1",
				WeightDivision: "Bantamweight Title Bout",
			},
			{
				EventDate:      "Sat, Jun 7 / 10:00 PM EDT",
				Fighter1Name:   "Julianna Peña",
				Fighter1Odds:   "+455",
				Fighter1Rank:   "C",
				Fighter2Name:   "Kayla Harrison",
				Fighter2Odds:   "-625",
				Fighter2Rank:   "#2",
				WeightDivision: "Women's Bantamweight Title Bout",
			},
			{
				EventDate:      "Sat, Jun 7 / 10:00 PM EDT",
				Fighter1Name:   "Kelvin Gastelum",
				Fighter1Odds:   "+310",
				Fighter1Rank:   "",
				Fighter2Name:   "Joe Pyfer",
				Fighter2Odds:   "-395",
				Fighter2Rank:   "",
				WeightDivision: "Middleweight Bout",
			},
		},
	},
	{
		id: "ufc-317",
		fights: []Fight{
			{
				EventDate:      "Sat, Jun 28 / 10:00 PM EDT",
				Fighter1Name:   "Ilia Topuria",
				Fighter1Odds:   "-340",
				Fighter1Rank:   "",
				Fighter2Name:   "Charles Oliveira",
				Fighter2Odds:   "+270",
				Fighter2Rank:   "#2",
				WeightDivision: "Lightweight Title Bout",
			},
			{
				EventDate:      "Sat, Jun 28 / 10:00 PM EDT",
				Fighter1Name:   "Alexandre Pantoja",
				Fighter1Odds:   "-265",
				Fighter1Rank:   "C",
				Fighter2Name:   "Kai Kara-France",
				Fighter2Odds:   "+215",
				Fighter2Rank:   "#3",
				WeightDivision: "Flyweight Title Bout",
			},
			{
				EventDate:      "Sat, Jun 28 / 10:00 PM EDT",
				Fighter1Name:   "Brandon Royval",
				Fighter1Odds:   "-",
				Fighter1Rank:   "#1",
				Fighter2Name:   "Joshua Van",
				Fighter2Odds:   "-",
				Fighter2Rank:   "#13",
				WeightDivision: "Flyweight Bout",
			},
		},
	},
}

var (
	events  []Event
	eventBy map[string]Event
)

func init() {
	eventBy = make(map[string]Event, len(seedCards))
	for _, card := range seedCards {
		ev := Event{
			ID:     card.id,
			Name:   strings.ToUpper(strings.ReplaceAll(card.id, "-", " ")),
			Fights: make([]Fight, len(card.fights)),
		}
		for i, f := range card.fights {
			f.ID = fmt.Sprintf("%s-%d", card.id, i)
			ev.Fights[i] = f
		}
		events = append(events, ev)
		eventBy[ev.ID] = ev
	}
}

// Events returns all cards in fixed card order.
func Events() []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// Get looks up a card by id.
func Get(id string) (Event, bool) {
	ev, ok := eventBy[id]
	return ev, ok
}

// Fight looks up a single bout by event and fight id.
func (e Event) Fight(fightID string) (Fight, bool) {
	for _, f := range e.Fights {
		if f.ID == fightID {
			return f, true
		}
	}
	return Fight{}, false
}
