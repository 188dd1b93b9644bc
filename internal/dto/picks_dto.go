package dto

import (
	"time"

	"github.com/google/uuid"
)

type SelectEventRequest struct {
	EventID string `json:"event_id"`
}

type PickRequest struct {
	FightID         string `json:"fight_id"`
	SelectedFighter int    `json:"selected_fighter"`
}

// PickSessionResponse is the read-back of a user's in-progress picks.
type PickSessionResponse struct {
	EventID    string         `json:"event_id,omitempty"`
	State      string         `json:"state"`
	Picks      map[string]int `json:"picks"`
	PickCount  int            `json:"pick_count"`
	FightCount int            `json:"fight_count"`
}

type SubmitResponse struct {
	EventID   string `json:"event_id"`
	Submitted int    `json:"submitted"`
}

type BetResponse struct {
	ID              uuid.UUID `json:"id"`
	EventID         string    `json:"event_id"`
	FightID         string    `json:"fight_id"`
	SelectedFighter int       `json:"selected_fighter"`
	Status          string    `json:"status"`
	Points          int       `json:"points"`
	CreatedAt       time.Time `json:"created_at"`
}

// BetStats summarizes a user's ledger for the profile screen.
type BetStats struct {
	Total   int `json:"total"`
	Won     int `json:"won"`
	Lost    int `json:"lost"`
	Pending int `json:"pending"`
}

type BetListResponse struct {
	Bets  []BetResponse `json:"bets"`
	Stats BetStats      `json:"stats"`
}

type RecordResultRequest struct {
	Winners map[string]int `json:"winners"`
}

type RecordResultResponse struct {
	EventID string `json:"event_id"`
	Settled int    `json:"settled"`
}
