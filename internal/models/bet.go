package models

import (
	"time"

	"github.com/google/uuid"
)

// Bet statuses. A bet stays pending until a settlement pass runs for its event.
const (
	BetStatusPending = "pending"
	BetStatusWon     = "won"
	BetStatusLost    = "lost"
)

// Bet is one pick for one fight. The ledger is append-only: rows are created
// at submission and only the settlement pass ever writes Status/Points.
type Bet struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_bets_user" json:"user_id"`
	EventID         string    `gorm:"size:50;not null;index:idx_bets_event_status" json:"event_id"`
	FightID         string    `gorm:"size:60;not null" json:"fight_id"`
	SelectedFighter int       `gorm:"not null" json:"selected_fighter"`
	Status          string    `gorm:"size:10;not null;default:'pending';index:idx_bets_event_status" json:"status"`
	Points          int       `gorm:"not null;default:0" json:"points"`
	CreatedAt       time.Time `json:"created_at"`
}
