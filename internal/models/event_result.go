package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventResult records the winning side of every fight on a card, exactly once
// per event. Winners is a JSON object mapping fight id to 1 or 2.
type EventResult struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID   string         `gorm:"size:50;not null;uniqueIndex" json:"event_id"`
	Winners   datatypes.JSON `gorm:"type:jsonb;not null" json:"winners"`
	CreatedAt time.Time      `json:"created_at"`
}
