package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered player. Points are only touched at registration
// (zero) and by the settlement pass after an event's results are recorded.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Avatar    string    `gorm:"size:500" json:"avatar,omitempty"`
	Points    int       `gorm:"not null;default:0" json:"points"`
	Role      string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
