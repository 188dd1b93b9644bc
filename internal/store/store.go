// Package store defines the persistence boundary. Services only see these
// interfaces; the gormstore implementation backs production, the memory
// implementation backs tests.
package store

import (
	"errors"

	"github.com/akaya/fightpicks/internal/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned by lookups that match nothing. Implementations
// translate their driver's not-found signal to this sentinel.
var ErrNotFound = errors.New("record not found")

type Store interface {
	Users() UserStore
	Bets() BetStore
	RefreshTokens() RefreshTokenStore
	Results() ResultStore

	// InTransaction runs fn against a transactional view of the store.
	// An error from fn rolls everything back.
	InTransaction(fn func(Store) error) error
}

type UserStore interface {
	Create(user *models.User) error
	ByEmail(email string) (*models.User, error)
	ByID(id uuid.UUID) (*models.User, error)
	Save(user *models.User) error
	Count() (int64, error)

	// ListByPoints returns every user ordered by points descending, with a
	// deterministic tie-break: created_at ascending, then id ascending.
	ListByPoints() ([]models.User, error)
}

type BetStore interface {
	CreateBatch(bets []models.Bet) error
	// ByUser returns the user's bets newest first: created_at descending,
	// then id ascending.
	ByUser(userID uuid.UUID) ([]models.Bet, error)
	PendingByEvent(eventID string) ([]models.Bet, error)
	Save(bet *models.Bet) error
}

type RefreshTokenStore interface {
	Create(token *models.RefreshToken) error
	ByHash(tokenHash string) (*models.RefreshToken, error)
	Revoke(id uuid.UUID) error
	RevokeByHash(tokenHash string) error
}

type ResultStore interface {
	Create(result *models.EventResult) error
	ByEvent(eventID string) (*models.EventResult, error)
}
