// Package gormstore is the Postgres-backed store implementation.
package gormstore

import (
	"errors"

	"github.com/akaya/fightpicks/internal/models"
	"github.com/akaya/fightpicks/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() store.UserStore                 { return &userStore{db: s.db} }
func (s *Store) Bets() store.BetStore                   { return &betStore{db: s.db} }
func (s *Store) RefreshTokens() store.RefreshTokenStore { return &tokenStore{db: s.db} }
func (s *Store) Results() store.ResultStore             { return &resultStore{db: s.db} }

func (s *Store) InTransaction(fn func(store.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *userStore) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *userStore) ByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *userStore) Save(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *userStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.User{}).Count(&n).Error
	return n, err
}

func (s *userStore) ListByPoints() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("points DESC, created_at ASC, id ASC").Find(&users).Error
	return users, err
}

type betStore struct {
	db *gorm.DB
}

func (s *betStore) CreateBatch(bets []models.Bet) error {
	if len(bets) == 0 {
		return nil
	}
	return s.db.Create(&bets).Error
}

func (s *betStore) ByUser(userID uuid.UUID) ([]models.Bet, error) {
	var bets []models.Bet
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC, id ASC").Find(&bets).Error
	return bets, err
}

func (s *betStore) PendingByEvent(eventID string) ([]models.Bet, error) {
	var bets []models.Bet
	err := s.db.Where("event_id = ? AND status = ?", eventID, models.BetStatusPending).
		Order("created_at ASC, id ASC").Find(&bets).Error
	return bets, err
}

func (s *betStore) Save(bet *models.Bet) error {
	return s.db.Save(bet).Error
}

type tokenStore struct {
	db *gorm.DB
}

func (s *tokenStore) Create(token *models.RefreshToken) error {
	return s.db.Create(token).Error
}

func (s *tokenStore) ByHash(tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&token).Error; err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

func (s *tokenStore) Revoke(id uuid.UUID) error {
	return s.db.Model(&models.RefreshToken{}).Where("id = ?", id).Update("revoked", true).Error
}

func (s *tokenStore) RevokeByHash(tokenHash string) error {
	return s.db.Model(&models.RefreshToken{}).Where("token_hash = ?", tokenHash).Update("revoked", true).Error
}

type resultStore struct {
	db *gorm.DB
}

func (s *resultStore) Create(result *models.EventResult) error {
	return s.db.Create(result).Error
}

func (s *resultStore) ByEvent(eventID string) (*models.EventResult, error) {
	var result models.EventResult
	if err := s.db.Where("event_id = ?", eventID).First(&result).Error; err != nil {
		return nil, translate(err)
	}
	return &result, nil
}
