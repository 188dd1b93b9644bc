// Package memory is an in-memory store used by tests. It mirrors the column
// defaults the Postgres schema would apply (generated ids, timestamps).
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/akaya/fightpicks/internal/models"
	"github.com/akaya/fightpicks/internal/store"
	"github.com/google/uuid"
)

type Store struct {
	mu      sync.Mutex
	users   map[uuid.UUID]models.User
	bets    map[uuid.UUID]models.Bet
	tokens  map[uuid.UUID]models.RefreshToken
	results map[string]models.EventResult
}

func New() *Store {
	return &Store{
		users:   make(map[uuid.UUID]models.User),
		bets:    make(map[uuid.UUID]models.Bet),
		tokens:  make(map[uuid.UUID]models.RefreshToken),
		results: make(map[string]models.EventResult),
	}
}

func (s *Store) Users() store.UserStore                 { return &userStore{s} }
func (s *Store) Bets() store.BetStore                   { return &betStore{s} }
func (s *Store) RefreshTokens() store.RefreshTokenStore { return &tokenStore{s} }
func (s *Store) Results() store.ResultStore             { return &resultStore{s} }

// InTransaction runs fn directly. The single-writer in-memory store has no
// rollback; tests that exercise transactional failures use error paths that
// fire before any write.
func (s *Store) InTransaction(fn func(store.Store) error) error {
	return fn(s)
}

func fill(id *uuid.UUID, createdAt *time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
}

type userStore struct {
	s *Store
}

func (u *userStore) Create(user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	fill(&user.ID, &user.CreatedAt)
	user.UpdatedAt = user.CreatedAt
	u.s.users[user.ID] = *user
	return nil
}

func (u *userStore) ByEmail(email string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, usr := range u.s.users {
		if usr.Email == email {
			out := usr
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u *userStore) ByID(id uuid.UUID) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	usr, ok := u.s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := usr
	return &out, nil
}

func (u *userStore) Save(user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	user.UpdatedAt = time.Now().UTC()
	u.s.users[user.ID] = *user
	return nil
}

func (u *userStore) Count() (int64, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	return int64(len(u.s.users)), nil
}

func (u *userStore) ListByPoints() ([]models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	users := make([]models.User, 0, len(u.s.users))
	for _, usr := range u.s.users {
		users = append(users, usr)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Points != users[j].Points {
			return users[i].Points > users[j].Points
		}
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		}
		return users[i].ID.String() < users[j].ID.String()
	})
	return users, nil
}

type betStore struct {
	s *Store
}

func (b *betStore) CreateBatch(bets []models.Bet) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	for i := range bets {
		fill(&bets[i].ID, &bets[i].CreatedAt)
		if bets[i].Status == "" {
			bets[i].Status = models.BetStatusPending
		}
		b.s.bets[bets[i].ID] = bets[i]
	}
	return nil
}

func (b *betStore) ByUser(userID uuid.UUID) ([]models.Bet, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	var bets []models.Bet
	for _, bet := range b.s.bets {
		if bet.UserID == userID {
			bets = append(bets, bet)
		}
	}
	sortBetsNewestFirst(bets)
	return bets, nil
}

func (b *betStore) PendingByEvent(eventID string) ([]models.Bet, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	var bets []models.Bet
	for _, bet := range b.s.bets {
		if bet.EventID == eventID && bet.Status == models.BetStatusPending {
			bets = append(bets, bet)
		}
	}
	sortBets(bets)
	return bets, nil
}

func (b *betStore) Save(bet *models.Bet) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	if _, ok := b.s.bets[bet.ID]; !ok {
		return store.ErrNotFound
	}
	b.s.bets[bet.ID] = *bet
	return nil
}

func sortBets(bets []models.Bet) {
	sort.Slice(bets, func(i, j int) bool {
		if !bets[i].CreatedAt.Equal(bets[j].CreatedAt) {
			return bets[i].CreatedAt.Before(bets[j].CreatedAt)
		}
		return bets[i].ID.String() < bets[j].ID.String()
	})
}

func sortBetsNewestFirst(bets []models.Bet) {
	sort.Slice(bets, func(i, j int) bool {
		if !bets[i].CreatedAt.Equal(bets[j].CreatedAt) {
			return bets[i].CreatedAt.After(bets[j].CreatedAt)
		}
		return bets[i].ID.String() < bets[j].ID.String()
	})
}

type tokenStore struct {
	s *Store
}

func (t *tokenStore) Create(token *models.RefreshToken) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	fill(&token.ID, &token.CreatedAt)
	t.s.tokens[token.ID] = *token
	return nil
}

func (t *tokenStore) ByHash(tokenHash string) (*models.RefreshToken, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, tok := range t.s.tokens {
		if tok.TokenHash == tokenHash && !tok.Revoked {
			out := tok
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (t *tokenStore) Revoke(id uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	tok, ok := t.s.tokens[id]
	if !ok {
		return nil
	}
	tok.Revoked = true
	t.s.tokens[id] = tok
	return nil
}

func (t *tokenStore) RevokeByHash(tokenHash string) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for id, tok := range t.s.tokens {
		if tok.TokenHash == tokenHash {
			tok.Revoked = true
			t.s.tokens[id] = tok
		}
	}
	return nil
}

type resultStore struct {
	s *Store
}

func (r *resultStore) Create(result *models.EventResult) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	fill(&result.ID, &result.CreatedAt)
	r.s.results[result.EventID] = *result
	return nil
}

func (r *resultStore) ByEvent(eventID string) (*models.EventResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res, ok := r.s.results[eventID]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := res
	return &out, nil
}
