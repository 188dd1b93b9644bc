package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akaya/fightpicks/internal/catalog"
	"github.com/akaya/fightpicks/internal/dto"
	"github.com/akaya/fightpicks/internal/metrics"
	"github.com/akaya/fightpicks/internal/models"
	"github.com/akaya/fightpicks/internal/store"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Points awarded per settled pick.
const (
	PointsCorrectPick = 10
	PointsWrongPick   = -5
)

var ErrResultExists = errors.New("results already recorded for this event")

// ScoringService records fight results and settles pending bets. A result is
// recorded at most once per event, and only pending bets are touched, so the
// pass cannot double-award points.
type ScoringService struct {
	store       store.Store
	leaderboard *LeaderboardService
}

func NewScoringService(st store.Store, leaderboard *LeaderboardService) *ScoringService {
	return &ScoringService{store: st, leaderboard: leaderboard}
}

// RecordResult persists the winners for every fight on the card and runs the
// settlement pass in one transaction: +10 per correct pick, -5 per wrong one.
func (s *ScoringService) RecordResult(ctx context.Context, eventID string, req *dto.RecordResultRequest) (*dto.RecordResultResponse, error) {
	event, ok := catalog.Get(eventID)
	if !ok {
		return nil, ErrEventNotFound
	}

	if err := validateWinners(event, req.Winners); err != nil {
		return nil, err
	}

	if _, err := s.store.Results().ByEvent(eventID); err == nil {
		return nil, ErrResultExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing result: %w", err)
	}

	winnersJSON, err := json.Marshal(req.Winners)
	if err != nil {
		return nil, fmt.Errorf("failed to encode winners: %w", err)
	}

	var settled, won, lost int
	err = s.store.InTransaction(func(tx store.Store) error {
		if err := tx.Results().Create(&models.EventResult{
			ID:      uuid.New(),
			EventID: eventID,
			Winners: datatypes.JSON(winnersJSON),
		}); err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}

		bets, err := tx.Bets().PendingByEvent(eventID)
		if err != nil {
			return fmt.Errorf("failed to load pending bets: %w", err)
		}

		deltas := make(map[uuid.UUID]int)
		for i := range bets {
			bet := &bets[i]
			if req.Winners[bet.FightID] == bet.SelectedFighter {
				bet.Status = models.BetStatusWon
				bet.Points = PointsCorrectPick
				won++
			} else {
				bet.Status = models.BetStatusLost
				bet.Points = PointsWrongPick
				lost++
			}
			if err := tx.Bets().Save(bet); err != nil {
				return fmt.Errorf("failed to settle bet %s: %w", bet.ID, err)
			}
			deltas[bet.UserID] += bet.Points
			settled++
		}

		for userID, delta := range deltas {
			user, err := tx.Users().ByID(userID)
			if err != nil {
				return fmt.Errorf("failed to load user %s: %w", userID, err)
			}
			user.Points += delta
			if err := tx.Users().Save(user); err != nil {
				return fmt.Errorf("failed to update points for user %s: %w", userID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ScoringPasses.Inc()
	metrics.BetsSettled.WithLabelValues(models.BetStatusWon).Add(float64(won))
	metrics.BetsSettled.WithLabelValues(models.BetStatusLost).Add(float64(lost))
	s.leaderboard.Invalidate(ctx)
	slog.Info("event settled", "event_id", eventID, "settled", settled, "won", won, "lost", lost)

	return &dto.RecordResultResponse{EventID: eventID, Settled: settled}, nil
}

func validateWinners(event catalog.Event, winners map[string]int) error {
	if len(winners) != len(event.Fights) {
		return fmt.Errorf("winners must cover all %d fights on card %s", len(event.Fights), event.ID)
	}
	for fightID, side := range winners {
		if _, ok := event.Fight(fightID); !ok {
			return fmt.Errorf("fight %q is not on card %s", fightID, event.ID)
		}
		if side != 1 && side != 2 {
			return fmt.Errorf("winner for fight %q must be 1 or 2", fightID)
		}
	}
	return nil
}
