package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/akaya/fightpicks/internal/catalog"
	"github.com/akaya/fightpicks/internal/dto"
	"github.com/akaya/fightpicks/internal/metrics"
	"github.com/akaya/fightpicks/internal/models"
	"github.com/akaya/fightpicks/internal/picks"
	"github.com/akaya/fightpicks/internal/store"
	"github.com/google/uuid"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrIncompletePicks = errors.New("every fight needs a pick before submitting")
)

// PicksService drives the per-user pick session and turns a complete pick set
// into ledger rows.
type PicksService struct {
	store    store.Store
	sessions *picks.Manager
}

func NewPicksService(st store.Store, sessions *picks.Manager) *PicksService {
	return &PicksService{store: st, sessions: sessions}
}

// SelectEvent switches the user to the given card and drops any in-progress
// picks, including when re-selecting the same card.
func (s *PicksService) SelectEvent(userID uuid.UUID, eventID string) (*dto.PickSessionResponse, error) {
	if _, ok := catalog.Get(eventID); !ok {
		return nil, ErrEventNotFound
	}
	s.sessions.SelectEvent(userID, eventID)
	return s.Session(userID), nil
}

// SelectFighter sets or overwrites the pick for one fight on the selected
// card.
func (s *PicksService) SelectFighter(userID uuid.UUID, req *dto.PickRequest) (*dto.PickSessionResponse, error) {
	if req.SelectedFighter != 1 && req.SelectedFighter != 2 {
		return nil, errors.New("selected_fighter must be 1 or 2")
	}

	eventID, _ := s.sessions.Snapshot(userID)
	if eventID == "" {
		return nil, errors.New("select an event before picking fighters")
	}

	event, ok := catalog.Get(eventID)
	if !ok {
		return nil, ErrEventNotFound
	}
	if _, ok := event.Fight(req.FightID); !ok {
		return nil, fmt.Errorf("fight %q is not on card %s", req.FightID, eventID)
	}

	if !s.sessions.SetPick(userID, eventID, req.FightID, req.SelectedFighter) {
		return nil, errors.New("select an event before picking fighters")
	}
	return s.Session(userID), nil
}

// Submit appends one bet per fight to the ledger and resets the session.
// It fails while any fight is missing a pick. Submissions are append-only:
// submitting the same card again writes a fresh batch.
func (s *PicksService) Submit(userID uuid.UUID) (*dto.SubmitResponse, error) {
	eventID, picked := s.sessions.Snapshot(userID)
	if eventID == "" {
		return nil, ErrIncompletePicks
	}

	event, ok := catalog.Get(eventID)
	if !ok {
		return nil, ErrEventNotFound
	}
	if len(picked) != len(event.Fights) {
		return nil, ErrIncompletePicks
	}

	// Card order, not map order, so ledger rows line up with the card.
	bets := make([]models.Bet, 0, len(event.Fights))
	for _, fight := range event.Fights {
		side, ok := picked[fight.ID]
		if !ok {
			return nil, ErrIncompletePicks
		}
		bets = append(bets, models.Bet{
			ID:              uuid.New(),
			UserID:          userID,
			EventID:         eventID,
			FightID:         fight.ID,
			SelectedFighter: side,
			Status:          models.BetStatusPending,
		})
	}

	if err := s.store.Bets().CreateBatch(bets); err != nil {
		return nil, fmt.Errorf("failed to save bets: %w", err)
	}

	s.sessions.Clear(userID)
	metrics.BetsSubmitted.Add(float64(len(bets)))
	slog.Info("picks submitted", "user_id", userID.String(), "event_id", eventID, "bets", len(bets))

	return &dto.SubmitResponse{EventID: eventID, Submitted: len(bets)}, nil
}

// Session reads back the current pick state for rendering.
func (s *PicksService) Session(userID uuid.UUID) *dto.PickSessionResponse {
	eventID, picked := s.sessions.Snapshot(userID)
	resp := &dto.PickSessionResponse{
		EventID: eventID,
		Picks:   picked,
	}
	if eventID == "" {
		resp.State = string(picks.StateNoSelection)
		return resp
	}
	event, ok := catalog.Get(eventID)
	if !ok {
		resp.State = string(picks.StateNoSelection)
		return resp
	}
	resp.PickCount = len(picked)
	resp.FightCount = len(event.Fights)
	resp.State = string(picks.StateFor(len(picked), len(event.Fights)))
	return resp
}

// Bets returns the caller's ledger, newest first, with win/loss totals for
// the profile screen.
func (s *PicksService) Bets(userID uuid.UUID) (*dto.BetListResponse, error) {
	bets, err := s.store.Bets().ByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bets: %w", err)
	}

	resp := &dto.BetListResponse{Bets: make([]dto.BetResponse, 0, len(bets))}
	for _, b := range bets {
		resp.Bets = append(resp.Bets, dto.BetResponse{
			ID:              b.ID,
			EventID:         b.EventID,
			FightID:         b.FightID,
			SelectedFighter: b.SelectedFighter,
			Status:          b.Status,
			Points:          b.Points,
			CreatedAt:       b.CreatedAt,
		})
		resp.Stats.Total++
		switch b.Status {
		case models.BetStatusWon:
			resp.Stats.Won++
		case models.BetStatusLost:
			resp.Stats.Lost++
		default:
			resp.Stats.Pending++
		}
	}
	return resp, nil
}
