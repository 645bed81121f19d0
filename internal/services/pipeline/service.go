// Package pipeline exposes the application board to the TUI and CLI. Every
// completed move is written through to a StageSaver; if the write fails the
// move is undone so the board and the saver never disagree.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/thenoetrevino/admitdesk/internal/models"
	board "github.com/thenoetrevino/admitdesk/internal/pipeline"
)

// StageSaver records a card's new stage
type StageSaver interface {
	SaveCardStage(ctx context.Context, cardID int, stage models.StageID) error
}

// Service defines all pipeline board operations
type Service interface {
	// Read operations
	Stages() []models.Stage
	Summary() []models.StageSummary
	CardsByStage(stage models.StageID) ([]models.Application, error)
	GetCard(cardID int) (models.Application, error)
	Count() int
	Pending() (board.PendingMove, bool)

	// Gesture
	BeginMove(cardID int, source models.StageID) (board.PendingMove, error)
	CompleteMove(ctx context.Context, pm board.PendingMove, target models.StageID) (board.MoveResult, error)
	AbortMove(pm board.PendingMove) error

	// One-step movements
	MoveCard(ctx context.Context, cardID int, target models.StageID) (board.MoveResult, error)
	MoveCardToNextStage(ctx context.Context, cardID int) (board.MoveResult, error)
	MoveCardToPrevStage(ctx context.Context, cardID int) (board.MoveResult, error)

	// Stage lookup
	ResolveStage(name string) (models.Stage, error)
	SuggestStage(name string) string
}

// service implements Service interface
type service struct {
	store *board.Store
	saver StageSaver
}

// NewService creates a new pipeline service over store. A nil saver skips write-through.
func NewService(store *board.Store, saver StageSaver) Service {
	return &service{
		store: store,
		saver: saver,
	}
}

func (s *service) Stages() []models.Stage {
	return s.store.Stages()
}

func (s *service) Summary() []models.StageSummary {
	return s.store.Counts()
}

func (s *service) CardsByStage(stage models.StageID) ([]models.Application, error) {
	return s.store.CardsByStage(stage)
}

func (s *service) GetCard(cardID int) (models.Application, error) {
	if cardID <= 0 {
		return models.Application{}, ErrInvalidCardID
	}
	return s.store.Card(cardID)
}

func (s *service) Count() int {
	return s.store.Count()
}

func (s *service) Pending() (board.PendingMove, bool) {
	return s.store.Pending()
}

// BeginMove picks up a card from source
func (s *service) BeginMove(cardID int, source models.StageID) (board.PendingMove, error) {
	if cardID <= 0 {
		return board.PendingMove{}, ErrInvalidCardID
	}
	pm, err := s.store.BeginMove(cardID, source)
	if err != nil {
		return board.PendingMove{}, fmt.Errorf("failed to pick up card %d: %w", cardID, err)
	}
	slog.Debug("card picked up", "card", cardID, "stage", source, "token", pm.Token)
	return pm, nil
}

// CompleteMove drops the picked-up card on target and saves the new stage
func (s *service) CompleteMove(ctx context.Context, pm board.PendingMove, target models.StageID) (board.MoveResult, error) {
	res, err := s.store.CompleteMove(pm, target)
	if err != nil {
		return board.MoveResult{}, fmt.Errorf("failed to drop card %d: %w", pm.CardID, err)
	}
	if err := s.save(ctx, res); err != nil {
		return board.MoveResult{}, err
	}
	return res, nil
}

// AbortMove cancels the gesture in progress
func (s *service) AbortMove(pm board.PendingMove) error {
	if err := s.store.AbortMove(pm); err != nil {
		return fmt.Errorf("failed to cancel move: %w", err)
	}
	slog.Debug("card move cancelled", "card", pm.CardID, "token", pm.Token)
	return nil
}

// MoveCard moves a card to target in one step
func (s *service) MoveCard(ctx context.Context, cardID int, target models.StageID) (board.MoveResult, error) {
	if cardID <= 0 {
		return board.MoveResult{}, ErrInvalidCardID
	}
	res, err := s.store.Move(cardID, target)
	if err != nil {
		return board.MoveResult{}, fmt.Errorf("failed to move card %d: %w", cardID, err)
	}
	if err := s.save(ctx, res); err != nil {
		return board.MoveResult{}, err
	}
	return res, nil
}

// MoveCardToNextStage moves a card one stage to the right
func (s *service) MoveCardToNextStage(ctx context.Context, cardID int) (board.MoveResult, error) {
	return s.moveBy(ctx, cardID, 1)
}

// MoveCardToPrevStage moves a card one stage to the left
func (s *service) MoveCardToPrevStage(ctx context.Context, cardID int) (board.MoveResult, error) {
	return s.moveBy(ctx, cardID, -1)
}

func (s *service) moveBy(ctx context.Context, cardID, step int) (board.MoveResult, error) {
	card, err := s.GetCard(cardID)
	if err != nil {
		return board.MoveResult{}, err
	}

	stages := s.store.Stages()
	current := -1
	for i, st := range stages {
		if st.ID == card.Stage {
			current = i
			break
		}
	}

	next := current + step
	if next < 0 {
		return board.MoveResult{}, ErrAlreadyFirstStage
	}
	if next >= len(stages) {
		return board.MoveResult{}, ErrAlreadyLastStage
	}
	return s.MoveCard(ctx, cardID, stages[next].ID)
}

// save writes a completed move through to the saver, undoing it on failure
func (s *service) save(ctx context.Context, res board.MoveResult) error {
	if !res.Moved || s.saver == nil {
		return nil
	}

	if err := s.saver.SaveCardStage(ctx, res.Card.ID, res.To); err != nil {
		slog.Error("failed to save card stage", "card", res.Card.ID, "stage", res.To, "error", err)
		if undoErr := s.store.Undo(res); undoErr != nil {
			slog.Error("failed to undo card move", "card", res.Card.ID, "error", undoErr)
		}
		return fmt.Errorf("failed to save card %d stage: %w", res.Card.ID, err)
	}

	slog.Info("card moved", "card", res.Card.ID, "from", res.From, "to", res.To)
	return nil
}

// ResolveStage finds a stage by ID or title, ignoring case
func (s *service) ResolveStage(name string) (models.Stage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Stage{}, ErrEmptyStageName
	}
	for _, st := range s.store.Stages() {
		if strings.EqualFold(string(st.ID), name) || strings.EqualFold(st.Title, name) {
			return st, nil
		}
	}
	return models.Stage{}, fmt.Errorf("%w: %q", models.ErrStageNotFound, name)
}

// maxSuggestionDistance bounds how far a typo may be from a stage name
const maxSuggestionDistance = 3

// SuggestStage returns the stage ID closest to name, or "" when nothing is close
func (s *service) SuggestStage(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	best, bestDist := "", maxSuggestionDistance+1
	for _, st := range s.store.Stages() {
		for _, candidate := range []string{string(st.ID), strings.ToLower(st.Title)} {
			if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
				best, bestDist = string(st.ID), d
			}
		}
	}
	return best
}
