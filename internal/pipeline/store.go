// Package pipeline holds the application pipeline board: a fixed, ordered set
// of stages, each owning an ordered list of cards.
//
// Cards change stage through a three-step gesture:
//
//	BeginMove    Idle    -> Pending   (card picked up)
//	CompleteMove Pending -> Idle      (card dropped on a stage)
//	AbortMove    Pending -> Idle      (gesture cancelled)
//
// A move either relocates the card entirely or leaves the board untouched.
package pipeline

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/thenoetrevino/admitdesk/internal/models"
)

// PendingMove is the transient state of a gesture in progress
type PendingMove struct {
	Token  uuid.UUID
	CardID int
	Source models.StageID
}

// MoveResult describes a completed drop
type MoveResult struct {
	Card   models.Application // The card after the move
	From   models.StageID
	To     models.StageID
	Moved  bool // False for a self-drop
	Source int  // Index the card held in the source stage
	Target int  // Index of the card within the target stage
}

// Store is the in-memory board. It is not safe for concurrent use; callers
// process one gesture at a time.
type Store struct {
	stages  []models.Stage
	cards   map[models.StageID][]models.Application
	index   map[int]models.StageID
	pending *PendingMove
}

// NewStore builds a board from the stage list and cards.
// Cards keep their input order within each stage.
func NewStore(stages []models.Stage, cards []models.Application) (*Store, error) {
	s := &Store{
		stages: slices.Clone(stages),
		cards:  make(map[models.StageID][]models.Application, len(stages)),
		index:  make(map[int]models.StageID, len(cards)),
	}

	for _, st := range stages {
		if _, ok := s.cards[st.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStage, st.ID)
		}
		s.cards[st.ID] = []models.Application{}
	}

	for _, c := range cards {
		if _, ok := s.cards[c.Stage]; !ok {
			return nil, fmt.Errorf("card %d: %w: %q", c.ID, ErrStageNotFound, c.Stage)
		}
		if _, ok := s.index[c.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCard, c.ID)
		}
		s.cards[c.Stage] = append(s.cards[c.Stage], c.Clone())
		s.index[c.ID] = c.Stage
	}

	return s, nil
}

// Stages returns the stages in display order
func (s *Store) Stages() []models.Stage {
	return slices.Clone(s.stages)
}

// Stage returns one stage by ID
func (s *Store) Stage(id models.StageID) (models.Stage, error) {
	for _, st := range s.stages {
		if st.ID == id {
			return st, nil
		}
	}
	return models.Stage{}, fmt.Errorf("%w: %q", ErrStageNotFound, id)
}

// HasStage reports whether id is one of the board's stages
func (s *Store) HasStage(id models.StageID) bool {
	_, ok := s.cards[id]
	return ok
}

// CardsByStage returns copies of the cards in a stage, in order
func (s *Store) CardsByStage(id models.StageID) ([]models.Application, error) {
	cards, ok := s.cards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStageNotFound, id)
	}
	out := make([]models.Application, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out, nil
}

// Card returns a copy of one card
func (s *Store) Card(id int) (models.Application, error) {
	stage, ok := s.index[id]
	if !ok {
		return models.Application{}, fmt.Errorf("%w: %d", ErrCardNotFound, id)
	}
	idx := s.position(stage, id)
	return s.cards[stage][idx].Clone(), nil
}

// Count returns the total number of cards on the board
func (s *Store) Count() int {
	return len(s.index)
}

// Counts returns the number of cards per stage, in stage order
func (s *Store) Counts() []models.StageSummary {
	out := make([]models.StageSummary, 0, len(s.stages))
	for _, st := range s.stages {
		out = append(out, models.StageSummary{Stage: st, Count: len(s.cards[st.ID])})
	}
	return out
}

// Pending returns the gesture in progress, if any
func (s *Store) Pending() (PendingMove, bool) {
	if s.pending == nil {
		return PendingMove{}, false
	}
	return *s.pending, true
}

// BeginMove picks up a card. The card must currently be in source.
func (s *Store) BeginMove(cardID int, source models.StageID) (PendingMove, error) {
	if s.pending != nil {
		return PendingMove{}, ErrMoveInProgress
	}
	if err := s.checkMove(cardID, source); err != nil {
		return PendingMove{}, err
	}

	pm := PendingMove{Token: uuid.New(), CardID: cardID, Source: source}
	s.pending = &pm
	return pm, nil
}

// CompleteMove drops the card on target. pm must be the live gesture; an
// aborted, finished or never-begun gesture changes nothing. Dropping on the
// source stage is a no-op. On any error the board is unchanged. Once pm is
// accepted the gesture ends, whatever the outcome.
func (s *Store) CompleteMove(pm PendingMove, target models.StageID) (MoveResult, error) {
	if s.pending == nil {
		return MoveResult{}, ErrNoPendingMove
	}
	if s.pending.Token != pm.Token {
		return MoveResult{}, ErrStaleMove
	}
	s.pending = nil

	if err := s.checkMove(pm.CardID, pm.Source); err != nil {
		return MoveResult{}, err
	}
	if !s.HasStage(target) {
		return MoveResult{}, fmt.Errorf("%w: %q", ErrStageNotFound, target)
	}

	idx := s.position(pm.Source, pm.CardID)
	if pm.Source == target {
		return MoveResult{
			Card:   s.cards[target][idx].Clone(),
			From:   pm.Source,
			To:     target,
			Source: idx,
			Target: idx,
		}, nil
	}

	card := s.cards[pm.Source][idx]
	card.Stage = target

	s.cards[pm.Source] = slices.Delete(s.cards[pm.Source], idx, idx+1)
	s.cards[target] = append(s.cards[target], card)
	s.index[card.ID] = target

	return MoveResult{
		Card:   card.Clone(),
		From:   pm.Source,
		To:     target,
		Moved:  true,
		Source: idx,
		Target: len(s.cards[target]) - 1,
	}, nil
}

// Undo reverts a completed move, putting the card back at its former index
// in the source stage. Undoing a self-drop does nothing.
func (s *Store) Undo(res MoveResult) error {
	if !res.Moved {
		return nil
	}
	current, ok := s.index[res.Card.ID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrCardNotFound, res.Card.ID)
	}
	if current != res.To {
		return fmt.Errorf("%w: card %d is in %q", ErrWrongSourceStage, res.Card.ID, current)
	}
	if !s.HasStage(res.From) {
		return fmt.Errorf("%w: %q", ErrStageNotFound, res.From)
	}

	idx := s.position(res.To, res.Card.ID)
	card := s.cards[res.To][idx]
	card.Stage = res.From
	s.cards[res.To] = slices.Delete(s.cards[res.To], idx, idx+1)

	at := min(res.Source, len(s.cards[res.From]))
	s.cards[res.From] = slices.Insert(s.cards[res.From], at, card)
	s.index[card.ID] = res.From
	return nil
}

// AbortMove cancels the gesture without touching the board
func (s *Store) AbortMove(pm PendingMove) error {
	if s.pending == nil {
		return ErrNoPendingMove
	}
	if s.pending.Token != pm.Token {
		return ErrStaleMove
	}
	s.pending = nil
	return nil
}

// Move relocates a card in one step (begin + complete)
func (s *Store) Move(cardID int, target models.StageID) (MoveResult, error) {
	source, ok := s.index[cardID]
	if !ok {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrCardNotFound, cardID)
	}
	pm, err := s.BeginMove(cardID, source)
	if err != nil {
		return MoveResult{}, err
	}
	return s.CompleteMove(pm, target)
}

// Snapshot returns a deep copy of stage membership
func (s *Store) Snapshot() map[models.StageID][]models.Application {
	out := make(map[models.StageID][]models.Application, len(s.cards))
	for id := range s.cards {
		out[id], _ = s.CardsByStage(id)
	}
	return out
}

// checkMove validates that the card exists and sits in source
func (s *Store) checkMove(cardID int, source models.StageID) error {
	current, ok := s.index[cardID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrCardNotFound, cardID)
	}
	if !s.HasStage(source) {
		return fmt.Errorf("%w: %q", ErrStageNotFound, source)
	}
	if current != source {
		return fmt.Errorf("%w: card %d is in %q", ErrWrongSourceStage, cardID, current)
	}
	return nil
}

// position returns the index of the card within its stage
func (s *Store) position(stage models.StageID, cardID int) int {
	return slices.IndexFunc(s.cards[stage], func(c models.Application) bool {
		return c.ID == cardID
	})
}
