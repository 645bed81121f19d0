package state

import board "github.com/thenoetrevino/admitdesk/internal/pipeline"

// BoardState tracks a card picked up on the pipeline board.
// While a move is pending the user steers a drop target across columns.
type BoardState struct {
	pending *board.PendingMove
	target  int
}

// NewBoardState creates a board with no card picked up.
func NewBoardState() *BoardState {
	return &BoardState{}
}

// PickUp records a pending move whose card sits in column.
func (s *BoardState) PickUp(pm board.PendingMove, column int) {
	s.pending = &pm
	s.target = column
}

// Pending returns the pending move, if any.
func (s *BoardState) Pending() (board.PendingMove, bool) {
	if s.pending == nil {
		return board.PendingMove{}, false
	}
	return *s.pending, true
}

// IsMoving reports whether a card is picked up.
func (s *BoardState) IsMoving() bool {
	return s.pending != nil
}

// Target returns the index of the drop target column.
func (s *BoardState) Target() int {
	return s.target
}

// MoveTarget shifts the drop target by delta within n columns.
func (s *BoardState) MoveTarget(delta, n int) {
	s.target = Clamp(s.target+delta, n)
}

// Clear forgets the pending move.
func (s *BoardState) Clear() {
	s.pending = nil
	s.target = 0
}
