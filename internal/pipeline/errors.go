package pipeline

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/admitdesk/internal/models"
)

// Move protocol errors
var (
	// ErrCardNotFound indicates an unknown card ID
	ErrCardNotFound = models.ErrCardNotFound

	// ErrStageNotFound indicates a stage outside the board's closed set
	ErrStageNotFound = models.ErrStageNotFound

	// ErrMoveInProgress indicates a gesture is already pending
	ErrMoveInProgress = errors.New("another card is already being moved")

	// ErrNoPendingMove indicates an abort or drop with no gesture in progress
	ErrNoPendingMove = errors.New("no move in progress")

	// ErrStaleMove indicates the pending move no longer describes the board
	ErrStaleMove = errors.New("pending move is stale")

	// ErrWrongSourceStage indicates the card is not in the stage the gesture started from
	ErrWrongSourceStage = fmt.Errorf("%w: card is not in the source stage", ErrStaleMove)

	// ErrDuplicateCard indicates two cards share an ID
	ErrDuplicateCard = errors.New("duplicate card id")

	// ErrDuplicateStage indicates two stages share an ID
	ErrDuplicateStage = errors.New("duplicate stage id")
)
