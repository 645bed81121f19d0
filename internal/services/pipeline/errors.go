package pipeline

import "errors"

// Pipeline service errors
var (
	ErrInvalidCardID  = errors.New("invalid card ID")
	ErrEmptyStageName = errors.New("stage name cannot be empty")
)

// Movement-related errors
var (
	// ErrAlreadyFirstStage indicates that the card is already in the first stage
	ErrAlreadyFirstStage = errors.New("card is already in the first stage")

	// ErrAlreadyLastStage indicates that the card is already in the last stage
	ErrAlreadyLastStage = errors.New("card is already in the last stage")
)
