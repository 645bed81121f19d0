package models

import (
	"errors"
	"fmt"
)

// Domain-specific errors for lookups and pipeline moves
var (
	// ErrNotFound indicates a requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrCardNotFound indicates an unknown application card ID
	ErrCardNotFound = fmt.Errorf("card %w", ErrNotFound)

	// ErrStageNotFound indicates a stage ID outside the pipeline's closed set
	ErrStageNotFound = fmt.Errorf("stage %w", ErrNotFound)
)
