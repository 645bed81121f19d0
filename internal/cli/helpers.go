package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/admitdesk/internal/models"
	pipelineservice "github.com/thenoetrevino/admitdesk/internal/services/pipeline"
	directoryservice "github.com/thenoetrevino/admitdesk/internal/services/directory"
)

// ErrInvalidFlagValue indicates a flag value outside the flag's known options
var ErrInvalidFlagValue = errors.New("invalid flag value")

// ResolveOption returns the option equal to value, ignoring case
func ResolveOption(flag, value string, options []string) (string, error) {
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return opt, nil
		}
	}
	return "", fmt.Errorf("%w: --%s %q", ErrInvalidFlagValue, flag, value)
}

// ResolveFlag is ResolveOption that reports a miss as a usage error listing
// the valid values
func (f *OutputFormatter) ResolveFlag(flag, value string, options []string) (string, error) {
	resolved, err := ResolveOption(flag, value, options)
	if err != nil {
		return "", f.FailWithSuggestion(ExitUsage, "INVALID_FLAG", err, "valid values: "+strings.Join(options, ", "))
	}
	return resolved, nil
}

// Classify maps a service error to an exit code and an error code string
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidFlagValue):
		return ExitUsage, "INVALID_FLAG"
	case errors.Is(err, models.ErrStageNotFound):
		return ExitNotFound, "STAGE_NOT_FOUND"
	case errors.Is(err, models.ErrCardNotFound):
		return ExitNotFound, "CARD_NOT_FOUND"
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound, "NOT_FOUND"
	case errors.Is(err, pipelineservice.ErrInvalidCardID),
		errors.Is(err, pipelineservice.ErrEmptyStageName),
		errors.Is(err, directoryservice.ErrInvalidStudentID),
		errors.Is(err, directoryservice.ErrInvalidUniversityID):
		return ExitValidation, "INVALID_INPUT"
	case errors.Is(err, pipelineservice.ErrAlreadyFirstStage):
		return ExitValidation, "NO_PREV_STAGE"
	case errors.Is(err, pipelineservice.ErrAlreadyLastStage):
		return ExitValidation, "NO_NEXT_STAGE"
	default:
		return ExitError, "ERROR"
	}
}

// FailFor reports err using the exit code Classify picks for it
func (f *OutputFormatter) FailFor(err error) error {
	exitCode, code := Classify(err)
	return f.Fail(exitCode, code, err)
}
