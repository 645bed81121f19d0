package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/admitdesk/internal/models"
	pipelineservice "github.com/thenoetrevino/admitdesk/internal/services/pipeline"
)

func TestExitCode(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(base))
	assert.Equal(t, ExitNotFound, ExitCode(WithExitCode(ExitNotFound, base)))
	assert.Equal(t, ExitUsage, ExitCode(fmt.Errorf("wrapped: %w", WithExitCode(ExitUsage, base))))
}

func TestExitCodeError_Unwrap(t *testing.T) {
	err := WithExitCode(ExitNotFound, models.ErrCardNotFound)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, models.ErrCardNotFound.Error(), err.Error())
	assert.Equal(t, "exit status 4", (&ExitCodeError{Code: ExitDataErr}).Error())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantExit int
		wantCode string
	}{
		{"unknown stage", fmt.Errorf("x: %w", models.ErrStageNotFound), ExitNotFound, "STAGE_NOT_FOUND"},
		{"unknown card", models.ErrCardNotFound, ExitNotFound, "CARD_NOT_FOUND"},
		{"invalid id", pipelineservice.ErrInvalidCardID, ExitValidation, "INVALID_INPUT"},
		{"last stage", pipelineservice.ErrAlreadyLastStage, ExitValidation, "NO_NEXT_STAGE"},
		{"bad flag value", fmt.Errorf("x: %w", ErrInvalidFlagValue), ExitUsage, "INVALID_FLAG"},
		{"other", errors.New("disk"), ExitError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exit, code := Classify(tt.err)
			assert.Equal(t, tt.wantExit, exit)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestResolveOption(t *testing.T) {
	options := []string{"all", "Germany", "Czech Republic"}

	got, err := ResolveOption("country", "czech republic", options)
	assert.NoError(t, err)
	assert.Equal(t, "Czech Republic", got)

	got, err = ResolveOption("country", "ALL", options)
	assert.NoError(t, err)
	assert.Equal(t, "all", got)

	_, err = ResolveOption("country", "Atlantis", options)
	assert.ErrorIs(t, err, ErrInvalidFlagValue)
	assert.Contains(t, err.Error(), `--country "Atlantis"`)
}
