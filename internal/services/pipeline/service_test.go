package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/admitdesk/internal/models"
	board "github.com/thenoetrevino/admitdesk/internal/pipeline"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// fakeSaver records saves and fails on demand
type fakeSaver struct {
	saved []models.StageID
	err   error
}

func (f *fakeSaver) SaveCardStage(_ context.Context, _ int, stage models.StageID) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, stage)
	return nil
}

func setupService(t *testing.T, saver StageSaver) (Service, *board.Store) {
	t.Helper()
	cards := []models.Application{
		{ID: 1, StudentName: "Rashida Rahman", Stage: models.StageNew},
		{ID: 2, StudentName: "Md. Karim Ahmed", Stage: models.StageNew},
		{ID: 3, StudentName: "Fatima Begum", Stage: models.StageQualified},
		{ID: 6, StudentName: "Rahman Ali", Stage: models.StageEnrolled},
	}
	store, err := board.NewStore(models.DefaultStages(), cards)
	require.NoError(t, err)
	return NewService(store, saver), store
}

func ids(cards []models.Application) []int {
	out := []int{}
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

// ============================================================================
// GESTURE
// ============================================================================

func TestGesture_SavesCompletedMove(t *testing.T) {
	saver := &fakeSaver{}
	svc, _ := setupService(t, saver)
	ctx := context.Background()

	pm, err := svc.BeginMove(1, models.StageNew)
	require.NoError(t, err)

	res, err := svc.CompleteMove(ctx, pm, models.StageApplied)
	require.NoError(t, err)
	assert.True(t, res.Moved)
	assert.Equal(t, []models.StageID{models.StageApplied}, saver.saved)

	applied, err := svc.CardsByStage(models.StageApplied)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(applied))

	_, pending := svc.Pending()
	assert.False(t, pending)
}

func TestGesture_SelfDropSkipsSaver(t *testing.T) {
	saver := &fakeSaver{}
	svc, _ := setupService(t, saver)

	pm, err := svc.BeginMove(3, models.StageQualified)
	require.NoError(t, err)

	res, err := svc.CompleteMove(context.Background(), pm, models.StageQualified)
	require.NoError(t, err)
	assert.False(t, res.Moved)
	assert.Empty(t, saver.saved)
}

func TestGesture_SaverFailureRollsBack(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk on fire")}
	svc, store := setupService(t, saver)
	before := store.Snapshot()

	pm, err := svc.BeginMove(1, models.StageNew)
	require.NoError(t, err)

	_, err = svc.CompleteMove(context.Background(), pm, models.StageVisa)
	require.Error(t, err)
	assert.ErrorIs(t, err, saver.err)
	assert.Equal(t, before, store.Snapshot())

	card, err := svc.GetCard(1)
	require.NoError(t, err)
	assert.Equal(t, models.StageNew, card.Stage)
}

func TestGesture_Abort(t *testing.T) {
	svc, store := setupService(t, nil)
	before := store.Snapshot()

	pm, err := svc.BeginMove(2, models.StageNew)
	require.NoError(t, err)
	require.NoError(t, svc.AbortMove(pm))

	assert.Equal(t, before, store.Snapshot())
	assert.ErrorIs(t, svc.AbortMove(pm), board.ErrNoPendingMove)
}

func TestGesture_DropAfterAbortIsRejected(t *testing.T) {
	saver := &fakeSaver{}
	svc, store := setupService(t, saver)
	before := store.Snapshot()

	pm, err := svc.BeginMove(1, models.StageNew)
	require.NoError(t, err)
	require.NoError(t, svc.AbortMove(pm))

	_, err = svc.CompleteMove(context.Background(), pm, models.StageEnrolled)
	assert.ErrorIs(t, err, board.ErrNoPendingMove)
	assert.Equal(t, before, store.Snapshot())
	assert.Empty(t, saver.saved)
}

func TestBeginMove_Validation(t *testing.T) {
	svc, _ := setupService(t, nil)

	_, err := svc.BeginMove(0, models.StageNew)
	assert.ErrorIs(t, err, ErrInvalidCardID)

	_, err = svc.BeginMove(999, models.StageNew)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.BeginMove(1, models.StageNew)
	require.NoError(t, err)
	_, err = svc.BeginMove(2, models.StageNew)
	assert.ErrorIs(t, err, board.ErrMoveInProgress)
}

// ============================================================================
// ONE-STEP MOVES
// ============================================================================

func TestMoveCardToNextAndPrevStage(t *testing.T) {
	saver := &fakeSaver{}
	svc, _ := setupService(t, saver)
	ctx := context.Background()

	res, err := svc.MoveCardToNextStage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StageQualified, res.To)

	res, err = svc.MoveCardToPrevStage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StageNew, res.To)

	_, err = svc.MoveCardToPrevStage(ctx, 1)
	assert.ErrorIs(t, err, ErrAlreadyFirstStage)

	_, err = svc.MoveCardToNextStage(ctx, 6)
	assert.ErrorIs(t, err, ErrAlreadyLastStage)

	assert.Len(t, saver.saved, 2)
}

func TestMoveCard_Errors(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	_, err := svc.MoveCard(ctx, -1, models.StageVisa)
	assert.ErrorIs(t, err, ErrInvalidCardID)

	_, err = svc.MoveCard(ctx, 42, models.StageVisa)
	assert.ErrorIs(t, err, models.ErrCardNotFound)

	_, err = svc.MoveCard(ctx, 1, models.StageID("archived"))
	assert.ErrorIs(t, err, models.ErrStageNotFound)

	_, pending := svc.Pending()
	assert.False(t, pending, "failed one-step moves must not leave a gesture behind")
}

// ============================================================================
// STAGE LOOKUP
// ============================================================================

func TestResolveStage(t *testing.T) {
	svc, _ := setupService(t, nil)

	tests := []struct {
		input   string
		want    models.StageID
		wantErr error
	}{
		{"visa", models.StageVisa, nil},
		{"Visa Process", models.StageVisa, nil},
		{"  ENROLLED ", models.StageEnrolled, nil},
		{"", "", ErrEmptyStageName},
		{"archived", "", models.ErrStageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			st, err := svc.ResolveStage(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, st.ID)
		})
	}
}

func TestSuggestStage(t *testing.T) {
	svc, _ := setupService(t, nil)

	assert.Equal(t, "qualified", svc.SuggestStage("qualifed"))
	assert.Equal(t, "applied", svc.SuggestStage("Aplied"))
	assert.Equal(t, "", svc.SuggestStage("something else entirely"))
	assert.Equal(t, "", svc.SuggestStage(""))
}
