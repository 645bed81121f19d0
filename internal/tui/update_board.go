package tui

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/admitdesk/internal/models"
	pipelineservice "github.com/thenoetrevino/admitdesk/internal/services/pipeline"
	"github.com/thenoetrevino/admitdesk/internal/tui/state"
)

// ============================================================================
// APPLICATIONS BOARD
// ============================================================================

// handleBoardKey handles normal-mode keys on the Applications page
func (m Model) handleBoardKey(key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	stages := m.App.PipelineService.Stages()

	switch key {
	case km.PrevColumn, "left":
		m.focusColumn(m.UiState.SelectedColumn()-1, len(stages))
	case km.NextColumn, "right":
		m.focusColumn(m.UiState.SelectedColumn()+1, len(stages))
	case km.PrevItem, "up":
		n := len(m.columnCards(m.UiState.SelectedColumn()))
		m.UiState.SetSelectedCard(state.Clamp(m.UiState.SelectedCard()-1, n))
	case km.NextItem, "down":
		n := len(m.columnCards(m.UiState.SelectedColumn()))
		m.UiState.SetSelectedCard(state.Clamp(m.UiState.SelectedCard()+1, n))
	case km.PickUpCard:
		m.pickUpCard()
	case km.MoveCardLeft:
		m.stepCard(-1)
	case km.MoveCardRight:
		m.stepCard(1)
	}
	return m, nil
}

// focusColumn selects column i and keeps the card cursor in range
func (m Model) focusColumn(i, n int) {
	col := state.Clamp(i, n)
	m.UiState.SetSelectedColumn(col)
	m.UiState.SetSelectedCard(state.Clamp(m.UiState.SelectedCard(), len(m.columnCards(col))))
}

// pickUpCard starts a move gesture on the card under the cursor
func (m Model) pickUpCard() {
	card, ok := m.currentCard()
	if !ok {
		return
	}

	pm, err := m.App.PipelineService.BeginMove(card.ID, card.Stage)
	if err != nil {
		m.notifyError(err)
		return
	}

	m.BoardState.PickUp(pm, m.UiState.SelectedColumn())
	m.UiState.SetMode(state.MovingMode)
}

// stepCard moves the card under the cursor one stage left or right
func (m Model) stepCard(step int) {
	card, ok := m.currentCard()
	if !ok {
		return
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	svc := m.App.PipelineService
	move := svc.MoveCardToNextStage
	if step < 0 {
		move = svc.MoveCardToPrevStage
	}

	res, err := move(ctx, card.ID)
	if err != nil {
		if errors.Is(err, pipelineservice.ErrAlreadyFirstStage) || errors.Is(err, pipelineservice.ErrAlreadyLastStage) {
			m.NotificationState.Add(state.LevelWarning, err.Error())
			return
		}
		m.notifyError(err)
		return
	}

	m.selectCard(res.To, res.Target)
}

// handleMovingMode handles keys while a card is picked up.
// h/l steer the drop target, enter drops, esc cancels.
func (m Model) handleMovingMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	n := len(m.App.PipelineService.Stages())

	switch msg.String() {
	case km.PrevColumn, "left":
		m.BoardState.MoveTarget(-1, n)
	case km.NextColumn, "right":
		m.BoardState.MoveTarget(1, n)
	case km.DropCard:
		m.dropCard()
	case km.CancelMove:
		m.cancelMove()
	case km.Quit:
		m.cancelMove()
		return m, tea.Quit
	}
	return m, nil
}

// dropCard completes the gesture on the drop target column
func (m Model) dropCard() {
	pm, ok := m.BoardState.Pending()
	if !ok {
		m.UiState.SetMode(state.NormalMode)
		return
	}

	stages := m.App.PipelineService.Stages()
	target := stages[state.Clamp(m.BoardState.Target(), len(stages))]

	ctx, cancel := m.dbContext()
	defer cancel()

	res, err := m.App.PipelineService.CompleteMove(ctx, pm, target.ID)
	m.BoardState.Clear()
	m.UiState.SetMode(state.NormalMode)
	if err != nil {
		m.notifyError(err)
		return
	}
	if !res.Moved {
		return
	}

	m.selectCard(res.To, res.Target)
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Moved %s to %s", res.Card.StudentName, stageTitle(stages, res.To)))
}

// cancelMove aborts the gesture, leaving the board untouched
func (m Model) cancelMove() {
	if pm, ok := m.BoardState.Pending(); ok {
		if err := m.App.PipelineService.AbortMove(pm); err != nil {
			m.notifyError(err)
		}
	}
	m.BoardState.Clear()
	m.UiState.SetMode(state.NormalMode)
}

func stageTitle(stages []models.Stage, id models.StageID) string {
	for _, st := range stages {
		if st.ID == id {
			return st.Title
		}
	}
	return string(id)
}
