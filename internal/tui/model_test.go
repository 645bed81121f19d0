package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/admitdesk/internal/app"
	"github.com/thenoetrevino/admitdesk/internal/config"
	"github.com/thenoetrevino/admitdesk/internal/filter"
	"github.com/thenoetrevino/admitdesk/internal/models"
	board "github.com/thenoetrevino/admitdesk/internal/pipeline"
	"github.com/thenoetrevino/admitdesk/internal/seed"
	"github.com/thenoetrevino/admitdesk/internal/testutil"
	"github.com/thenoetrevino/admitdesk/internal/tui/components"
	"github.com/thenoetrevino/admitdesk/internal/tui/state"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestModel(t *testing.T, opts ...app.Option) Model {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	ds, err := seed.Default()
	if err != nil {
		t.Fatalf("seed.Default() error: %v", err)
	}

	cfg := config.Default()
	components.InitStyles(cfg.ColorScheme)

	m := InitialModel(ctx, testutil.SetupTestAppWithDataset(t, ds, opts...), cfg)
	return send(m, tea.WindowSizeMsg{Width: 180, Height: 50})
}

// send runs one message through Update and returns the resulting Model
func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// press sends a sequence of keys by name ("tab", "esc", "j", "H", ...)
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m = send(m, keyMsg(k))
	}
	return m
}

// typeText sends each rune of s as a key press
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = send(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

func stageOf(t *testing.T, m Model, cardID int) models.StageID {
	t.Helper()
	card, err := m.App.PipelineService.GetCard(cardID)
	if err != nil {
		t.Fatalf("GetCard(%d) error: %v", cardID, err)
	}
	return card.Stage
}

func totalCards(m Model) int {
	total := 0
	for _, s := range m.App.PipelineService.Summary() {
		total += s.Count
	}
	return total
}

type failingSaver struct{}

func (failingSaver) SaveCardStage(context.Context, int, models.StageID) error {
	return errors.New("disk unavailable")
}

// ============================================================================
// NAVIGATION
// ============================================================================

func TestView_LoadingBeforeResize(t *testing.T) {
	cfg := config.Default()
	components.InitStyles(cfg.ColorScheme)
	m := InitialModel(context.Background(), testutil.SetupTestApp(t), cfg)

	if got := m.View().Content; got != "Loading..." {
		t.Errorf("View() before WindowSizeMsg = %q, want Loading...", got)
	}
}

func TestPageNavigation(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "tab")
	if m.UiState.Page() != state.StudentsPage {
		t.Errorf("after tab page = %d, want Students", m.UiState.Page())
	}

	m = press(m, "shift+tab", "shift+tab")
	if m.UiState.Page() != state.UniversitiesPage {
		t.Errorf("after shift+tab x2 page = %d, want Universities", m.UiState.Page())
	}

	m = press(m, "3")
	if m.UiState.Page() != state.ApplicationsPage {
		t.Errorf("after 3 page = %d, want Applications", m.UiState.Page())
	}
}

func TestSidebarAndLanguageToggles(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "b", "g")

	if !m.UiState.SidebarCollapsed() {
		t.Error("b did not collapse the sidebar")
	}
	if m.UiState.Language() != models.LanguageBangla {
		t.Errorf("g language = %q, want %q", m.UiState.Language(), models.LanguageBangla)
	}
	if !strings.Contains(m.viewBase(), "ড্যাশবোর্ড") {
		t.Error("Bangla view missing translated page title")
	}
}

func TestHelpMode(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "?")
	if m.UiState.Mode() != state.HelpMode {
		t.Fatalf("? mode = %d, want HelpMode", m.UiState.Mode())
	}

	// Page keys are ignored while help is shown
	m = press(m, "tab")
	if m.UiState.Page() != state.DashboardPage {
		t.Error("tab switched page while help was open")
	}

	m = press(m, "esc")
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("esc mode = %d, want NormalMode", m.UiState.Mode())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestDashboardView(t *testing.T) {
	m := newTestModel(t)

	out := m.View().Content
	for _, want := range []string{"Total Students", "Recent Activities", "Notifications"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard view missing %q", want)
		}
	}
}

// ============================================================================
// LIST PAGES
// ============================================================================

func TestStudentSearch_FiltersAsYouType(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "2", "/")

	if m.UiState.Mode() != state.SearchMode {
		t.Fatalf("/ mode = %d, want SearchMode", m.UiState.Mode())
	}

	m = typeText(m, "RASH")
	if got := len(m.visibleStudents()); got != 1 {
		t.Errorf("visible students for RASH = %d, want 1", got)
	}

	// enter keeps the query
	m = press(m, "enter")
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("enter mode = %d, want NormalMode", m.UiState.Mode())
	}
	if m.StudentList.Search().Query() != "RASH" {
		t.Errorf("query after enter = %q, want RASH", m.StudentList.Search().Query())
	}

	// esc in normal mode clears it
	m = press(m, "esc")
	if got := len(m.visibleStudents()); got != 3 {
		t.Errorf("visible students after esc = %d, want 3", got)
	}
}

func TestStudentSearch_EscClears(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "2", "/")
	m = typeText(m, "zzz")

	if !strings.Contains(m.View().Content, "No students found") {
		t.Error("view missing empty-result message")
	}

	m = press(m, "esc")
	if m.StudentList.Search().Query() != "" {
		t.Errorf("query after esc = %q, want empty", m.StudentList.Search().Query())
	}
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("mode after esc = %d, want NormalMode", m.UiState.Mode())
	}
}

// TestSearchMode_KeysAreText ensures page keys are typed, not executed, while searching.
func TestSearchMode_KeysAreText(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "2", "/")
	m = typeText(m, "q2")

	if m.StudentList.Search().Query() != "q2" {
		t.Errorf("query = %q, want q2", m.StudentList.Search().Query())
	}
	if m.UiState.Page() != state.StudentsPage {
		t.Errorf("page = %d, want Students", m.UiState.Page())
	}
}

func TestStudentSelectors(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "2", "s")

	if got := m.StudentList.Selector(filter.SelectorStatus); got != models.StatusActive {
		t.Fatalf("status after s = %q, want %q", got, models.StatusActive)
	}
	if got := len(m.visibleStudents()); got != 2 {
		t.Errorf("active students = %d, want 2", got)
	}

	m = press(m, "c")
	if got := m.StudentList.Selector(filter.SelectorCountry); got == models.SelectorAll {
		t.Error("c did not advance the country selector")
	}

	m = press(m, "x")
	if m.StudentList.HasFilters() {
		t.Error("x left filters active")
	}
	if got := len(m.visibleStudents()); got != 3 {
		t.Errorf("students after x = %d, want 3", got)
	}
}

func TestUniversityPartnerSelector(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "4", "p")

	if got := m.UniversityList.Selector(filter.SelectorPartner); got != models.PartnerOnly {
		t.Fatalf("partner after p = %q, want %q", got, models.PartnerOnly)
	}
	if got := len(m.visibleUniversities()); got != 3 {
		t.Errorf("partner universities = %d, want 3", got)
	}

	// s has no meaning on the universities page
	m = press(m, "s")
	if got := m.UniversityList.Selector(filter.SelectorStatus); got != models.SelectorAll {
		t.Errorf("status selector on universities = %q, want all", got)
	}

	out := m.View().Content
	if !strings.Contains(out, "Partner Universities") {
		t.Error("universities view missing stats")
	}
}

func TestListSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "2", "j", "j", "j")

	if got := m.StudentList.Selected(); got != 2 {
		t.Errorf("selection after j x3 = %d, want 2 (clamped)", got)
	}

	m = press(m, "k")
	if got := m.StudentList.Selected(); got != 1 {
		t.Errorf("selection after k = %d, want 1", got)
	}
}

// ============================================================================
// APPLICATIONS BOARD
// ============================================================================

func TestBoard_PickUpAndDrop(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "3")
	before := totalCards(m)

	m = press(m, "space")
	if m.UiState.Mode() != state.MovingMode {
		t.Fatalf("space mode = %d, want MovingMode", m.UiState.Mode())
	}
	if _, ok := m.App.PipelineService.Pending(); !ok {
		t.Fatal("no pending move after space")
	}
	if !strings.Contains(m.View().Content, "MOVING") {
		t.Error("status bar missing moving banner")
	}

	m = press(m, "l", "l", "enter")

	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("mode after drop = %d, want NormalMode", m.UiState.Mode())
	}
	if got := stageOf(t, m, 1); got != models.StageApplied {
		t.Errorf("card 1 stage = %q, want %q", got, models.StageApplied)
	}
	if totalCards(m) != before {
		t.Errorf("card count changed: %d -> %d", before, totalCards(m))
	}
	if m.UiState.SelectedColumn() != 2 {
		t.Errorf("cursor column = %d, want 2 (follows card)", m.UiState.SelectedColumn())
	}
	if _, ok := m.App.PipelineService.Pending(); ok {
		t.Error("gesture still pending after drop")
	}
}

func TestBoard_SelfDropIsNoOp(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "3")
	before := m.App.PipelineService.Summary()

	m = press(m, "space", "enter")

	if got := stageOf(t, m, 1); got != models.StageNew {
		t.Errorf("card 1 stage = %q, want %q", got, models.StageNew)
	}
	after := m.App.PipelineService.Summary()
	for i := range before {
		if before[i].Count != after[i].Count {
			t.Errorf("stage %s count %d -> %d", before[i].Stage.ID, before[i].Count, after[i].Count)
		}
	}
}

func TestBoard_AbortMove(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "3", "space", "l", "l", "esc")

	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("mode after esc = %d, want NormalMode", m.UiState.Mode())
	}
	if got := stageOf(t, m, 1); got != models.StageNew {
		t.Errorf("card 1 stage = %q, want %q", got, models.StageNew)
	}
	if _, ok := m.App.PipelineService.Pending(); ok {
		t.Error("gesture still pending after esc")
	}
}

func TestBoard_EnterAfterAbortLeavesBoard(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "3", "space")

	pm, ok := m.BoardState.Pending()
	if !ok {
		t.Fatal("no pending move after space")
	}
	before := m.App.PipelineService.Summary()

	m = press(m, "l", "l", "esc", "enter")

	if got := stageOf(t, m, 1); got != models.StageNew {
		t.Errorf("card 1 stage = %q, want %q", got, models.StageNew)
	}
	after := m.App.PipelineService.Summary()
	for i := range before {
		if before[i].Count != after[i].Count {
			t.Errorf("stage %s count %d -> %d", before[i].Stage.ID, before[i].Count, after[i].Count)
		}
	}

	// The cancelled gesture cannot be dropped later either
	_, err := m.App.PipelineService.CompleteMove(context.Background(), pm, models.StageApplied)
	if !errors.Is(err, board.ErrNoPendingMove) {
		t.Errorf("drop of cancelled gesture error = %v, want ErrNoPendingMove", err)
	}
	if got := stageOf(t, m, 1); got != models.StageNew {
		t.Errorf("card 1 stage after late drop = %q, want %q", got, models.StageNew)
	}
}

// TestBoard_MovingIgnoresPageKeys ensures the gesture cannot be orphaned by leaving the page.
func TestBoard_MovingIgnoresPageKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "3", "space", "tab")

	if m.UiState.Page() != state.ApplicationsPage {
		t.Errorf("page = %d, want Applications", m.UiState.Page())
	}
	if m.UiState.Mode() != state.MovingMode {
		t.Errorf("mode = %d, want MovingMode", m.UiState.Mode())
	}
}

func TestBoard_StepMoves(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "3", "H")

	if got := stageOf(t, m, 1); got != models.StageNew {
		t.Errorf("card 1 stage after H = %q, want %q", got, models.StageNew)
	}
	toasts := m.NotificationState.All()
	if len(toasts) != 1 || toasts[0].Level != state.LevelWarning {
		t.Errorf("toasts after H at first stage = %+v, want one warning", toasts)
	}

	m = press(m, "L")
	if got := stageOf(t, m, 1); got != models.StageQualified {
		t.Errorf("card 1 stage after L = %q, want %q", got, models.StageQualified)
	}
	if m.UiState.SelectedColumn() != 1 {
		t.Errorf("cursor column = %d, want 1", m.UiState.SelectedColumn())
	}
}

func TestBoard_Navigation(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "3", "j")

	card, ok := m.currentCard()
	if !ok || card.ID != 2 {
		t.Fatalf("current card after j = %+v, want id 2", card)
	}

	// Moving to a shorter column clamps the card index
	m = press(m, "l")
	card, ok = m.currentCard()
	if !ok || card.ID != 3 {
		t.Errorf("current card after l = %+v, want id 3", card)
	}
}

// TestBoard_SaveFailureRollsBack ensures a failed write leaves the card where it was.
func TestBoard_SaveFailureRollsBack(t *testing.T) {
	m := newTestModel(t, app.WithStageSaver(failingSaver{}))
	m = press(m, "3", "space", "l", "enter")

	if got := stageOf(t, m, 1); got != models.StageNew {
		t.Errorf("card 1 stage = %q, want %q", got, models.StageNew)
	}
	cards, _ := m.App.PipelineService.CardsByStage(models.StageNew)
	if len(cards) == 0 || cards[0].ID != 1 {
		t.Errorf("card 1 not restored to first position: %+v", cards)
	}

	toasts := m.NotificationState.All()
	if len(toasts) != 1 || toasts[0].Level != state.LevelError {
		t.Errorf("toasts = %+v, want one error", toasts)
	}
}
