package state

import "github.com/thenoetrevino/admitdesk/internal/models"

// Page identifies one of the navigable screens.
type Page int

const (
	DashboardPage    Page = iota // KPIs, activities and notifications
	StudentsPage                 // Searchable student list
	ApplicationsPage             // Pipeline board
	UniversitiesPage             // Searchable university list
)

// PageCount is the number of implemented pages.
const PageCount = 4

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	SearchMode             // Typing into a list's search field
	HelpMode               // Displaying help screen
	MovingMode             // A card is picked up on the board
)

// Sidebar widths including the border
const (
	SidebarWidth          = 26
	SidebarCollapsedWidth = 6
)

// UIState manages the user interface state.
// This includes the active page, terminal dimensions, the sidebar, the display
// language and the board selection.
type UIState struct {
	// page is the currently displayed page
	page Page

	// mode is the current interaction mode
	mode Mode

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// sidebarCollapsed shows icons only
	sidebarCollapsed bool

	// language is models.LanguageEnglish or models.LanguageBangla
	language string

	// selectedColumn is the index of the selected board column
	selectedColumn int

	// selectedCard is the index of the selected card within the selected column
	selectedCard int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		page:     DashboardPage,
		mode:     NormalMode,
		language: models.LanguageEnglish,
	}
}

// Page returns the current page.
func (s *UIState) Page() Page {
	return s.page
}

// SetPage switches to page. Out of range values are ignored.
func (s *UIState) SetPage(page Page) {
	if page < 0 || int(page) >= PageCount {
		return
	}
	s.page = page
}

// NextPage moves to the next page, wrapping around.
func (s *UIState) NextPage() {
	s.page = Page((int(s.page) + 1) % PageCount)
}

// PrevPage moves to the previous page, wrapping around.
func (s *UIState) PrevPage() {
	s.page = Page((int(s.page) + PageCount - 1) % PageCount)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the main content area.
// This is terminal height minus tab bar and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3    // tabs + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-tabBarHeight-statusBarHeight, 5)
}

// ContentWidth returns the width left beside the sidebar, at least 20.
func (s *UIState) ContentWidth() int {
	return max(s.width-s.SidebarWidth(), 20)
}

// SidebarWidth returns the rendered sidebar width for the current collapse state.
func (s *UIState) SidebarWidth() int {
	if s.sidebarCollapsed {
		return SidebarCollapsedWidth
	}
	return SidebarWidth
}

// SidebarCollapsed reports whether the sidebar shows icons only.
func (s *UIState) SidebarCollapsed() bool {
	return s.sidebarCollapsed
}

// SetSidebarCollapsed sets the collapse state.
func (s *UIState) SetSidebarCollapsed(collapsed bool) {
	s.sidebarCollapsed = collapsed
}

// ToggleSidebar flips the collapse state.
func (s *UIState) ToggleSidebar() {
	s.sidebarCollapsed = !s.sidebarCollapsed
}

// Language returns the display language.
func (s *UIState) Language() string {
	return s.language
}

// SetLanguage sets the display language. Unknown languages fall back to English.
func (s *UIState) SetLanguage(lang string) {
	if lang != models.LanguageBangla {
		lang = models.LanguageEnglish
	}
	s.language = lang
}

// ToggleLanguage switches between English and Bangla.
func (s *UIState) ToggleLanguage() {
	if s.language == models.LanguageBangla {
		s.language = models.LanguageEnglish
		return
	}
	s.language = models.LanguageBangla
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Clamp keeps index within [0, n). It returns 0 when n is 0.
func Clamp(index, n int) int {
	if n <= 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
