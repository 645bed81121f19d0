package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/admitdesk/internal/filter"
	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/tui/components"
	"github.com/thenoetrevino/admitdesk/internal/tui/notifications"
	"github.com/thenoetrevino/admitdesk/internal/tui/state"
	"github.com/thenoetrevino/admitdesk/internal/user"
)

// rows taken by one student or university entry
const listRowHeight = 3

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBase()),
	}
	if m.UiState.Mode() == state.HelpMode {
		layers = append(layers, m.renderHelpLayer())
	}
	layers = append(layers, m.NotificationState.GetLayers(notifications.RenderToast)...)

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// viewBase renders sidebar, tabs, page content and status bar
func (m Model) viewBase() string {
	ui := m.UiState
	lang := ui.Language()

	sidebar := components.RenderSidebar(components.SidebarProps{
		Active:    ui.Page(),
		Collapsed: ui.SidebarCollapsed(),
		Language:  lang,
		Height:    ui.Height() - 1,
	})

	titles := make([]string, state.PageCount)
	for i := range titles {
		titles[i] = components.PageTitle(state.Page(i), lang)
	}
	tabs := components.RenderTabs(titles, int(ui.Page()), ui.ContentWidth())

	var content string
	switch ui.Page() {
	case state.DashboardPage:
		content = m.viewDashboard()
	case state.StudentsPage:
		content = m.viewStudents()
	case state.ApplicationsPage:
		content = m.viewApplications()
	case state.UniversitiesPage:
		content = m.viewUniversities()
	}
	content = lipgloss.NewStyle().MaxHeight(ui.ContentHeight()).Render(content)

	main := lipgloss.JoinVertical(lipgloss.Left, tabs, content)
	body := lipgloss.NewStyle().
		MaxHeight(max(ui.Height()-1, 1)).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main))

	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatusBar())
}

// viewStatusBar describes the current mode
func (m Model) viewStatusBar() string {
	props := components.StatusBarProps{Width: m.UiState.Width()}

	switch m.UiState.Mode() {
	case state.SearchMode:
		props.Left = "enter: keep search · esc: clear"
	case state.MovingMode:
		if pm, ok := m.BoardState.Pending(); ok {
			if card, err := m.App.PipelineService.GetCard(pm.CardID); err == nil {
				props.Banner = "MOVING " + card.StudentName
			}
		}
		props.Left = "h/l: choose stage · enter: drop · esc: cancel"
	default:
		switch m.UiState.Page() {
		case state.StudentsPage:
			props.Left = "/: search · s: status · c: country · x: clear"
		case state.UniversitiesPage:
			props.Left = "/: search · p: partner · c: country · x: clear"
		case state.ApplicationsPage:
			props.Left = "space: pick up · H/L: move · h/l/j/k: navigate"
		default:
			props.Left = "tab: next page · b: sidebar · g: language"
		}
	}

	return components.RenderStatusBar(props)
}

// pageHeader renders a page title with its subtitle
func pageHeader(title, subtitle string) string {
	return components.TitleStyle.Render(title) + "\n" + components.SubtleStyle.Render(subtitle) + "\n"
}

// ============================================================================
// DASHBOARD
// ============================================================================

func (m Model) viewDashboard() string {
	lang := m.UiState.Language()
	overview := m.App.DashboardService.Overview()
	width := m.UiState.ContentWidth()

	panelWidth := max(width/2-2, 20)
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		components.RenderActivities(components.Heading(components.HeadingActivities, lang), overview.Activities, panelWidth),
		components.RenderNotifications(components.Heading(components.HeadingNotifications, lang), overview.Notifications, panelWidth),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeader(components.PageTitle(state.DashboardPage, lang), user.Greeting()+" Here's your education management overview."),
		components.RenderKPIs(overview.KPIs),
		components.RenderPipelineSummary(overview.Pipeline),
		panels,
	)
}

// ============================================================================
// LIST PAGES
// ============================================================================

// visibleWindow returns the [start, end) slice of n rows that keeps selected in view
func visibleWindow(selected, n, height int) (int, int) {
	perPage := max(height/listRowHeight, 1)
	start := 0
	if selected >= perPage {
		start = selected - perPage + 1
	}
	return start, min(start+perPage, n)
}

// viewSearch renders the search line of a list page
func viewSearch(list *state.ListState) string {
	if list.Search().IsActive() || list.Search().Query() != "" {
		return list.Search().View()
	}
	return components.SubtleStyle.Render("/ to search")
}

// viewSelectors renders "status: all · country: all"
func viewSelectors(list *state.ListState, names ...string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", n, list.Selector(n)))
	}
	return components.SubtleStyle.Render(strings.Join(parts, " · "))
}

// viewEmpty renders the empty result message
func viewEmpty(what string) string {
	return "\n" + lipgloss.NewStyle().Bold(true).Render("No "+what+" found") + "\n" +
		components.SubtleStyle.Render("Try adjusting your search or filter criteria")
}

func (m Model) viewStudents() string {
	lang := m.UiState.Language()
	width := m.UiState.ContentWidth()
	list := m.StudentList
	students := m.visibleStudents()

	var b strings.Builder
	b.WriteString(pageHeader(components.PageTitle(state.StudentsPage, lang), "Manage and track all student applications and progress."))
	b.WriteString(viewSearch(list) + "\n")
	b.WriteString(viewSelectors(list, filter.SelectorStatus, filter.SelectorCountry) + "\n")

	if len(students) == 0 {
		b.WriteString(viewEmpty("students"))
		return b.String()
	}

	selected := state.Clamp(list.Selected(), len(students))
	start, end := visibleWindow(selected, len(students), m.UiState.ContentHeight()-5)
	for i := start; i < end; i++ {
		b.WriteString(components.RenderStudentRow(students[i], i == selected, width) + "\n")
	}
	return b.String()
}

func (m Model) viewUniversities() string {
	lang := m.UiState.Language()
	width := m.UiState.ContentWidth()
	list := m.UniversityList
	universities := m.visibleUniversities()
	stats := m.App.DirectoryService.UniversityStats()

	var b strings.Builder
	b.WriteString(pageHeader(components.PageTitle(state.UniversitiesPage, lang), "Manage university partnerships and program offerings."))
	b.WriteString(components.RenderStats([]components.Stat{
		{Title: "Total Universities", Value: stats.Total},
		{Title: "Partner Universities", Value: stats.Partners},
		{Title: "Scholarships", Value: stats.Scholarships},
		{Title: "Students Placed", Value: stats.StudentsPlaced},
	}) + "\n")
	b.WriteString(viewSearch(list) + "\n")
	b.WriteString(viewSelectors(list, filter.SelectorCountry, filter.SelectorPartner) + "\n")

	if len(universities) == 0 {
		b.WriteString(viewEmpty("universities"))
		return b.String()
	}

	selected := state.Clamp(list.Selected(), len(universities))
	start, end := visibleWindow(selected, len(universities), m.UiState.ContentHeight()-9)
	for i := start; i < end; i++ {
		b.WriteString(components.RenderUniversityRow(universities[i], i == selected, width) + "\n")
	}
	return b.String()
}

// ============================================================================
// APPLICATIONS BOARD
// ============================================================================

func (m Model) viewApplications() string {
	lang := m.UiState.Language()
	svc := m.App.PipelineService
	stages := svc.Stages()

	header := pageHeader(components.PageTitle(state.ApplicationsPage, lang), "Track student applications through the admission pipeline.")
	summary := components.RenderPipelineSummary(svc.Summary())

	pickedID := 0
	target := -1
	if pm, ok := m.BoardState.Pending(); ok {
		pickedID = pm.CardID
		target = m.BoardState.Target()
	}

	// Keep the cursor column (or drop target) in view
	focus := m.UiState.SelectedColumn()
	if target >= 0 {
		focus = target
	}
	perView := max(m.UiState.ContentWidth()/(components.ColumnWidth+6), 1)
	start := 0
	if focus >= perView {
		start = focus - perView + 1
	}
	end := min(start+perView, len(stages))

	height := max(m.UiState.ContentHeight()-lipgloss.Height(header)-lipgloss.Height(summary), 8)
	columns := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards, err := svc.CardsByStage(stages[i].ID)
		if err != nil {
			cards = []models.Application{}
		}
		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Stage:        stages[i],
			Cards:        cards,
			Selected:     i == m.UiState.SelectedColumn(),
			SelectedCard: m.UiState.SelectedCard(),
			PickedCardID: pickedID,
			DropTarget:   i == target,
			Height:       height,
		}))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if start > 0 || end < len(stages) {
		board += "\n" + components.IndicatorStyle.Render(fmt.Sprintf("stages %d-%d of %d", start+1, end, len(stages)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, summary, board)
}
