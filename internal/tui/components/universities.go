package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/tui/theme"
)

// Stat is a titled figure without a trend line
type Stat struct {
	Title string
	Value int
}

// RenderStats renders stat cards in a row
func RenderStats(stats []Stat) string {
	cards := make([]string, 0, len(stats))
	for _, st := range stats {
		body := SubtleStyle.Render(st.Title) + "\n" +
			lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", st.Value))
		cards = append(cards, PanelStyle.Width(KPIWidth+4).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// RenderUniversityRow renders one university entry
//
//	Technical University of Berlin [Partner]  #1 · 12 programs · 15 scholarships
//	Berlin, Germany                           €0 - €3,000
//	Intakes: Winter, Summer · Deadline 2024-07-15
func RenderUniversityRow(u models.University, selected bool, width int) string {
	name := lipgloss.NewStyle().Bold(true).Render(u.Name)
	if u.Partner {
		name += " " + RenderBadge("Partner", theme.Success)
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		name,
		SubtleStyle.Render(u.City+", "+u.Country),
		SubtleStyle.Render("Intakes: "+strings.Join(u.Intakes, ", ")+" · Deadline "+u.ApplicationDeadline),
	)

	right := lipgloss.JoinVertical(lipgloss.Right,
		fmt.Sprintf("#%d · %d programs · %d scholarships", u.Ranking, u.Programs, u.Scholarships),
		u.TuitionRange,
		SubtleStyle.Render(fmt.Sprintf("%d students", u.Students)),
	)

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-3, 1)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)

	if selected {
		return SelectedRowStyle.Render(row)
	}
	return RowStyle.Render(row)
}
