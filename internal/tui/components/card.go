package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/tui/theme"
)

// PriorityColor returns the badge color for a priority
func PriorityColor(priority string) string {
	switch priority {
	case models.PriorityHigh:
		return theme.Danger
	case models.PriorityMedium:
		return theme.Warning
	default:
		return theme.Success
	}
}

// RenderCard renders an application card
//
// Layout:
//
//	Rashida Rahman      [high]
//	Technical University of Berlin
//	Computer Science
//	⏱ 2024-03-15
//	✓ 3 docs  ✕ 1 missing
//
// selected highlights the card under the cursor; picked marks the card
// currently lifted by a move.
func RenderCard(app models.Application, selected, picked bool) string {
	name := truncate(app.StudentName, CardWidth-lipgloss.Width(app.Priority)-4)
	badge := RenderBadge(app.Priority, PriorityColor(app.Priority))
	gap := max(CardWidth-lipgloss.Width(name)-lipgloss.Width(badge), 1)
	header := lipgloss.NewStyle().Bold(true).Render(name) + strings.Repeat(" ", gap) + badge

	lines := []string{
		header,
		truncate(app.University, CardWidth),
		SubtleStyle.Render(truncate(app.Program, CardWidth)),
		SubtleStyle.Render("⏱ " + app.Deadline),
		renderDocs(app),
	}

	style := CardStyle.Width(CardWidth + 4)
	switch {
	case picked:
		style = style.BorderForeground(lipgloss.Color(theme.PickedBorder))
	case selected:
		style = style.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			BorderBackground(lipgloss.Color(theme.SelectedBg)).
			Background(lipgloss.Color(theme.SelectedBg))
	}

	return style.Render(strings.Join(lines, "\n"))
}

func renderDocs(app models.Application) string {
	ok := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success)).
		Render(fmt.Sprintf("✓ %d docs", len(app.Documents)))
	if len(app.MissingDocs) == 0 {
		return ok
	}
	missing := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Danger)).
		Render(fmt.Sprintf("✕ %d missing", len(app.MissingDocs)))
	return ok + "  " + missing
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
