package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/tui/theme"
)

// StatusColor returns the badge color for a student status
func StatusColor(status string) string {
	switch status {
	case models.StatusActive:
		return theme.Success
	case models.StatusPending:
		return theme.Warning
	default:
		return theme.Danger
	}
}

// RenderStudentRow renders one student entry
//
//	(RR) Rashida Rahman [active] [Applied]      Technical University of Berlin
//	     rashida@email.com · Germany            GPA 3.8 · IELTS 7.5
//	                                            Counselor: Sarah Ahmed
func RenderStudentRow(s models.Student, selected bool, width int) string {
	avatar := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Highlight)).
		Bold(true).
		Render(fmt.Sprintf(" %s ", s.Initials()))

	left := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(s.Name)+" "+
			RenderBadge(s.Status, StatusColor(s.Status))+" "+
			RenderBadge(s.Stage, theme.Highlight),
		SubtleStyle.Render(s.Email+" · "+s.Phone),
		SubtleStyle.Render(s.Country+" · joined "+s.JoinDate),
	)

	right := lipgloss.NewStyle().Align(lipgloss.Right).Render(lipgloss.JoinVertical(lipgloss.Right,
		s.University,
		fmt.Sprintf("GPA %s · IELTS %s", s.GPA, s.IELTS),
		SubtleStyle.Render("Counselor: "+s.Counselor),
	))

	row := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", left)
	gap := max(width-lipgloss.Width(row)-lipgloss.Width(right)-3, 1)
	row = lipgloss.JoinHorizontal(lipgloss.Top, row, lipgloss.NewStyle().Width(gap).Render(""), right)

	if selected {
		return SelectedRowStyle.Render(row)
	}
	return RowStyle.Render(row)
}
