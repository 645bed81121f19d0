package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/tui/state"
)

// SidebarProps configures RenderSidebar
type SidebarProps struct {
	Active    state.Page
	Collapsed bool
	Language  string
	Height    int
}

// RenderSidebar renders the navigation sidebar.
//
// Layout (expanded):
//
//	Credenza
//	Education
//
//	▦ Dashboard
//	☺ Students
//	...
//	★ Scholarships  soon
//
//	g: বাংলা
func RenderSidebar(props SidebarProps) string {
	var b strings.Builder

	if !props.Collapsed {
		b.WriteString(TitleStyle.Render("Credenza") + "\n")
		b.WriteString(SubtleStyle.Render("Education") + "\n\n")
	} else {
		b.WriteString(TitleStyle.Render("C") + "\n\n\n")
	}

	for _, item := range NavItems() {
		style := SidebarItemStyle
		if item.Ready && item.Page == props.Active {
			style = SidebarActiveStyle
		}
		if !item.Ready {
			style = SubtleStyle
		}

		line := item.Icon
		if !props.Collapsed {
			line += " " + item.Text(props.Language)
			if !item.Ready {
				line += " " + SubtleStyle.Italic(true).Render("soon")
			}
		}
		b.WriteString(style.Render(line) + "\n")
	}

	if !props.Collapsed {
		other := "বাংলা"
		if props.Language == models.LanguageBangla {
			other = "English"
		}
		b.WriteString("\n" + SubtleStyle.Render("g: "+other))
	}

	width := state.SidebarWidth
	if props.Collapsed {
		width = state.SidebarCollapsedWidth
	}

	return SidebarStyle.
		Width(width).
		Height(max(props.Height, lipgloss.Height(b.String()))).
		Render(b.String())
}
