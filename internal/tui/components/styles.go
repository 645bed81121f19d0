// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/admitdesk/internal/config/colors"
	"github.com/thenoetrevino/admitdesk/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// SidebarStyle frames the navigation sidebar
	SidebarStyle lipgloss.Style

	// SidebarItemStyle and SidebarActiveStyle render navigation entries
	SidebarItemStyle   lipgloss.Style
	SidebarActiveStyle lipgloss.Style

	// ColumnStyle defines the appearance of pipeline board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of application cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, page headers)
	TitleStyle lipgloss.Style

	// SubtleStyle is muted secondary text
	SubtleStyle lipgloss.Style

	// PanelStyle frames dashboard panels and KPI cards
	PanelStyle lipgloss.Style

	// RowStyle and SelectedRowStyle render list entries
	RowStyle         lipgloss.Style
	SelectedRowStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// MovingBannerStyle marks the status bar while a card is picked up
	MovingBannerStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	theme.Init(colors)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	SidebarStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(colors.SidebarBg)).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SidebarActiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.SidebarActive)).
		Bold(true)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1)

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		BorderBackground(lipgloss.Color(colors.CardBackground)).
		Background(lipgloss.Color(colors.CardBackground)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		PaddingLeft(1)

	SelectedRowStyle = RowStyle.
		BorderForeground(lipgloss.Color(colors.SelectedBorder)).
		Background(lipgloss.Color(colors.SelectedBg))

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.StatusBarBg)).
		Foreground(lipgloss.Color(colors.StatusBarText))

	MovingBannerStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.PickedBorder)).
		Foreground(lipgloss.Color(colors.StatusBarText)).
		Bold(true).
		Padding(0, 1)
}

// RenderBadge renders a small colored label such as a status or priority
func RenderBadge(text, color string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render("[" + text + "]")
}
