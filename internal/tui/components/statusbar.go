package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures RenderStatusBar
type StatusBarProps struct {
	Width  int
	Left   string // Mode or filter summary
	Banner string // Highlighted text shown first, e.g. while a card is picked up
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: banner and context
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	rightText := "press ? for help"

	left := ""
	if props.Banner != "" {
		left = MovingBannerStyle.Render(props.Banner) + " "
	}
	left += SubtleStyle.Render(props.Left)
	right := SubtleStyle.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return left + strings.Repeat(" ", gapWidth) + right
}
