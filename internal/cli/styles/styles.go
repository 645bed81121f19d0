package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/admitdesk/internal/config"
	"github.com/thenoetrevino/admitdesk/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Country:", "GPA:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Recent Activities"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	scheme = config.DefaultColorScheme()
)

func init() {
	Init(scheme)
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	scheme = colors

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Danger))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Warning))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderStageHeader renders "● Title (count)" in the stage's color
func RenderStageHeader(stage models.Stage, count int) string {
	return BoldColoredText(fmt.Sprintf("● %s (%d)", stage.Title, count), stage.Color)
}

// RenderStatus renders a student status in its semantic color
func RenderStatus(status string) string {
	switch status {
	case models.StatusActive:
		return SuccessStyle.Render(status)
	case models.StatusInactive:
		return ErrorStyle.Render(status)
	default:
		return WarningStyle.Render(status)
	}
}

// RenderPriority renders a card priority in its semantic color
func RenderPriority(priority string) string {
	switch priority {
	case models.PriorityHigh:
		return ErrorStyle.Render(priority)
	case models.PriorityMedium:
		return WarningStyle.Render(priority)
	default:
		return SuccessStyle.Render(priority)
	}
}

// RenderPartner renders the partner badge, or nothing for non-partners
func RenderPartner(partner bool) string {
	if !partner {
		return ""
	}
	return ColoredText("★ partner", scheme.Success)
}
