package theme

import "github.com/thenoetrevino/admitdesk/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	SidebarBg      string
	SidebarActive  string
	Success        string
	Warning        string
	Danger         string
	Subtle         string
	Normal         string
	Title          string
	SelectedBorder string
	SelectedBg     string
	PickedBorder   string
	DropTarget     string
	CardBg         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	SidebarBg = colors.SidebarBg
	SidebarActive = colors.SidebarActive
	Success = colors.Success
	Warning = colors.Warning
	Danger = colors.Danger
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	PickedBorder = colors.PickedBorder
	DropTarget = colors.DropTarget
	CardBg = colors.CardBackground
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
