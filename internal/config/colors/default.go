package colors

// Default returns the default color scheme (indigo theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#6366F1",

		// Sidebar
		SidebarBg:     "#1E1B4B",
		SidebarActive: "#818CF8",

		// Semantic
		Success: "#10B981",
		Warning: "#F59E0B",
		Danger:  "#EF4444",

		// UI elements
		ColumnBorder:   "#4B5563",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		SelectedBorder: "#818CF8",
		SelectedBg:     "#3A3A3A",
		PickedBorder:   "#EC4899",
		DropTarget:     "#F59E0B",

		// Text
		Title:  "#A5B4FC",
		Subtle: "#6B7280",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		// Status bar
		StatusBarBg:   "#6366F1", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
	}
}
