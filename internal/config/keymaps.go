package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Pages
	NextPage       string `yaml:"next_page"`
	PrevPage       string `yaml:"prev_page"`
	ToggleSidebar  string `yaml:"toggle_sidebar"`
	ToggleLanguage string `yaml:"toggle_language"`

	// Lists
	Search       string `yaml:"search"`
	CycleStatus  string `yaml:"cycle_status"`
	CyclePartner string `yaml:"cycle_partner"`
	CycleCountry string `yaml:"cycle_country"`
	ClearFilters string `yaml:"clear_filters"`

	// Board
	PickUpCard    string `yaml:"pick_up_card"`
	DropCard      string `yaml:"drop_card"`
	CancelMove    string `yaml:"cancel_move"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Pages
		NextPage:       "tab",
		PrevPage:       "shift+tab",
		ToggleSidebar:  "b",
		ToggleLanguage: "g",

		// Lists
		Search:       "/",
		CycleStatus:  "s",
		CyclePartner: "p",
		CycleCountry: "c",
		ClearFilters: "x",

		// Board
		PickUpCard:    "space",
		DropCard:      "enter",
		CancelMove:    "esc",
		MoveCardLeft:  "H",
		MoveCardRight: "L",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.NextPage, defaults.NextPage)
	fill(&k.PrevPage, defaults.PrevPage)
	fill(&k.ToggleSidebar, defaults.ToggleSidebar)
	fill(&k.ToggleLanguage, defaults.ToggleLanguage)
	fill(&k.Search, defaults.Search)
	fill(&k.CycleStatus, defaults.CycleStatus)
	fill(&k.CyclePartner, defaults.CyclePartner)
	fill(&k.CycleCountry, defaults.CycleCountry)
	fill(&k.ClearFilters, defaults.ClearFilters)
	fill(&k.PickUpCard, defaults.PickUpCard)
	fill(&k.DropCard, defaults.DropCard)
	fill(&k.CancelMove, defaults.CancelMove)
	fill(&k.MoveCardLeft, defaults.MoveCardLeft)
	fill(&k.MoveCardRight, defaults.MoveCardRight)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevItem, defaults.PrevItem)
	fill(&k.NextItem, defaults.NextItem)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
