package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/admitdesk/internal/config"
	"github.com/thenoetrevino/admitdesk/internal/markdown"
	"github.com/thenoetrevino/admitdesk/internal/tui/components"
)

// helpMarkdown builds the help screen from the active key mappings
func helpMarkdown(km config.KeyMappings) string {
	return fmt.Sprintf(`# Keyboard shortcuts

## Pages
| Key | Action |
|---|---|
| %s / %s | next / previous page |
| 1-4 | jump to page |
| %s | collapse sidebar |
| %s | switch language |
| %s | toggle help |
| %s | quit |

## Students & Universities
| Key | Action |
|---|---|
| %s | search (enter keeps, esc clears) |
| %s / %s | move selection |
| %s | cycle status |
| %s | cycle partner |
| %s | cycle country |
| %s | clear filters |

## Applications
| Key | Action |
|---|---|
| %s / %s | previous / next stage column |
| %s / %s | previous / next card |
| %s | pick up card |
| %s | drop on highlighted stage |
| %s | cancel move |
| %s / %s | move card one stage left / right |
`,
		km.NextPage, km.PrevPage, km.ToggleSidebar, km.ToggleLanguage, km.ShowHelp, km.Quit,
		km.Search, km.NextItem, km.PrevItem, km.CycleStatus, km.CyclePartner, km.CycleCountry, km.ClearFilters,
		km.PrevColumn, km.NextColumn, km.PrevItem, km.NextItem,
		km.PickUpCard, km.DropCard, km.CancelMove, km.MoveCardLeft, km.MoveCardRight,
	)
}

// renderHelpLayer renders the help overlay centered on screen
func (m Model) renderHelpLayer() *lipgloss.Layer {
	width := max(min(m.UiState.Width()*2/3, 90), 30)
	body := markdown.Render(helpMarkdown(m.Config.KeyMappings), width-6, markdown.StyleDark)

	box := components.HelpBoxStyle.Width(width).Render(body)

	x := max((m.UiState.Width()-lipgloss.Width(box))/2, 0)
	y := max((m.UiState.Height()-lipgloss.Height(box))/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y)
}
