package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/tui/theme"
)

// ColumnProps configures RenderColumn
type ColumnProps struct {
	Stage        models.Stage
	Cards        []models.Application
	Selected     bool // Column holds the cursor
	SelectedCard int  // Index of the selected card, used when Selected
	PickedCardID int  // ID of the card being moved, 0 when idle
	DropTarget   bool // Column the picked card would land in
	Height       int  // Fixed height for the column (0 for auto)
}

// RenderColumn renders a complete stage column with its title and cards
//
// Layout:
//
//	● {Stage Title} ({count})
//	▲ more above
//	{Card 1}
//	{Card 2}
//	▼ more below
func RenderColumn(props ColumnProps) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(props.Stage.Color)).Render("●")
	header := dot + " " + TitleStyle.Render(fmt.Sprintf("%s (%d)", props.Stage.Title, len(props.Cards)))
	content := header + "\n"

	if len(props.Cards) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No applications")
	} else {
		// Column overhead: border (2) + header (1) + indicators (2)
		const columnOverhead = 5
		maxVisible := len(props.Cards)
		if props.Height > 0 {
			maxVisible = max((props.Height-columnOverhead)/CardHeight, 1)
		}

		offset := 0
		if props.Selected && props.SelectedCard >= maxVisible {
			offset = props.SelectedCard - maxVisible + 1
		}
		end := min(offset+maxVisible, len(props.Cards))

		if offset > 0 {
			content += IndicatorStyle.Width(ColumnWidth).Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		for i, card := range props.Cards[offset:end] {
			idx := offset + i
			selected := props.Selected && idx == props.SelectedCard
			picked := props.PickedCardID != 0 && card.ID == props.PickedCardID
			content += RenderCard(card, selected, picked) + "\n"
		}

		if end < len(props.Cards) {
			content += IndicatorStyle.Width(ColumnWidth).Render("▼ more below")
		}
	}

	style := ColumnStyle.Width(ColumnWidth + 4)
	if props.Height > 0 {
		style = style.Height(props.Height)
	}
	switch {
	case props.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(content)
}

// RenderPipelineSummary renders the per-stage counts strip above the board
//
//	● New 2   ● Qualified 1   ● Applied 1   ● Visa Process 1   ● Enrolled 1
func RenderPipelineSummary(summary []models.StageSummary) string {
	parts := make([]string, 0, len(summary))
	for _, s := range summary {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Stage.Color)).Render("●")
		count := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", s.Count))
		parts = append(parts, PanelStyle.Render(dot+" "+s.Stage.Title+" "+count))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
