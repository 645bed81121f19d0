package components

// Board layout
const (
	// CardWidth is the inner width of an application card
	CardWidth = 28

	// CardHeight is the rendered height of a card including its border
	CardHeight = 7

	// ColumnWidth is the inner width of a board column
	ColumnWidth = CardWidth + 4
)
