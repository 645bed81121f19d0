package models

// StageID identifies one step of the admission pipeline (e.g., "new", "visa")
type StageID string

// Pipeline stage identifiers, in board display order
const (
	StageNew       StageID = "new"
	StageQualified StageID = "qualified"
	StageApplied   StageID = "applied"
	StageVisa      StageID = "visa"
	StageEnrolled  StageID = "enrolled"
)

// Stage represents a kanban board column of the application pipeline
// The set of stages is closed and fixed when the board is created
type Stage struct {
	ID    StageID `yaml:"id" json:"id"`
	Title string  `yaml:"title" json:"title"` // Display name of the column
	Color string  `yaml:"color" json:"color"` // Hex color used for the column marker
}

// DefaultStages returns the admission pipeline in display order
func DefaultStages() []Stage {
	return []Stage{
		{ID: StageNew, Title: "New", Color: "#3B82F6"},
		{ID: StageQualified, Title: "Qualified", Color: "#8B5CF6"},
		{ID: StageApplied, Title: "Applied", Color: "#F59E0B"},
		{ID: StageVisa, Title: "Visa Process", Color: "#EC4899"},
		{ID: StageEnrolled, Title: "Enrolled", Color: "#10B981"},
	}
}
