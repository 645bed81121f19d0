package models

// Priority values used on application cards
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Application is the pipeline card for one student's application.
// StudentName references the student by name only; it is not an enforced key.
type Application struct {
	ID          int      `yaml:"id" json:"id"`
	StudentName string   `yaml:"student_name" json:"student_name"`
	University  string   `yaml:"university" json:"university"`
	Program     string   `yaml:"program" json:"program"`
	Deadline    string   `yaml:"deadline" json:"deadline"`
	Priority    string   `yaml:"priority" json:"priority"`
	Documents   []string `yaml:"documents" json:"documents"`
	MissingDocs []string `yaml:"missing_docs" json:"missing_docs"`
	Stage       StageID  `yaml:"stage" json:"stage"`
}

// GetID returns the card ID (used by quiet CLI output)
func (a Application) GetID() int {
	return a.ID
}

// Clone returns a deep copy so callers cannot alias the document slices
func (a Application) Clone() Application {
	c := a
	if a.Documents != nil {
		c.Documents = append([]string(nil), a.Documents...)
	}
	if a.MissingDocs != nil {
		c.MissingDocs = append([]string(nil), a.MissingDocs...)
	}
	return c
}
