package models

// KPI is one headline figure on the dashboard
type KPI struct {
	Title  string `json:"title"`
	Value  int    `json:"value"`
	Change string `json:"change"` // Trend label such as "+12%"
}

// Activity is an entry in the dashboard's recent activity feed
type Activity struct {
	ID      int    `yaml:"id" json:"id"`
	Student string `yaml:"student" json:"student"`
	Action  string `yaml:"action" json:"action"`
	Time    string `yaml:"time" json:"time"`
	Kind    string `yaml:"kind" json:"kind"` // application, document, visa, enrollment
}

// Notification is a dashboard alert
type Notification struct {
	ID      int    `yaml:"id" json:"id"`
	Title   string `yaml:"title" json:"title"`
	Message string `yaml:"message" json:"message"`
	Level   string `yaml:"level" json:"level"` // info, warning, success
}

// StageSummary is the card count of one pipeline stage
type StageSummary struct {
	Stage Stage `json:"stage"`
	Count int   `json:"count"`
}
