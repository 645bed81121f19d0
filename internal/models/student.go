package models

// Student status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// Student is a roster entry. Students are read-only for the lifetime of the process.
type Student struct {
	ID         int    `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Email      string `yaml:"email" json:"email"`
	Phone      string `yaml:"phone" json:"phone"`
	Status     string `yaml:"status" json:"status"`
	Stage      string `yaml:"stage" json:"stage"` // Display label, e.g. "Applied"
	Country    string `yaml:"country" json:"country"`
	University string `yaml:"university" json:"university"`
	GPA        string `yaml:"gpa" json:"gpa"`
	IELTS      string `yaml:"ielts" json:"ielts"`
	JoinDate   string `yaml:"join_date" json:"join_date"`
	Counselor  string `yaml:"counselor" json:"counselor"`
}

// GetID returns the student ID
func (s Student) GetID() int {
	return s.ID
}

// Initials returns the first letter of each word in the name ("Md. Karim Ahmed" -> "MKA")
func (s Student) Initials() string {
	var out []rune
	start := true
	for _, r := range s.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}
