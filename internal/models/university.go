package models

// University is a directory entry for a destination institution
type University struct {
	ID                  int      `yaml:"id" json:"id"`
	Name                string   `yaml:"name" json:"name"`
	Country             string   `yaml:"country" json:"country"`
	City                string   `yaml:"city" json:"city"`
	Logo                string   `yaml:"logo" json:"logo"`
	Partner             bool     `yaml:"partner" json:"partner"`
	Ranking             int      `yaml:"ranking" json:"ranking"`
	Students            int      `yaml:"students" json:"students"`
	Programs            int      `yaml:"programs" json:"programs"`
	Scholarships        int      `yaml:"scholarships" json:"scholarships"`
	TuitionRange        string   `yaml:"tuition_range" json:"tuition_range"`
	Description         string   `yaml:"description" json:"description"`
	Website             string   `yaml:"website" json:"website"`
	ApplicationDeadline string   `yaml:"application_deadline" json:"application_deadline"`
	Intakes             []string `yaml:"intakes" json:"intakes"`
}

// GetID returns the university ID
func (u University) GetID() int {
	return u.ID
}
