// Package seed provides the static dataset the dashboard is populated from.
// The default dataset is embedded; an alternative YAML file can replace it.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/admitdesk/internal/models"
)

//go:embed default.yaml
var defaultData []byte

// Trends holds the KPI trend labels shown next to each dashboard figure
type Trends struct {
	TotalStudents         string `yaml:"total_students"`
	ActiveApplications    string `yaml:"active_applications"`
	PartnerUniversities   string `yaml:"partner_universities"`
	AvailableScholarships string `yaml:"available_scholarships"`
}

// Dataset is the complete set of records loaded at process start
type Dataset struct {
	Stages        []models.Stage        `yaml:"stages"`
	Students      []models.Student      `yaml:"students"`
	Universities  []models.University   `yaml:"universities"`
	Applications  []models.Application  `yaml:"applications"`
	Activities    []models.Activity     `yaml:"activities"`
	Notifications []models.Notification `yaml:"notifications"`
	Trends        Trends                `yaml:"trends"`
}

// Default returns the embedded dataset
func Default() (*Dataset, error) {
	return Parse(defaultData)
}

// LoadFile reads a dataset from a YAML file
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Load returns the dataset at path, or the embedded default when path is empty
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes and validates a YAML dataset.
// A dataset without stages gets the default pipeline.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	if len(ds.Stages) == 0 {
		ds.Stages = models.DefaultStages()
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks identifier uniqueness and that every card sits in a known stage
func (d *Dataset) Validate() error {
	stages := make(map[models.StageID]bool, len(d.Stages))
	for _, st := range d.Stages {
		if st.ID == "" {
			return fmt.Errorf("stage %q has an empty id", st.Title)
		}
		if stages[st.ID] {
			return fmt.Errorf("duplicate stage id %q", st.ID)
		}
		stages[st.ID] = true
	}

	studentIDs := make(map[int]bool, len(d.Students))
	for _, s := range d.Students {
		if studentIDs[s.ID] {
			return fmt.Errorf("duplicate student id %d", s.ID)
		}
		studentIDs[s.ID] = true
	}

	universityIDs := make(map[int]bool, len(d.Universities))
	for _, u := range d.Universities {
		if universityIDs[u.ID] {
			return fmt.Errorf("duplicate university id %d", u.ID)
		}
		universityIDs[u.ID] = true
	}

	cardIDs := make(map[int]bool, len(d.Applications))
	for _, a := range d.Applications {
		if cardIDs[a.ID] {
			return fmt.Errorf("duplicate application id %d", a.ID)
		}
		cardIDs[a.ID] = true
		if !stages[a.Stage] {
			return fmt.Errorf("application %d: %w: %q", a.ID, models.ErrStageNotFound, a.Stage)
		}
	}
	return nil
}
