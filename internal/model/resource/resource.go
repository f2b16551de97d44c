package resource

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Resource is a read-only wellness catalog entry (exercise, guide or crisis
// contact sheet) exposed to the frontend.
type Resource struct {
	ID          string    `yaml:"id" json:"id"`
	Category    string    `yaml:"category" json:"category"`
	Type        string    `yaml:"type" json:"type"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description"`
	Steps       []string  `yaml:"steps,omitempty" json:"steps,omitempty"`
	Tips        []string  `yaml:"tips,omitempty" json:"tips,omitempty"`
	Contacts    []Contact `yaml:"contacts,omitempty" json:"contacts,omitempty"`
	Tags        []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
	Duration    string    `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// Contact describes a support line inside a crisis resource.
type Contact struct {
	Name      string `yaml:"name" json:"name"`
	Contact   string `yaml:"contact" json:"contact"`
	Available string `yaml:"available" json:"available"`
	Country   string `yaml:"country,omitempty" json:"country,omitempty"`
}

//go:embed catalog.yaml
var catalogYAML []byte

// Seed parses the embedded catalog. The catalog ships with the binary and is
// validated at startup, so a parse failure is a build defect.
func Seed() ([]Resource, error) {
	var doc struct {
		Resources []Resource `yaml:"resources"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse resource catalog: %w", err)
	}
	return doc.Resources, nil
}
