package pdf

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed checklist.yaml
var defaultChecklistYAML []byte

// ChecklistSection bloque del checklist (ej. "First Day").
type ChecklistSection struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Checklist definición completa del checklist de onboarding.
type Checklist struct {
	Sections []ChecklistSection `yaml:"sections"`
}

// ParseChecklist decodifica un checklist en YAML. Exige al menos una sección con ítems.
func ParseChecklist(data []byte) (*Checklist, error) {
	var c Checklist
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("checklist: yaml inválido: %w", err)
	}
	if len(c.Sections) == 0 {
		return nil, fmt.Errorf("checklist: sin secciones")
	}
	for i, s := range c.Sections {
		if s.Title == "" {
			return nil, fmt.Errorf("checklist: sección %d sin título", i)
		}
		if len(s.Items) == 0 {
			return nil, fmt.Errorf("checklist: sección %q sin ítems", s.Title)
		}
	}
	return &c, nil
}

// DefaultChecklist checklist embebido en el binario.
func DefaultChecklist() (*Checklist, error) {
	return ParseChecklist(defaultChecklistYAML)
}
