// Package runtime handles response scheduling, turn selection and reply
// generation. It orchestrates the system without containing domain rules.
package runtime

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"echo-lab/domain"
	"echo-lab/errors"
)

//go:embed personas/personas.yaml
var personaFolder embed.FS

type personaFile struct {
	Personas []domain.PersonaTemplate `yaml:"personas"`
}

// LoadPersonaCatalog reads the embedded persona template list.
// Catalog order is roster order: sessions truncate this list at creation.
func LoadPersonaCatalog() ([]domain.PersonaTemplate, error) {
	data, err := personaFolder.ReadFile("personas/personas.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading persona catalog: %w", err)
	}

	var file personaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing persona catalog: %w", err)
	}

	if len(file.Personas) == 0 {
		return nil, errors.ErrEmptyPersonaCatalog
	}
	return file.Personas, nil
}
