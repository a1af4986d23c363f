package quiz

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinition reads a quiz definition from a YAML file. JSON files work
// too since JSON is valid YAML. The definition is validated.
func LoadDefinition(path string) (Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read quiz %s: %w", path, err)
	}
	return ParseDefinition(raw)
}

// ParseDefinition decodes and validates a YAML (or JSON) quiz definition.
func ParseDefinition(raw []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return Definition{}, fmt.Errorf("decode quiz: %w", err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}
