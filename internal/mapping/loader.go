package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads a YAML tables file and layers it over the defaults.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data over the built-in tables. Keys present in data
// replace the corresponding default table whole.
func Parse(data []byte) (*Tables, error) {
	t := Default()

	err := yaml.Unmarshal(data, t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tables YAML: %w", err)
	}

	applyDefaults(t)

	return t, nil
}

// applyDefaults fills in default values for optional scalars.
func applyDefaults(t *Tables) {
	if t.Version == "" {
		t.Version = "1"
	}

	if t.ReturnTo == "" {
		t.ReturnTo = "Idle"
	}
}

// Marshal serializes Tables to YAML.
func Marshal(t *Tables) ([]byte, error) {
	return yaml.Marshal(t)
}

// WriteFile writes Tables to the given path.
func WriteFile(t *Tables, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal tables: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tables file %s: %w", path, err)
	}

	return nil
}
