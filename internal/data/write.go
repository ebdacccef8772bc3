package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteScenario encodes s as YAML with an optional leading comment.
func WriteScenario(path string, s *Scenario, header string) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	if header != "" {
		out = append([]byte("# "+header+"\n\n"), out...)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write scenario: %w", err)
	}
	return nil
}
