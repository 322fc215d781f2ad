package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load walks dir for *.yaml fixtures and decodes each into a Scenario.
func Load(dir string) ([]Scenario, error) {
	var scenarios []Scenario
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		var scenario Scenario
		if err := yaml.Unmarshal(data, &scenario); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if scenario.Name == "" {
			scenario.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
		}
		scenarios = append(scenarios, scenario)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scenarios, nil
}
