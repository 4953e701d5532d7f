package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a YAML scenario list. Each entry needs file and title;
// description is optional (the caption panel just shows less text).
func LoadCatalog(path string) ([]Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(b, &scenarios); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("catalog %s: no scenarios", path)
	}
	for i, sc := range scenarios {
		if sc.File == "" {
			return nil, fmt.Errorf("catalog %s: scenario %d missing file", path, i+1)
		}
		if sc.Title == "" {
			return nil, fmt.Errorf("catalog %s: scenario %d (%s) missing title", path, i+1, sc.File)
		}
	}
	return scenarios, nil
}
