package source

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the mapping form of a YAML or JSON event file.
// A bare list of events is accepted as well.
type document struct {
	Events []rawEvent `yaml:"events" json:"events"`
}

func readYAMLFile(path string) ([]rawEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML file: %w", err)
	}

	var list []rawEvent
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing YAML file: %w", err)
	}
	return doc.Events, nil
}

func readJSONFile(path string) ([]rawEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON file: %w", err)
	}

	var list []rawEvent
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing JSON file: %w", err)
	}
	return doc.Events, nil
}
