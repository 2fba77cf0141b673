// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/typeahead/pkg/types"
)

// ResultFile is the on-disk representation of a lookup and its results. A
// saved lookup can be reprinted later without touching the source.
type ResultFile struct {
	Lookup  LookupParams       `yaml:"lookup"`
	Results []types.Suggestion `yaml:"results"`
	Summary LookupSummary      `yaml:"summary"`
}

// LookupParams stores the lookup parameters in a serializable form.
type LookupParams struct {
	Term  string          `yaml:"term"`
	Limit int             `yaml:"limit"`
	Mode  types.MatchMode `yaml:"mode"`
}

// LookupSummary stores result statistics and a timestamp.
type LookupSummary struct {
	Total     int       `yaml:"total"`
	Source    string    `yaml:"source"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves lookup parameters and results to a YAML file.
func WriteResultFile(path string, params LookupParams, sourceName string, results []types.Suggestion) error {
	rf := ResultFile{
		Lookup:  params,
		Results: results,
		Summary: LookupSummary{
			Total:     len(results),
			Source:    sourceName,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved lookup from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
