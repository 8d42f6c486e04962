// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-latex-mcp/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results.
// The CLI can save a search to a file and later pick an ID out of it
// for fetching without re-querying the API.
type QueryFile struct {
	Query   string               `yaml:"query"`
	SavedAt time.Time            `yaml:"saved_at"`
	Results []types.SearchResult `yaml:"results"`
}

// SaveQueryFile writes the query and its results to path as YAML.
func SaveQueryFile(path, query string, results []types.SearchResult) error {
	qf := QueryFile{
		Query:   query,
		SavedAt: time.Now().UTC(),
		Results: results,
	}
	data, err := yaml.Marshal(qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing query file %s: %w", path, err)
	}
	return nil
}

// LoadQueryFile reads a previously saved query file.
func LoadQueryFile(path string) (QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return QueryFile{}, fmt.Errorf("reading query file %s: %w", path, err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return QueryFile{}, fmt.Errorf("parsing query file %s: %w", path, err)
	}
	return qf, nil
}
