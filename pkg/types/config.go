// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-latex-mcp/0.1"). arXiv asks automated clients to
	// identify themselves; a contact email from .secrets/ is appended
	// when present.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ParsePolicy controls how the feed parser treats an entry that is
// missing a required field (id, title, or summary).
type ParsePolicy string

const (
	// ParseAbort fails the whole parse on the first invalid entry. This
	// is the default: a malformed feed usually means the API changed or
	// returned an error page, and a partial answer would hide that.
	ParseAbort ParsePolicy = "abort"

	// ParseSkip drops invalid entries and keeps the rest.
	ParseSkip ParsePolicy = "skip"
)

// SearchConfig holds settings for the search tool.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the number of results requested from the arXiv API
	// (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// ParsePolicy selects the feed-parse failure policy (default "abort").
	ParsePolicy ParsePolicy `json:"parse_policy" yaml:"parse_policy"`
}

// FlattenConfig holds settings for the LaTeX source flattener.
type FlattenConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxIncludeDepth bounds recursive \input/\include expansion
	// (default 10). Cyclic includes terminate at this depth.
	MaxIncludeDepth int `json:"max_include_depth" yaml:"max_include_depth"`
}

// ServerConfig groups all component configurations for the MCP server.
type ServerConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Flatten FlattenConfig `json:"flatten" yaml:"flatten"`
}
