// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-latex-mcp server.
package types

// SearchResult represents one paper returned by an arXiv API query.
// Results are constructed during feed parsing, rendered by the formatter,
// and discarded; nothing outlives the tool call that produced them.
type SearchResult struct {
	// ID is the bare arXiv identifier taken from the last path segment of
	// the feed entry's id URL (e.g. "2403.12345v2"). Version suffixes are
	// preserved: stripping them would silently change which revision the
	// fetch tool retrieves.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, whitespace-trimmed.
	Title string `json:"title" yaml:"title"`

	// Summary is the abstract, whitespace-trimmed and truncated to 500
	// runes plus an ellipsis when longer.
	Summary string `json:"summary" yaml:"summary"`

	// URL is the abstract page, derived as https://arxiv.org/abs/{ID}.
	URL string `json:"url" yaml:"url"`
}
