// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-latex-mcp/pkg/types"
)

// summaryLimit is the maximum summary length in runes before truncation.
const summaryLimit = 500

// ellipsis marks a truncated summary. One rune, so a truncated summary
// is at most summaryLimit+1 runes long.
const ellipsis = "…"

// Atom feed XML structures. The arXiv API serves the Atom namespace;
// encoding/xml matches local names, so no namespace prefixes are needed.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID      string `xml:"id"`
	Title   string `xml:"title"`
	Summary string `xml:"summary"`
}

// ParseFeed parses a raw Atom response into search results, preserving
// entry order. An entry missing id, title, or summary is invalid; the
// policy decides whether the whole parse fails (ParseAbort, the
// default) or the entry is dropped (ParseSkip). Parse failures wrap
// ErrParse.
func ParseFeed(raw string, policy types.ParsePolicy) ([]types.SearchResult, error) {
	var feed atomFeed
	if err := xml.Unmarshal([]byte(raw), &feed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if policy == "" {
		policy = types.ParseAbort
	}

	results := make([]types.SearchResult, 0, len(feed.Entries))
	for i, entry := range feed.Entries {
		r, err := extractResult(entry)
		if err != nil {
			if policy == types.ParseSkip {
				continue
			}
			return nil, fmt.Errorf("%w: entry %d: %v", ErrParse, i, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// extractResult normalizes one feed entry. The id is the last path
// segment of the entry's id URL, version suffix included.
func extractResult(entry atomEntry) (types.SearchResult, error) {
	id := extractID(entry.ID)
	if id == "" {
		return types.SearchResult{}, fmt.Errorf("missing or unusable id field %q", entry.ID)
	}

	title := strings.TrimSpace(entry.Title)
	if title == "" {
		return types.SearchResult{}, fmt.Errorf("entry %s: missing title", id)
	}

	summary := strings.TrimSpace(entry.Summary)
	if summary == "" {
		return types.SearchResult{}, fmt.Errorf("entry %s: missing summary", id)
	}

	return types.SearchResult{
		ID:      id,
		Title:   title,
		Summary: truncateSummary(summary),
		URL:     "https://arxiv.org/abs/" + id,
	}, nil
}

// extractID returns the substring after the final "/" of the entry id
// URL (e.g. "http://arxiv.org/abs/2403.12345v2" → "2403.12345v2").
// Version suffixes stay: fetch resolves versioned IDs, and dropping the
// tag would silently retrieve a different revision.
func extractID(idURL string) string {
	idURL = strings.TrimSpace(idURL)
	if idx := strings.LastIndex(idURL, "/"); idx >= 0 {
		return idURL[idx+1:]
	}
	return idURL
}

// truncateSummary caps a summary at summaryLimit runes, appending the
// ellipsis only when something was cut. Summaries at or under the limit
// pass through untouched.
func truncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= summaryLimit {
		return s
	}
	return string(runes[:summaryLimit]) + ellipsis
}
