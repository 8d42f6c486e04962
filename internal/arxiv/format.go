// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-latex-mcp/pkg/types"
)

// NoResultsMessage is returned verbatim when a search matches nothing.
const NoResultsMessage = "No papers found for the given query."

// resultsHeader opens a non-empty result listing.
const resultsHeader = "Search Results:"

// FormatResults renders results as a single text block: a header, then
// four labeled lines per record separated by blank lines, in input
// order. Agents parse the ID lines, so the layout is part of the tool
// contract.
func FormatResults(results []types.SearchResult) string {
	if len(results) == 0 {
		return NoResultsMessage
	}

	var b strings.Builder
	b.WriteString(resultsHeader + "\n\n")
	for _, r := range results {
		fmt.Fprintf(&b, "ID: %s\n", r.ID)
		fmt.Fprintf(&b, "Title: %s\n", r.Title)
		fmt.Fprintf(&b, "Summary: %s\n", r.Summary)
		fmt.Fprintf(&b, "URL: %s\n\n", r.URL)
	}
	return b.String()
}
