// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv export API and turns its Atom feed
// into normalized search results.
package arxiv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/arxiv-latex-mcp/pkg/types"
)

// apiBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// Sentinel errors classifying search-path failures. Both reject the
// tool call; they exist so callers and tests can tell transport
// problems from malformed feeds.
var (
	ErrNetwork = errors.New("arxiv: request failed")
	ErrParse   = errors.New("arxiv: malformed feed")
)

const defaultMaxResults = 10

// Client issues search queries against the arXiv export API.
type Client struct {
	HTTP   *http.Client
	Config types.SearchConfig
}

// NewClient returns a Client with the given configuration. A nil HTTP
// client falls back to a default one honoring cfg.Timeout.
func NewClient(cfg types.SearchConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{HTTP: httpClient, Config: cfg}
}

// RawQuery issues exactly one GET against the search endpoint and
// returns the raw response body. The query is substituted into the URL
// verbatim; any escaping the transport needs is the caller's
// responsibility. Failures wrap ErrNetwork and are never retried here,
// not even on a rate-limit response: retry policy belongs to the host.
func (c *Client) RawQuery(ctx context.Context, query string) (string, error) {
	maxResults := c.Config.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	url := fmt.Sprintf("%s?search_query=%s&max_results=%d", apiBase, query, maxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", ErrNetwork, err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: arXiv API returned HTTP %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}
	return string(body), nil
}

// Search runs the full search pipeline: one API call, then feed parsing
// under the configured parse policy. Result order matches feed order.
func (c *Client) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	body, err := c.RawQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return ParseFeed(body, c.Config.ParsePolicy)
}
