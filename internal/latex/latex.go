// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex retrieves arXiv e-print source archives and flattens
// them into a single LaTeX document: comments stripped, \input and
// \include directives inlined.
package latex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/arxiv-latex-mcp/internal/httputil"
	"github.com/pdiddy/arxiv-latex-mcp/pkg/types"
)

// eprintBase is the arXiv source download endpoint. Declared as a var
// so tests can substitute an httptest server.
var eprintBase = "https://export.arxiv.org/e-print"

// Flattener resolves an arXiv identifier to one flattened LaTeX
// document. The fetch tool consumes only this interface; the format of
// the returned text is opaque to it.
type Flattener interface {
	Flatten(ctx context.Context, id string) (string, error)
}

// SourceFlattener downloads e-print archives over HTTP and flattens
// them locally. It holds no per-call state; one instance serves all
// calls.
type SourceFlattener struct {
	HTTP   *http.Client
	Config types.FlattenConfig
}

// NewSourceFlattener returns a SourceFlattener with the given
// configuration. A nil HTTP client falls back to a default one
// honoring cfg.Timeout.
func NewSourceFlattener(cfg types.FlattenConfig, httpClient *http.Client) *SourceFlattener {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &SourceFlattener{HTTP: httpClient, Config: cfg}
}

// Flatten downloads the e-print payload for id and returns the
// flattened document. Exactly one network call per invocation; no
// partial document is returned on failure.
func (f *SourceFlattener) Flatten(ctx context.Context, id string) (string, error) {
	payload, err := f.download(ctx, id)
	if err != nil {
		return "", err
	}

	files, err := extractSource(payload)
	if err != nil {
		return "", fmt.Errorf("extracting source for %s: %w", id, err)
	}

	main, err := findMainFile(files)
	if err != nil {
		return "", fmt.Errorf("locating main file for %s: %w", id, err)
	}

	return flatten(files, main, f.Config.MaxIncludeDepth), nil
}

// download fetches the raw e-print payload (a gzipped tar archive, a
// lone gzipped .tex file, or occasionally a bare PDF).
func (f *SourceFlattener) download(ctx context.Context, id string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", eprintBase, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, f.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("downloading source for %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no source found for arXiv ID %s", id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv returned HTTP %d for %s", resp.StatusCode, id)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading source for %s: %w", id, err)
	}

	if bytes.HasPrefix(payload, []byte("%PDF")) {
		return nil, fmt.Errorf("arXiv ID %s has no LaTeX source (PDF-only submission)", id)
	}
	return payload, nil
}
