// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server dispatches MCP tool calls to the search and fetch
// pipelines and wires them onto a stdio MCP server.
package server

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pdiddy/arxiv-latex-mcp/internal/arxiv"
	"github.com/pdiddy/arxiv-latex-mcp/internal/latex"
	"github.com/pdiddy/arxiv-latex-mcp/pkg/types"
)

// Tool names. The catalog is closed: adding a tool means extending the
// switch in CallTool, not registering at runtime.
const (
	ToolSearch = "search"
	ToolFetch  = "fetch"
)

// Searcher runs the search pipeline: one API call, feed parsing, done.
type Searcher interface {
	Search(ctx context.Context, query string) ([]types.SearchResult, error)
}

// Dispatcher validates and routes one tool call at a time. It holds no
// per-call state; every call is independent.
type Dispatcher struct {
	searcher  Searcher
	flattener latex.Flattener
	logger    *slog.Logger
}

// NewDispatcher wires the two pipelines and an injected logger.
func NewDispatcher(searcher Searcher, flattener latex.Flattener, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		searcher:  searcher,
		flattener: flattener,
		logger:    logger,
	}
}

// ListTools returns the tool catalog: always exactly search and fetch.
func (d *Dispatcher) ListTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(ToolSearch,
			mcp.WithDescription("Search arXiv by free-text query and return matching papers"),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Free-text search terms"),
			),
		),
		mcp.NewTool(ToolFetch,
			mcp.WithDescription("Retrieve the full LaTeX source (flattened) for a specific arXiv paper"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The document id returned by the search tool (arXiv ID, e.g. '2403.12345')"),
			),
		),
	}
}

// CallTool validates the argument bag and routes to the matching
// pipeline. Argument-shape failures and unknown names reject the call
// with a typed error; they never produce a content block. Search
// pipeline failures (network, parse) also reject. Fetch pipeline
// failures do not — see handleFetch.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	switch name {
	case ToolSearch:
		req, err := parseSearchRequest(args)
		if err != nil {
			return nil, err
		}
		return d.handleSearch(ctx, req)
	case ToolFetch:
		req, err := parseFetchRequest(args)
		if err != nil {
			return nil, err
		}
		return d.handleFetch(ctx, req)
	default:
		return nil, &UnknownToolError{Name: name}
	}
}

// handleSearch runs search → parse → format and wraps the text in a
// single content block with no metadata.
func (d *Dispatcher) handleSearch(ctx context.Context, req searchRequest) (*mcp.CallToolResult, error) {
	d.logger.Info("searching arXiv", "query", req.Query)

	results, err := d.searcher.Search(ctx, req.Query)
	if err != nil {
		d.logger.Error("search failed", "query", req.Query, "error", err)
		return nil, err
	}

	return mcp.NewToolResultText(arxiv.FormatResults(results)), nil
}
