// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// RenderingInstructions is appended to every successfully flattened
// paper, directing the consuming model's math notation.
const RenderingInstructions = "\n\nIMPORTANT INSTRUCTIONS FOR RENDERING:\n" +
	"When discussing this paper, please use dollar sign notation ($...$) " +
	"for inline equations and double dollar signs ($$...$$) for display " +
	"equations when providing responses that include LaTeX mathematical expressions."

// handleFetch calls the flattening collaborator once and wraps the
// outcome in a single content block. Collaborator failures are
// recovered here: the error message becomes the block's text and the
// metadata title gains an "Error: " prefix. Callers always get a
// content block from fetch; only argument-shape problems and host
// cancellation reject the call. This asymmetry with the search path is
// deliberate and relied upon.
func (d *Dispatcher) handleFetch(ctx context.Context, req fetchRequest) (*mcp.CallToolResult, error) {
	d.logger.Info("fetching arXiv paper source", "id", req.ID)

	url := "https://arxiv.org/abs/" + req.ID

	flattened, err := d.flattener.Flatten(ctx, req.ID)
	if err != nil {
		// A cancelled call is abandoned, not answered with a block.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		d.logger.Error("flattening failed", "id", req.ID, "error", err)
		result := mcp.NewToolResultText(err.Error())
		result.Meta = &mcp.Meta{AdditionalFields: map[string]any{
			"id":    req.ID,
			"title": "Error: " + req.ID,
			"url":   url,
		}}
		return result, nil
	}

	result := mcp.NewToolResultText(flattened + RenderingInstructions)
	result.Meta = &mcp.Meta{AdditionalFields: map[string]any{
		"id":     req.ID,
		"title":  "arXiv:" + req.ID,
		"url":    url,
		"source": "arXiv",
	}}
	return result, nil
}
