// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// promptName is the one prompt this server offers: a ready-made user
// message carrying a paper's flattened source. It rides the prompt
// capability so the tool catalog stays exactly two entries.
const promptName = "get_paper_prompt"

func paperPrompt() mcp.Prompt {
	return mcp.Prompt{
		Name:        promptName,
		Description: "Load an arXiv paper's flattened LaTeX source as a prompt for discussion",
		Arguments: []mcp.PromptArgument{
			{
				Name:        "arxiv_id",
				Description: "arXiv ID of the paper to load (e.g. '2403.12345')",
				Required:    true,
			},
		},
	}
}

// handlePaperPrompt flattens the requested paper and returns it as a
// single user message. Unlike the fetch tool there is no in-band error
// path for prompts; failures reject the request.
func (s *Server) handlePaperPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	id, ok := request.Params.Arguments["arxiv_id"]
	if !ok || id == "" {
		return nil, &MissingArgumentError{Argument: "arxiv_id"}
	}

	flattened, err := s.dispatcher.flattener.Flatten(ctx, id)
	if err != nil {
		return nil, err
	}

	return &mcp.GetPromptResult{
		Description: "Flattened LaTeX source of arXiv:" + id,
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(flattened + RenderingInstructions),
			},
		},
	}, nil
}
