// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// serverName identifies this server during MCP capability negotiation.
const serverName = "arxiv-latex-mcp"

// Server exposes the dispatcher over the MCP stdio transport. The
// transport lifecycle (handshake, capability negotiation, framing)
// belongs to mcp-go; this type only declares capabilities and plugs
// handlers in.
type Server struct {
	dispatcher *Dispatcher
	mcpServer  *server.MCPServer
}

// New builds an MCP server around the dispatcher. Tools are registered
// from the dispatcher's catalog so the wire-visible descriptors and the
// dispatch switch cannot drift apart.
func New(dispatcher *Dispatcher, version string) *Server {
	mcpServer := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
	)

	s := &Server{
		dispatcher: dispatcher,
		mcpServer:  mcpServer,
	}

	for _, tool := range dispatcher.ListTools() {
		mcpServer.AddTool(tool, s.handleToolCall)
	}
	mcpServer.AddPrompt(paperPrompt(), s.handlePaperPrompt)

	return s
}

// Start serves MCP over stdio. It blocks until the client closes the
// channel or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	return s.listen(ctx, os.Stdin, os.Stdout)
}

func (s *Server) listen(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcpServer).Listen(ctx, in, out)
}

// handleToolCall hands the raw call to the dispatcher. Returning an
// error rejects the call at the protocol level, which is exactly what
// validation and search-path failures require.
func (s *Server) handleToolCall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.dispatcher.CallTool(ctx, request.Params.Name, request.GetArguments())
}
