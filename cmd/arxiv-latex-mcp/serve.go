// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-latex-mcp/internal/arxiv"
	"github.com/pdiddy/arxiv-latex-mcp/internal/latex"
	"github.com/pdiddy/arxiv-latex-mcp/internal/server"
	"github.com/pdiddy/arxiv-latex-mcp/pkg/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over stdio",
	Long: `Serve speaks the Model Context Protocol over stdin/stdout and blocks until
the client closes the channel. All logging goes to stderr; stdout belongs to
the protocol.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		logger := logging.New(os.Stderr, level, "server")

		cfg := serverConfig()
		dispatcher := server.NewDispatcher(
			arxiv.NewClient(cfg.Search, nil),
			latex.NewSourceFlattener(cfg.Flatten, nil),
			logger,
		)

		logger.Info("starting MCP server", "version", version)
		return server.New(dispatcher, version).Start(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
