// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-latex-mcp/internal/arxiv"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search arXiv and print the formatted results",
	Long: `Search runs the same arXiv query pipeline the MCP search tool uses and
prints the formatted results to stdout. The query is passed to the export
API verbatim, so arXiv field prefixes work:

  arxiv-latex-mcp search 'ti:"attention is all you need"'
  arxiv-latex-mcp search 'au:hinton AND cat:cs.LG'

With --save the raw results are also written to a YAML query file that
the fetch subcommand can pick IDs from.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		client := arxiv.NewClient(serverConfig().Search, nil)
		results, err := client.Search(cmd.Context(), query)
		if err != nil {
			return err
		}

		cmd.Println(arxiv.FormatResults(results))

		savePath, _ := cmd.Flags().GetString("save")
		if savePath != "" {
			if err := arxiv.SaveQueryFile(savePath, query, results); err != nil {
				return err
			}
			cmd.Printf("Saved %d results to %s\n", len(results), savePath)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().String("save", "", "write results to a YAML query file")
	rootCmd.AddCommand(searchCmd)
}
