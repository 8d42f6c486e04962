// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-latex-mcp/internal/arxiv"
	"github.com/pdiddy/arxiv-latex-mcp/internal/latex"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [id]",
	Short: "Fetch a paper's LaTeX source and print it flattened",
	Long: `Fetch downloads a paper's e-print tarball, flattens the LaTeX source into
one document, and prints it to stdout. The paper is named either by an
arXiv ID directly, or by rank within a query file saved by 'search --save':

  arxiv-latex-mcp fetch 2403.12345v2
  arxiv-latex-mcp fetch --query-file results.yaml --rank 1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveFetchID(cmd, args)
		if err != nil {
			return err
		}

		flattener := latex.NewSourceFlattener(serverConfig().Flatten, nil)
		flattened, err := flattener.Flatten(cmd.Context(), id)
		if err != nil {
			return err
		}

		cmd.Println(flattened)
		return nil
	},
}

// resolveFetchID picks the paper ID from the positional argument or,
// when --query-file is set, from the saved results by 1-based rank.
func resolveFetchID(cmd *cobra.Command, args []string) (string, error) {
	queryFile, _ := cmd.Flags().GetString("query-file")
	if queryFile == "" {
		if len(args) != 1 {
			return "", fmt.Errorf("either an arXiv ID or --query-file is required")
		}
		return args[0], nil
	}
	if len(args) != 0 {
		return "", fmt.Errorf("an arXiv ID and --query-file are mutually exclusive")
	}

	qf, err := arxiv.LoadQueryFile(queryFile)
	if err != nil {
		return "", err
	}

	rank, _ := cmd.Flags().GetInt("rank")
	if rank < 1 || rank > len(qf.Results) {
		return "", fmt.Errorf("rank %d out of range: %s holds %d results", rank, queryFile, len(qf.Results))
	}
	return qf.Results[rank-1].ID, nil
}

func init() {
	fetchCmd.Flags().String("query-file", "", "YAML query file saved by 'search --save'")
	fetchCmd.Flags().Int("rank", 1, "1-based rank of the result to fetch from the query file")
	rootCmd.AddCommand(fetchCmd)
}
