// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-latex-mcp CLI.
// The serve subcommand runs the MCP stdio server; search and fetch run
// the same pipelines directly for debugging from a shell.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-latex-mcp/internal/secrets"
	"github.com/pdiddy/arxiv-latex-mcp/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds operator keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the arxiv-latex-mcp CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-latex-mcp",
	Short: "MCP server exposing arXiv search and LaTeX source fetching",
	Long: `arxiv-latex-mcp exposes two tools over the Model Context Protocol: search,
which queries the arXiv export API, and fetch, which downloads a paper's
LaTeX source and flattens it into one document for a language model to read.

Run 'arxiv-latex-mcp serve' to speak MCP over stdio. The search and fetch
subcommands run the same pipelines directly, which is handy for debugging
without an MCP client in the loop.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-latex-mcp.yaml or ~/.config/arxiv-latex-mcp/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, or error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-latex-mcp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-latex-mcp"))
		}
	}

	viper.SetDefault("http.timeout", "30s")
	viper.SetDefault("search.max_results", 10)
	viper.SetDefault("search.parse_policy", string(types.ParseAbort))
	viper.SetDefault("flatten.max_include_depth", 10)

	viper.SetEnvPrefix("ARXIV_LATEX_MCP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// serverConfig assembles component configuration from viper and the
// loaded secrets. The contact email, when present, rides the
// User-Agent header per arXiv's automated-client guidance.
func serverConfig() types.ServerConfig {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: secrets.UserAgent("arxiv-latex-mcp/"+version, loadedSecrets),
	}

	return types.ServerConfig{
		Search: types.SearchConfig{
			HTTPConfig:  httpCfg,
			MaxResults:  viper.GetInt("search.max_results"),
			ParsePolicy: types.ParsePolicy(viper.GetString("search.parse_policy")),
		},
		Flatten: types.FlattenConfig{
			HTTPConfig:      httpCfg,
			MaxIncludeDepth: viper.GetInt("flatten.max_include_depth"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
