// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-radar CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the arxiv-radar CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-radar",
	Short: "Multi-signal relevance radar for arXiv papers",
	Long: `arxiv-radar scores scientific papers against a researcher's interest
profile. A fetched batch is scored on four signals: keyword overlap, category
membership, embedding similarity against the profile, and citation-graph
importance within the batch. The fused score drives ranking and filtering.

Each stage is a subcommand: fetch pulls candidate papers from the arXiv API
into a batch file, score ranks a batch against a profile and persists the
results, related walks the batch citation graph, and top lists the stored
leaders.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-radar.yaml or ~/.config/arxiv-radar/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-radar")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-radar"))
		}
	}

	viper.SetEnvPrefix("ARXIV_RADAR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
