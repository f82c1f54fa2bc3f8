// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-radar/internal/store"
	"github.com/pdiddy/arxiv-radar/pkg/types"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List the best stored papers",
	Long: `Top lists papers previously persisted with score --save, highest final
score first. Use --min-score to cut the list off and --limit to bound it.`,
	RunE: runTop,
}

func init() {
	topCmd.Flags().String("db", "", "database path (default radar.db)")
	topCmd.Flags().Float64("min-score", 0, "only list papers at or above this final score")
	topCmd.Flags().Int("limit", 0, "maximum number of papers to list")
	topCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) error {
	st, err := store.New(types.StoreConfig{DBPath: mustString(cmd, "db")})
	if err != nil {
		return err
	}
	defer st.Close()

	minScore, _ := cmd.Flags().GetFloat64("min-score")
	limit, _ := cmd.Flags().GetInt("limit")

	ctx := context.Background()
	papers, err := st.Top(ctx, minScore, limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	}

	if len(papers) == 0 {
		fmt.Println("No stored papers match.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-14s  %-60s  %-10s  %s\n",
		"Rank", "ID", "Title", "Scored", "Final")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for i, sp := range papers {
		title := sp.Paper.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-14s  %-60s  %-10s  %.3f\n",
			i+1, sp.Paper.ID, title, sp.ScoredAt.Format("2006-01-02"), sp.Breakdown.Final)
	}
	fmt.Fprintf(os.Stdout, "\n%d papers\n", len(papers))
	return nil
}
