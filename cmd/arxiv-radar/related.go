// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-radar/internal/citation"
	"github.com/pdiddy/arxiv-radar/internal/fetch"
)

var relatedCmd = &cobra.Command{
	Use:   "related [paper-id]",
	Short: "Walk the batch citation graph around a paper",
	Long: `Related builds the citation graph over a batch file and lists the papers
reachable from the given id within a hop bound, over both reference and
cited-by edges. Without an id it lists the most influential papers in the
batch by citation score instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRelated,
}

func init() {
	relatedCmd.Flags().String("batch", "batch.yaml", "batch file produced by fetch")
	relatedCmd.Flags().Int("distance", 2, "maximum number of hops to walk")
	relatedCmd.Flags().Int("top", 10, "how many influential papers to list (no-id mode)")
	relatedCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(relatedCmd)
}

func runRelated(cmd *cobra.Command, args []string) error {
	batch, err := fetch.ReadBatchFile(mustString(cmd, "batch"))
	if err != nil {
		return err
	}

	graph := citation.BuildGraph(batch.Papers)
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if len(args) == 0 {
		topK, _ := cmd.Flags().GetInt("top")
		return formatInfluential(citation.Influential(graph, topK), jsonOutput)
	}

	paperID := args[0]
	if _, ok := graph[paperID]; !ok {
		return fmt.Errorf("paper %s is not in the batch", paperID)
	}

	distance, _ := cmd.Flags().GetInt("distance")
	related := graph.Related(paperID, distance)

	ids := make([]string, 0, len(related))
	for id := range related {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ids)
	}

	if len(ids) == 0 {
		fmt.Printf("No papers within %d hops of %s.\n", distance, paperID)
		return nil
	}

	titles := make(map[string]string, len(batch.Papers))
	for _, p := range batch.Papers {
		titles[p.ID] = p.Title
	}
	for _, id := range ids {
		fmt.Fprintf(os.Stdout, "%-14s  %s\n", id, titles[id])
	}
	fmt.Fprintf(os.Stdout, "\n%d related papers\n", len(ids))
	return nil
}

func formatInfluential(ranked []citation.Ranked, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}

	if len(ranked) == 0 {
		fmt.Println("The batch has no citation edges.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-14s  %-10s  %s\n", "Rank", "ID", "Citations", "Score")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 42))
	for i, r := range ranked {
		fmt.Fprintf(os.Stdout, "%-4d  %-14s  %-10d  %.3f\n",
			i+1, r.PaperID, r.CitationCount, r.Score)
	}
	return nil
}
