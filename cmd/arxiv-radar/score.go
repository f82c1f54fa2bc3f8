// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-radar/internal/fetch"
	"github.com/pdiddy/arxiv-radar/internal/relevance"
	"github.com/pdiddy/arxiv-radar/internal/semantic"
	"github.com/pdiddy/arxiv-radar/internal/store"
	"github.com/pdiddy/arxiv-radar/pkg/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a fetched batch against an interest profile",
	Long: `Score reads a batch file and an interest profile, fuses the keyword,
category, semantic, and citation signals into one relevance score per paper,
and prints the papers that clear the profile's minimum score, best first.

The semantic signal uses an embedding model when one is configured
(embedding.provider in the config file: openai or ollama); without one the
scorer falls back to TF-IDF similarity with adjusted weights. Use --save to
persist the scored batch to the SQLite database for later top queries.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().String("batch", "batch.yaml", "batch file produced by fetch")
	scoreCmd.Flags().String("profile", "profile.yaml", "interest profile YAML")
	scoreCmd.Flags().Float64("min-score", -1, "override the profile's minimum score")
	scoreCmd.Flags().Int("top", 0, "limit output to the top N papers")
	scoreCmd.Flags().Bool("no-semantic", false, "disable embedding similarity")
	scoreCmd.Flags().Bool("no-citations", false, "disable citation-graph enhancement")
	scoreCmd.Flags().Bool("json", false, "output results as JSON")
	scoreCmd.Flags().Bool("save", false, "persist scored papers to the database")
	scoreCmd.Flags().String("db", "", "database path (default radar.db)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	batch, err := fetch.ReadBatchFile(mustString(cmd, "batch"))
	if err != nil {
		return err
	}
	if len(batch.Papers) == 0 {
		return fmt.Errorf("batch file holds no papers")
	}

	cfg, err := relevance.ReadProfile(mustString(cmd, "profile"))
	if err != nil {
		return err
	}
	if minScore, _ := cmd.Flags().GetFloat64("min-score"); minScore >= 0 {
		cfg.MinScore = minScore
	}
	noSemantic, _ := cmd.Flags().GetBool("no-semantic")
	noCitations, _ := cmd.Flags().GetBool("no-citations")
	cfg.EnableSemantic = !noSemantic
	cfg.EnableCitations = !noCitations

	ctx := context.Background()
	scorer, err := relevance.NewScorer(ctx, cfg, buildEncoder(), os.Stderr)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Scoring %d papers (similarity: %s)\n",
		len(batch.Papers), scorer.SimilarityName())

	results := scorer.ScoreBatch(ctx, batch.Papers)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", r.Err)
		}
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := saveResults(ctx, mustString(cmd, "db"), results); err != nil {
			return err
		}
	}

	topN, _ := cmd.Flags().GetInt("top")
	ranked := scorer.Rank(results, topN)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatScoreOutput(ranked, jsonOutput)
}

// buildEncoder constructs the embedding encoder named by the configuration,
// or nil when none is configured.
func buildEncoder() semantic.Encoder {
	cfg := types.EmbeddingConfig{
		Provider: viper.GetString("embedding.provider"),
		BaseURL:  viper.GetString("embedding.base_url"),
		APIKey:   viper.GetString("embedding.api_key"),
		Model:    viper.GetString("embedding.model"),
	}

	switch cfg.Provider {
	case "openai":
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			fmt.Fprintln(os.Stderr, "warning: embedding.provider is openai but no API key is set")
			return nil
		}
		return semantic.NewOpenAIEncoder(apiKey, cfg.BaseURL, cfg.Model)
	case "ollama":
		return semantic.NewOllamaEncoder(cfg.BaseURL, cfg.Model)
	case "", "none":
		return nil
	default:
		fmt.Fprintf(os.Stderr, "warning: unknown embedding provider %q, scoring without embeddings\n", cfg.Provider)
		return nil
	}
}

func saveResults(ctx context.Context, dbPath string, results []relevance.Result) error {
	st, err := store.New(types.StoreConfig{DBPath: dbPath})
	if err != nil {
		return err
	}
	defer st.Close()

	saved := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := st.SavePaper(ctx, r.Paper, r.Breakdown); err != nil {
			return err
		}
		saved++
	}
	fmt.Fprintf(os.Stderr, "Saved %d papers\n", saved)
	return nil
}

func formatScoreOutput(ranked []relevance.Result, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scoreRows(ranked))
	}

	if len(ranked) == 0 {
		fmt.Println("No papers cleared the minimum score.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-14s  %-52s  %-6s  %-6s  %-6s  %-6s  %s\n",
		"Rank", "ID", "Title", "Kw", "Cat", "Sem", "Cite", "Final")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range ranked {
		title := r.Paper.Title
		if len(title) > 52 {
			title = title[:49] + "..."
		}
		b := r.Breakdown
		fmt.Fprintf(os.Stdout, "%-4d  %-14s  %-52s  %.3f  %.3f  %.3f  %.3f  %.3f\n",
			i+1, r.Paper.ID, title, b.Keyword, b.Category, b.Semantic, b.Citation, b.Final)
	}

	fmt.Fprintf(os.Stdout, "\n%d papers\n", len(ranked))
	return nil
}

// scoreRow is the JSON output shape for one ranked paper.
type scoreRow struct {
	Rank      int                  `json:"rank"`
	Paper     types.Paper          `json:"paper"`
	Breakdown types.ScoreBreakdown `json:"breakdown"`
}

func scoreRows(ranked []relevance.Result) []scoreRow {
	rows := make([]scoreRow, len(ranked))
	for i, r := range ranked {
		rows[i] = scoreRow{Rank: i + 1, Paper: r.Paper, Breakdown: r.Breakdown}
	}
	return rows
}
