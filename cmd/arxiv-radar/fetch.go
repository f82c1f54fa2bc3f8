// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-radar/internal/fetch"
	"github.com/pdiddy/arxiv-radar/internal/relevance"
	"github.com/pdiddy/arxiv-radar/pkg/types"
)

const defaultUserAgent = "arxiv-radar/1.0 (https://github.com/pdiddy/arxiv-radar)"

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch candidate papers from arXiv into a batch file",
	Long: `Fetch queries the arXiv export API for papers matching the profile's
keywords and categories and writes the batch to a YAML file. The batch file
is the input to score, so one fetch can be re-scored under different
profiles without hitting the API again.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("profile", "", "interest profile YAML (keywords, categories)")
	fetchCmd.Flags().String("keywords", "", "search keywords (comma-separated, overrides profile)")
	fetchCmd.Flags().String("categories", "", "arXiv categories (comma-separated, overrides profile)")
	fetchCmd.Flags().Int("max-results", 50, "maximum number of papers to fetch")
	fetchCmd.Flags().String("sort-by", "submittedDate", "arXiv sort order (relevance, submittedDate, lastUpdatedDate)")
	fetchCmd.Flags().String("out", "batch.yaml", "output batch file")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	keywords := splitList(mustString(cmd, "keywords"))
	categories := splitList(mustString(cmd, "categories"))

	if profilePath := mustString(cmd, "profile"); profilePath != "" {
		profile, err := relevance.ReadProfile(profilePath)
		if err != nil {
			return err
		}
		if len(keywords) == 0 {
			keywords = profile.Keywords
		}
		if len(categories) == 0 {
			categories = profile.Categories
		}
	}
	if len(keywords) == 0 && len(categories) == 0 {
		return fmt.Errorf("nothing to search for: provide --keywords, --categories, or --profile")
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")
	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   60 * time.Second,
			UserAgent: defaultUserAgent,
		},
		MaxResults: maxResults,
		Categories: categories,
		SortBy:     mustString(cmd, "sort-by"),
	}

	client := &fetch.ArxivClient{Client: &http.Client{Timeout: cfg.Timeout}}
	papers, err := client.Search(context.Background(), keywords, cfg)
	if err != nil {
		return err
	}

	out := mustString(cmd, "out")
	query := fetch.BatchQuery{
		Keywords:   keywords,
		Categories: categories,
		MaxResults: maxResults,
	}
	if err := fetch.WriteBatchFile(out, query, papers); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Fetched %d papers to %s\n", len(papers), out)
	return nil
}

// mustString reads a string flag that is known to exist.
func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// splitList splits a comma-separated flag value, trimming blanks.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
