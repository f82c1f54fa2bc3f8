// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves paper records from the arXiv export API. It is the
// paper-fetch collaborator of the scoring engine: it produces batches of
// Paper records and knows nothing about scoring.
package fetch

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-radar/internal/httputil"
	"github.com/pdiddy/arxiv-radar/pkg/types"
)

// arxivAPIBase is the arXiv query endpoint. Declared as a var so tests can
// substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivClient queries the arXiv Atom API.
type ArxivClient struct {
	Client *http.Client
}

// Search queries arXiv for papers matching the keywords under the configured
// categories and returns them as Paper records, in feed order.
func (c *ArxivClient) Search(ctx context.Context, keywords []string, cfg types.FetchConfig) ([]types.Paper, error) {
	query := buildQuery(keywords, cfg.Categories)
	if query == "" {
		return nil, fmt.Errorf("empty arXiv query: provide keywords or categories")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}
	sortBy := cfg.SortBy
	if sortBy == "" {
		sortBy = "relevance"
	}

	reqURL := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=%s&sortOrder=descending",
		arxivAPIBase, url.QueryEscape(query), maxResults, sortBy)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var papers []types.Paper
	for _, entry := range feed.Entries {
		id := ExtractArxivID(entry.ID)
		if id == "" {
			continue
		}

		p := types.Paper{
			ID:      id,
			Title:   collapseWhitespace(entry.Title),
			Summary: collapseWhitespace(entry.Summary),
			Source:  "arxiv",
		}
		for _, a := range entry.Authors {
			p.Authors = append(p.Authors, strings.TrimSpace(a.Name))
		}
		for _, cat := range entry.Categories {
			if cat.Term != "" {
				p.Categories = append(p.Categories, cat.Term)
			}
		}
		if t, parseErr := time.Parse(time.RFC3339, entry.Published); parseErr == nil {
			p.Published = t
		}

		papers = append(papers, p)
	}
	return papers, nil
}

// buildQuery constructs the search_query parameter. Keywords OR together,
// categories OR together, and the two groups AND.
func buildQuery(keywords, categories []string) string {
	var kwParts []string
	for _, kw := range keywords {
		terms := strings.Fields(kw)
		if len(terms) == 0 {
			continue
		}
		kwParts = append(kwParts, `all:"`+strings.Join(terms, " ")+`"`)
	}

	var catParts []string
	for _, cat := range categories {
		if cat != "" {
			catParts = append(catParts, "cat:"+cat)
		}
	}

	var groups []string
	if len(kwParts) > 0 {
		groups = append(groups, "("+strings.Join(kwParts, " OR ")+")")
	}
	if len(catParts) > 0 {
		groups = append(groups, "("+strings.Join(catParts, " OR ")+")")
	}
	return strings.Join(groups, " AND ")
}

// collapseWhitespace trims an Atom field and folds the feed's hard line
// wraps into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID         string          `xml:"id"`
	Title      string          `xml:"title"`
	Summary    string          `xml:"summary"`
	Published  string          `xml:"published"`
	Authors    []arxivAuthor   `xml:"author"`
	Categories []arxivCategory `xml:"category"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// ExtractArxivID pulls the arXiv ID from an entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v2" → "2301.07041").
func ExtractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := idURL[idx+len(prefix):]

	// Strip the version suffix ("v1", "v2", ...).
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
