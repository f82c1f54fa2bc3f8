// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/arxiv-radar/internal/citation"
	"github.com/pdiddy/arxiv-radar/internal/semantic"
	"github.com/pdiddy/arxiv-radar/pkg/types"
)

// TextSimilarity is the semantic-component strategy. Exactly one
// implementation is selected when the Scorer is constructed: embedding
// similarity when the model collaborator is available, TF-IDF lexical
// similarity otherwise.
type TextSimilarity interface {
	Name() string
	Score(ctx context.Context, text string) (float64, error)
	ScoreBatch(ctx context.Context, texts []string) ([]float64, error)
}

// fusionWeights holds the per-component weights for one operating mode.
type fusionWeights struct {
	keyword  float64
	category float64
	semantic float64
}

var (
	// semanticWeights applies when embedding similarity is available; the
	// semantic signal carries the most information.
	semanticWeights = fusionWeights{keyword: 0.30, category: 0.25, semantic: 0.45}

	// lexicalWeights applies in degraded mode; the TF-IDF signal is weaker,
	// so the lexical components pick up the difference.
	lexicalWeights = fusionWeights{keyword: 0.40, category: 0.30, semantic: 0.30}
)

// DefaultContextPhrases extends the embedding reference set beyond the bare
// keyword list. Full sentences give the model more to latch onto than
// keyword fragments do.
var DefaultContextPhrases = []string{
	"understanding how neural networks work internally",
	"explaining model behavior and decision making",
	"analyzing internal representations in transformers",
	"probing what language models learn",
	"visualizing attention patterns and feature maps",
	"circuit-level analysis of neural networks",
}

// Scorer fuses keyword, category, semantic, and citation signals into one
// bounded relevance score per paper. Construct once per configuration and
// reuse across batches; the embedding index and fusion weights are fixed at
// construction.
type Scorer struct {
	cfg        types.ScoringConfig
	keyword    *KeywordScorer
	category   *CategoryScorer
	similarity TextSimilarity
	weights    fusionWeights
	w          io.Writer
}

// NewScorer validates the configuration and selects the similarity strategy.
// Empty keyword or category sets are construction errors. When semantic
// scoring is enabled and enc is non-nil, the reference-phrase index is built
// here (one model call); if that fails the scorer degrades to lexical
// similarity with adjusted weights, warning on w rather than failing.
// Operational warnings go to w; pass nil to discard them.
func NewScorer(ctx context.Context, cfg types.ScoringConfig, enc semantic.Encoder, w io.Writer) (*Scorer, error) {
	if len(cfg.Keywords) == 0 {
		return nil, fmt.Errorf("scoring config: keyword list is empty")
	}
	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("scoring config: category set is empty")
	}
	if cfg.MinScore < 0 || cfg.MinScore > 1 {
		return nil, fmt.Errorf("scoring config: min_score %v outside [0, 1]", cfg.MinScore)
	}
	if w == nil {
		w = io.Discard
	}

	s := &Scorer{
		cfg:      cfg,
		keyword:  NewKeywordScorer(cfg.Keywords),
		category: NewCategoryScorer(cfg.Categories),
		weights:  lexicalWeights,
		w:        w,
	}
	s.similarity = newLexicalSimilarity(cfg.Keywords)

	if cfg.EnableSemantic && enc != nil {
		phrases := cfg.ContextPhrases
		if len(phrases) == 0 {
			phrases = DefaultContextPhrases
		}
		refs := make([]string, 0, len(cfg.Keywords)+len(phrases))
		refs = append(refs, cfg.Keywords...)
		refs = append(refs, phrases...)

		index, err := semantic.NewIndex(ctx, enc, refs)
		if err != nil {
			fmt.Fprintf(w, "warning: embedding index unavailable, using tfidf fallback: %v\n", err)
		} else {
			s.similarity = semantic.NewScorer(enc, index)
			s.weights = semanticWeights
		}
	}

	return s, nil
}

// SemanticMode reports whether the scorer runs on embedding similarity
// (true) or the lexical fallback (false).
func (s *Scorer) SemanticMode() bool {
	_, ok := s.similarity.(*semantic.Scorer)
	return ok
}

// SimilarityName returns the active similarity strategy identifier.
func (s *Scorer) SimilarityName() string { return s.similarity.Name() }

// ScorePaper scores a single paper. The returned breakdown's Final fuses the
// keyword, category, and semantic components with the mode's weights,
// clamped to [0, 1]. A paper with no text scores all-zero without error; a
// similarity failure returns a zero breakdown and the error.
func (s *Scorer) ScorePaper(ctx context.Context, p types.Paper) (types.ScoreBreakdown, error) {
	text := strings.ToLower(p.Text())
	if strings.TrimSpace(text) == "" {
		fmt.Fprintf(s.w, "warning: empty text for paper %s\n", p.ID)
		return types.ScoreBreakdown{}, nil
	}

	sem, err := s.similarity.Score(ctx, text)
	if err != nil {
		return types.ScoreBreakdown{}, fmt.Errorf("scoring paper %s: %w", p.ID, err)
	}

	return s.fuse(text, p.Categories, sem), nil
}

// Result is the per-item outcome of a batch scoring call. A failed item has
// Err set and a zero Breakdown; it still occupies its slot so that results
// stay parallel to the input batch.
type Result struct {
	Paper     types.Paper
	Breakdown types.ScoreBreakdown
	Err       error
}

// ScoreBatch scores a batch of papers. The result slice is parallel to the
// input: same length, same order, every Final in [0, 1]. The semantic
// component is computed in one batch model call. Per-item failures zero that
// item and continue; they never abort the batch. When citation scoring is
// enabled and the batch holds at least two papers, the fused scores are
// re-weighted with citation-graph importance as a final step.
func (s *Scorer) ScoreBatch(ctx context.Context, papers []types.Paper) []Result {
	results := make([]Result, len(papers))
	if len(papers) == 0 {
		return results
	}

	texts := make([]string, len(papers))
	for i, p := range papers {
		results[i].Paper = p
		texts[i] = strings.ToLower(p.Text())
	}

	sems, semErr := s.similarity.ScoreBatch(ctx, texts)
	if semErr != nil {
		fmt.Fprintf(s.w, "warning: batch similarity failed: %v\n", semErr)
	}

	for i, p := range papers {
		if semErr != nil {
			results[i].Err = fmt.Errorf("scoring paper %s: %w", p.ID, semErr)
			continue
		}
		if strings.TrimSpace(texts[i]) == "" {
			fmt.Fprintf(s.w, "warning: empty text for paper %s\n", p.ID)
			continue
		}
		results[i].Breakdown = s.fuse(texts[i], p.Categories, sems[i])
	}

	if s.cfg.EnableCitations && len(papers) >= 2 {
		s.enhanceWithCitations(papers, results)
	}

	return results
}

// enhanceWithCitations blends citation-graph importance into every result:
// final = 0.8 × base + 0.2 × citation score. Applied only to batches of two
// or more papers; a singleton carries no citation signal.
func (s *Scorer) enhanceWithCitations(papers []types.Paper, results []Result) {
	graph := citation.BuildGraph(papers)
	if len(graph) == 0 {
		return
	}
	for i, p := range papers {
		c := citation.Score(graph, p.ID)
		results[i].Breakdown.Citation = c
		results[i].Breakdown.Final = clamp01(
			citation.BaseWeight*results[i].Breakdown.Final + citation.CitationWeight*c)
	}
}

// fuse combines the three base components with the mode's weights.
func (s *Scorer) fuse(text string, categories []string, sem float64) types.ScoreBreakdown {
	b := types.ScoreBreakdown{
		Keyword:  s.keyword.Score(text),
		Category: s.category.Score(categories),
		Semantic: clamp01(sem),
	}
	b.Final = clamp01(
		s.weights.keyword*b.Keyword +
			s.weights.category*b.Category +
			s.weights.semantic*b.Semantic)
	return b
}

// Finals extracts the final scores from a batch result, parallel to the
// input batch. Failed items contribute 0.
func Finals(results []Result) []float64 {
	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Breakdown.Final
	}
	return scores
}

// Rank returns the results at or above the scorer's minimum-acceptance
// threshold, highest final score first, truncated to topN when positive.
// Failed items never rank.
func (s *Scorer) Rank(results []Result, topN int) []Result {
	ranked := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Err != nil || r.Breakdown.Final < s.cfg.MinScore {
			continue
		}
		ranked = append(ranked, r)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Breakdown.Final > ranked[j].Breakdown.Final
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
