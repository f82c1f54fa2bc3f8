// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"sort"

	"github.com/pdiddy/arxiv-radar/pkg/types"
)

// Score weighting: direct citations dominate, papers referencing well-cited
// work get the remainder.
const (
	citedWeight = 0.7
	refWeight   = 0.3
)

// Enhancement weighting: the base relevance score keeps most of its weight,
// citation importance nudges it.
const (
	BaseWeight     = 0.8
	CitationWeight = 0.2
)

// Score derives a normalized importance score in [0, 1] for one paper from
// the graph. The citation term is the paper's citer count over the graph
// maximum; the reference term is the mean citer count of its in-graph
// references over the same maximum. An id missing from the graph, or a graph
// with no citers at all, scores 0.
func Score(g Graph, paperID string) float64 {
	rec, ok := g[paperID]
	if !ok {
		return 0
	}

	maxCitations := g.MaxCitations()
	if maxCitations == 0 {
		return 0
	}

	citedScore := float64(rec.CitationCount) / float64(maxCitations)

	var refScore float64
	if len(rec.References) > 0 {
		var sum, n float64
		for _, refID := range rec.References {
			if refRec, ok := g[refID]; ok {
				sum += float64(refRec.CitationCount)
				n++
			}
		}
		if n > 0 {
			refScore = sum / n / float64(maxCitations)
			if refScore > 1 {
				refScore = 1
			}
		}
	}

	return citedWeight*citedScore + refWeight*refScore
}

// Enhance blends citation importance into a parallel list of base scores:
// 0.8 × base + 0.2 × citation score. The base scores are returned unchanged
// when the lists differ in length or the batch has fewer than two papers;
// a singleton carries no citation signal.
func Enhance(papers []types.Paper, baseScores []float64) []float64 {
	if len(papers) != len(baseScores) || len(papers) < 2 {
		return baseScores
	}

	graph := BuildGraph(papers)
	if len(graph) == 0 {
		return baseScores
	}

	enhanced := make([]float64, len(papers))
	for i, p := range papers {
		enhanced[i] = BaseWeight*baseScores[i] + CitationWeight*Score(graph, p.ID)
	}
	return enhanced
}

// Ranked pairs a paper id with its citation score.
type Ranked struct {
	PaperID       string
	Score         float64
	CitationCount int
}

// Influential returns the topK most important papers in the graph by
// citation score, highest first. Ties break on paper id for determinism.
func Influential(g Graph, topK int) []Ranked {
	ranked := make([]Ranked, 0, len(g))
	for id, rec := range g {
		ranked = append(ranked, Ranked{
			PaperID:       id,
			Score:         Score(g, id),
			CitationCount: rec.CitationCount,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].PaperID < ranked[j].PaperID
	})
	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
