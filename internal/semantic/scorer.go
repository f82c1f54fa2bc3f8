// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semantic

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// topK is how many of the highest reference similarities contribute to the
// mean term of the score.
const topK = 5

// Scorer embeds paper text and measures similarity against a reference
// Index. The encoder and index are long-lived; build one Scorer per
// configuration and reuse it across batches.
type Scorer struct {
	enc   Encoder
	index *Index
}

// NewScorer returns a scorer over the given encoder and prebuilt index.
func NewScorer(enc Encoder, index *Index) *Scorer {
	return &Scorer{enc: enc, index: index}
}

// Name identifies the strategy in diagnostics.
func (s *Scorer) Name() string { return "embedding:" + s.enc.ModelName() }

// Score embeds text and returns 0.7 × max(similarities) + 0.3 × mean of the
// top-5 similarities (or fewer if the index is smaller), clamped to [0, 1].
// Empty text scores 0 without calling the model.
func (s *Scorer) Score(ctx context.Context, text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	vectors, err := s.enc.Encode(ctx, []string{text})
	if err != nil {
		return 0, fmt.Errorf("embedding text: %w", err)
	}
	if len(vectors) != 1 {
		return 0, fmt.Errorf("encoder returned %d vectors for 1 text", len(vectors))
	}
	return scoreRow(s.index.Similarities(vectors[0])), nil
}

// ScoreBatch embeds all texts in one model call and applies the same per-row
// formula as Score, so batch and single scoring agree for identical input.
// Empty texts score 0; they are still sent to the model as placeholders to
// keep row alignment.
func (s *Scorer) ScoreBatch(ctx context.Context, texts []string) ([]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	inputs := make([]string, len(texts))
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			inputs[i] = "empty"
			continue
		}
		inputs[i] = t
	}

	vectors, err := s.enc.Encode(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("embedding batch: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("encoder returned %d vectors for %d texts", len(vectors), len(texts))
	}

	scores := make([]float64, len(texts))
	for i := range texts {
		if strings.TrimSpace(texts[i]) == "" {
			continue
		}
		scores[i] = scoreRow(s.index.Similarities(vectors[i]))
	}
	return scores, nil
}

// TopPhrases returns the reference phrases most similar to text with their
// similarities, highest first. Used for explain-style diagnostics.
func (s *Scorer) TopPhrases(ctx context.Context, text string, k int) ([]PhraseMatch, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	vectors, err := s.enc.Encode(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}

	sims := s.index.Similarities(vectors[0])
	matches := make([]PhraseMatch, len(sims))
	for i, sim := range sims {
		matches[i] = PhraseMatch{Phrase: s.index.Phrase(i), Similarity: sim}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// PhraseMatch pairs a reference phrase with its similarity to some text.
type PhraseMatch struct {
	Phrase     string
	Similarity float64
}

// scoreRow fuses one row of reference similarities into a bounded score:
// 0.7 × the maximum plus 0.3 × the mean of the top-5.
func scoreRow(sims []float64) float64 {
	if len(sims) == 0 {
		return 0
	}

	sorted := append([]float64(nil), sims...)
	sort.Float64s(sorted)

	maxSim := sorted[len(sorted)-1]

	k := topK
	if len(sorted) < k {
		k = len(sorted)
	}
	var sum float64
	for _, sim := range sorted[len(sorted)-k:] {
		sum += sim
	}
	meanTop := sum / float64(k)

	score := 0.7*maxSim + 0.3*meanTop
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
