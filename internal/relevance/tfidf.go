// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"context"
	"math"
	"strings"
)

// lexicalSimilarity is the degraded-mode similarity strategy: a TF-IDF
// bag-of-weighted-terms cosine between the joined keyword text and the paper
// text. It needs no external model and never fails; unusable input scores 0.
type lexicalSimilarity struct {
	reference string
}

func newLexicalSimilarity(keywords []string) *lexicalSimilarity {
	return &lexicalSimilarity{reference: Normalize(strings.Join(keywords, " "))}
}

// Name identifies the strategy in diagnostics.
func (l *lexicalSimilarity) Name() string { return "tfidf" }

// Score vectorizes {reference text, text} and returns their cosine
// similarity clamped to [0, 1]. Either side empty scores 0.
func (l *lexicalSimilarity) Score(_ context.Context, text string) (float64, error) {
	vectors := tfidfVectors([]string{l.reference, text})
	return clamp01(cosineSparse(vectors[0], vectors[1])), nil
}

// ScoreBatch fits one vocabulary over the reference text and all paper texts,
// then scores each text against the reference. Fitting once per batch is what
// makes the batch path cheap; the idf table is shared across the whole call.
func (l *lexicalSimilarity) ScoreBatch(_ context.Context, texts []string) ([]float64, error) {
	docs := make([]string, 0, len(texts)+1)
	docs = append(docs, l.reference)
	docs = append(docs, texts...)

	vectors := tfidfVectors(docs)
	scores := make([]float64, len(texts))
	for i := range texts {
		scores[i] = clamp01(cosineSparse(vectors[0], vectors[i+1]))
	}
	return scores, nil
}

// tfidfVectors builds L2-normalized TF-IDF vectors for the documents.
// Term frequency is the token count normalized by document length; inverse
// document frequency uses the smoothed form ln((1+N)/(1+df)) + 1 so that
// terms appearing in every document keep a nonzero weight.
func tfidfVectors(docs []string) []map[string]float64 {
	tokens := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens[i] = Tokenize(doc)
		seen := make(map[string]struct{})
		for _, tok := range tokens[i] {
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	n := float64(len(docs))
	vectors := make([]map[string]float64, len(docs))
	for i := range docs {
		vec := make(map[string]float64)
		if len(tokens[i]) == 0 {
			vectors[i] = vec
			continue
		}

		counts := make(map[string]int)
		for _, tok := range tokens[i] {
			counts[tok]++
		}

		docLen := float64(len(tokens[i]))
		var norm float64
		for term, count := range counts {
			tf := float64(count) / docLen
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			w := tf * idf
			vec[term] = w
			norm += w * w
		}

		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range vec {
				vec[term] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

// cosineSparse returns the dot product of two L2-normalized sparse vectors.
func cosineSparse(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	return dot
}
