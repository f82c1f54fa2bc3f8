// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package semantic measures text similarity with dense embeddings from a
// pretrained model. An Encoder collaborator turns text into vectors; the
// Index caches reference-phrase vectors; the Scorer compares paper text
// against the index.
package semantic

import (
	"context"
	"math"
)

// Encoder turns a batch of texts into embedding vectors, one per input, in
// input order. Implementations wrap a remote or local embedding model and
// should be reused across calls; the model is the only variable-latency
// dependency in the scoring path.
type Encoder interface {
	// Encode embeds all texts in one model call.
	Encode(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName returns the embedding model identifier.
	ModelName() string
}

// Cosine computes the cosine similarity between two vectors. Returns a value
// in [-1, 1], or 0 when either vector is empty, zero, or the lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
