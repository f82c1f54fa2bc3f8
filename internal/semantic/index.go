// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semantic

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoPhrases is returned when an index is built over an empty phrase set.
var ErrNoPhrases = errors.New("no reference phrases to index")

// Index holds precomputed embedding vectors for a fixed reference-phrase
// set. The vectors are encoded once at construction and never mutated, so a
// built index is safe for concurrent reads. Re-encoding requires building a
// new index.
type Index struct {
	phrases []string
	vectors [][]float32
	model   string
}

// NewIndex encodes the reference phrases in one batch call and returns the
// resulting index. An encoding failure is returned to the caller so it can
// fall back to lexical similarity.
func NewIndex(ctx context.Context, enc Encoder, phrases []string) (*Index, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}

	vectors, err := enc.Encode(ctx, phrases)
	if err != nil {
		return nil, fmt.Errorf("encoding reference phrases: %w", err)
	}
	if len(vectors) != len(phrases) {
		return nil, fmt.Errorf("encoder returned %d vectors for %d phrases", len(vectors), len(phrases))
	}

	idx := &Index{
		phrases: append([]string(nil), phrases...),
		vectors: vectors,
		model:   enc.ModelName(),
	}
	return idx, nil
}

// Len returns the number of indexed reference phrases.
func (idx *Index) Len() int { return len(idx.vectors) }

// ModelName returns the model the index vectors were produced by.
func (idx *Index) ModelName() string { return idx.model }

// Similarities returns the cosine similarity of vec against every reference
// vector, in index order.
func (idx *Index) Similarities(vec []float32) []float64 {
	sims := make([]float64, len(idx.vectors))
	for i, ref := range idx.vectors {
		sims[i] = Cosine(vec, ref)
	}
	return sims
}

// Phrase returns the reference phrase at position i.
func (idx *Index) Phrase(i int) string { return idx.phrases[i] }
