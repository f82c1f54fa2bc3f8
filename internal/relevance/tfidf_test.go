package relevance

import (
	"context"
	"math"
	"testing"
)

func TestLexicalSimilarityIdenticalText(t *testing.T) {
	l := newLexicalSimilarity([]string{"sparse", "autoencoder", "features"})

	got, err := l.Score(context.Background(), "sparse autoencoder features")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Score() = %v, want 1.0", got)
	}
}

func TestLexicalSimilarityDisjointText(t *testing.T) {
	l := newLexicalSimilarity([]string{"sparse", "autoencoder"})

	got, err := l.Score(context.Background(), "migratory patterns of arctic terns")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Score() = %v, want 0", got)
	}
}

func TestLexicalSimilarityEmptyText(t *testing.T) {
	l := newLexicalSimilarity([]string{"attention"})

	got, err := l.Score(context.Background(), "")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Score() = %v, want 0", got)
	}
}

func TestLexicalSimilarityOrdering(t *testing.T) {
	l := newLexicalSimilarity([]string{"transformer", "attention", "interpretability"})

	near, err := l.Score(context.Background(), "attention in transformer models")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	far, err := l.Score(context.Background(), "attention spans in toddlers")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if near <= far {
		t.Errorf("expected closer text to score higher: near=%v far=%v", near, far)
	}
}

func TestLexicalSimilarityBatchMatchesSingle(t *testing.T) {
	l := newLexicalSimilarity([]string{"graph", "neural", "networks"})

	// A batch of one uses the same two-document corpus as the single path.
	single, err := l.Score(context.Background(), "graph neural networks for molecules")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	batch, err := l.ScoreBatch(context.Background(), []string{"graph neural networks for molecules"})
	if err != nil {
		t.Fatalf("ScoreBatch() error = %v", err)
	}
	if len(batch) != 1 {
		t.Fatalf("ScoreBatch() returned %d scores, want 1", len(batch))
	}
	if math.Abs(single-batch[0]) > 1e-9 {
		t.Errorf("batch of one = %v, single = %v", batch[0], single)
	}
}

func TestLexicalSimilarityBatchBounds(t *testing.T) {
	l := newLexicalSimilarity([]string{"reinforcement", "learning"})

	texts := []string{
		"reinforcement learning from human feedback",
		"deep reinforcement learning",
		"",
		"a cookbook of regional pasta dishes",
	}
	scores, err := l.ScoreBatch(context.Background(), texts)
	if err != nil {
		t.Fatalf("ScoreBatch() error = %v", err)
	}
	if len(scores) != len(texts) {
		t.Fatalf("ScoreBatch() returned %d scores, want %d", len(scores), len(texts))
	}
	for i, s := range scores {
		if s < 0 || s > 1 {
			t.Errorf("scores[%d] = %v, outside [0, 1]", i, s)
		}
	}
	if scores[2] != 0 {
		t.Errorf("empty text scored %v, want 0", scores[2])
	}
}

func TestLexicalSimilarityDeterministic(t *testing.T) {
	l := newLexicalSimilarity([]string{"diffusion", "models"})

	a, _ := l.Score(context.Background(), "latent diffusion models for image synthesis")
	b, _ := l.Score(context.Background(), "latent diffusion models for image synthesis")
	if a != b {
		t.Errorf("repeated Score() differs: %v vs %v", a, b)
	}
}
