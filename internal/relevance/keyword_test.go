package relevance

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestKeywordScorerExactPhrase(t *testing.T) {
	s := NewKeywordScorer([]string{"mechanistic interpretability"})

	// Exact phrase plus full word overlap: 0.8 + 0.4, clamped to 1.
	got := s.Score("a study of mechanistic interpretability in transformers")
	if !almostEqual(got, 1.0) {
		t.Errorf("Score() = %v, want 1.0", got)
	}
}

func TestKeywordScorerPartialOverlap(t *testing.T) {
	s := NewKeywordScorer([]string{"mechanistic interpretability", "attention"})

	// First keyword: exact (0.8) + overlap 2/2 (0.4) = 1.2.
	// Second keyword: absent, overlap 0.
	// Sum 1.2 / 2 keywords = 0.6.
	got := s.Score("mechanistic interpretability of transformers")
	if !almostEqual(got, 0.6) {
		t.Errorf("Score() = %v, want 0.6", got)
	}
}

func TestKeywordScorerWordOverlapOnly(t *testing.T) {
	s := NewKeywordScorer([]string{"sparse autoencoder features"})

	// No exact phrase; 2 of 3 keyword words present: 0.4 * 2/3.
	got := s.Score("autoencoder models with sparse activations")
	want := 0.4 * 2.0 / 3.0
	if !almostEqual(got, want) {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestKeywordScorerCaseInsensitive(t *testing.T) {
	s := NewKeywordScorer([]string{"Attention Mechanisms"})

	got := s.Score("ATTENTION MECHANISMS in deep networks")
	if !almostEqual(got, 1.0) {
		t.Errorf("Score() = %v, want 1.0", got)
	}
}

func TestKeywordScorerEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		text     string
		want     float64
	}{
		{"empty text", []string{"attention"}, "", 0},
		{"whitespace text", []string{"attention"}, "   \n\t ", 0},
		{"no keywords", nil, "some text", 0},
		{"no match at all", []string{"quantum cryptography"}, "birds of the amazon basin", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewKeywordScorer(tt.keywords)
			if got := s.Score(tt.text); !almostEqual(got, tt.want) {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeywordScorerBounded(t *testing.T) {
	// Many overlapping keywords must still clamp to 1.
	s := NewKeywordScorer([]string{"attention", "attention heads", "attention patterns"})
	got := s.Score("attention attention heads attention patterns")
	if got < 0 || got > 1 {
		t.Errorf("Score() = %v, outside [0, 1]", got)
	}
}
