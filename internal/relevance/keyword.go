// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import "strings"

// KeywordScorer measures lexical overlap between paper text and a configured
// keyword set. The keyword list and per-keyword word sets are fixed at
// construction.
type KeywordScorer struct {
	keywords []string
	words    []map[string]struct{}
}

// Match credit constants. An exact phrase occurrence outweighs partial word
// overlap by two to one.
const (
	phraseCredit  = 0.8
	overlapCredit = 0.4
)

// NewKeywordScorer builds a scorer over the given keyword phrases. Keywords
// are matched case-insensitively.
func NewKeywordScorer(keywords []string) *KeywordScorer {
	s := &KeywordScorer{
		keywords: make([]string, len(keywords)),
		words:    make([]map[string]struct{}, len(keywords)),
	}
	for i, kw := range keywords {
		s.keywords[i] = strings.ToLower(kw)
		s.words[i] = wordSet(kw)
	}
	return s
}

// Score returns the keyword overlap score for text in [0, 1]. Each keyword
// contributes 0.8 for an exact phrase occurrence plus 0.4 scaled by the
// fraction of its words present anywhere in the text; the sum is normalized
// by the keyword count. Empty text scores 0.
func (s *KeywordScorer) Score(text string) float64 {
	if len(s.keywords) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return 0
	}
	textWords := wordSet(lower)

	var score float64
	for i, kw := range s.keywords {
		if strings.Contains(lower, kw) {
			score += phraseCredit
		}

		overlap := 0
		for w := range s.words[i] {
			if _, ok := textWords[w]; ok {
				overlap++
			}
		}
		if overlap > 0 {
			score += overlapCredit * float64(overlap) / float64(len(s.words[i]))
		}
	}

	return clamp01(score / float64(len(s.keywords)))
}
