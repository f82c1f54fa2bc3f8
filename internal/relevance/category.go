// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import "strings"

// CategoryScorer measures overlap between a paper's subject tags and a
// configured relevant-category set.
type CategoryScorer struct {
	relevant map[string]struct{}
}

// NewCategoryScorer builds a scorer over the given relevant categories.
func NewCategoryScorer(categories []string) *CategoryScorer {
	relevant := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		relevant[c] = struct{}{}
	}
	return &CategoryScorer{relevant: relevant}
}

// Score returns the category overlap score for the paper's tags in [0, 1].
// Direct matches score |intersection| / |relevant set|. With no direct match,
// each (tag, relevant tag) pair sharing the same archive prefix (the part
// before the first ".") earns partial credit of 0.5, normalized the same way.
// An empty tag list scores 0.
func (s *CategoryScorer) Score(categories []string) float64 {
	if len(categories) == 0 || len(s.relevant) == 0 {
		return 0
	}

	tags := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		tags[c] = struct{}{}
	}

	matches := 0
	for c := range tags {
		if _, ok := s.relevant[c]; ok {
			matches++
		}
	}
	if matches > 0 {
		return clamp01(float64(matches) / float64(len(s.relevant)))
	}

	var partial float64
	for c := range tags {
		main := archivePrefix(c)
		for rel := range s.relevant {
			if main == archivePrefix(rel) {
				partial += 0.5
			}
		}
	}
	return clamp01(partial / float64(len(s.relevant)))
}

// archivePrefix returns the top-level archive of a category tag
// ("cs.AI" → "cs"). Tags without a separator are their own archive.
func archivePrefix(category string) string {
	if main, _, ok := strings.Cut(category, "."); ok {
		return main
	}
	return category
}
