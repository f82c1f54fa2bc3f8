// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Paper holds the metadata for one scientific-paper record, as returned by
// the fetch stage. A paper is immutable once it enters a scoring batch.
type Paper struct {
	// ID is the paper identifier, unique within a batch (e.g. "2301.07041").
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Summary is the abstract. May be empty.
	Summary string `json:"summary" yaml:"summary"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Categories lists the subject-category tags (e.g. "cs.AI", "cs.LG").
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Published is the publication or preprint date.
	Published time.Time `json:"published" yaml:"published"`

	// Source identifies the backend that supplied the record (e.g. "arxiv").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Text returns the title and summary joined for scoring. Scorers operate on
// this combined view rather than on the individual fields.
func (p Paper) Text() string {
	if p.Summary == "" {
		return p.Title
	}
	return p.Title + " " + p.Summary
}

// ScoreBreakdown records the per-signal components behind a paper's final
// relevance score. Every component lies in [0, 1].
type ScoreBreakdown struct {
	Keyword  float64 `json:"keyword" yaml:"keyword"`
	Category float64 `json:"category" yaml:"category"`
	Semantic float64 `json:"semantic" yaml:"semantic"`
	Citation float64 `json:"citation" yaml:"citation"`
	Final    float64 `json:"final" yaml:"final"`
}
