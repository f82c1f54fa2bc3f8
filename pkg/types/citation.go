// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CitationRecord holds the reference and citer sets for one paper within a
// scoring batch. The sets are restricted to identifiers present in the batch:
// an id appears in References iff the batch contains a paper with that id and
// this paper's text mentions it. For every record pair (A, B) in one graph,
// B ∈ A.References implies A ∈ B.CitedBy.
type CitationRecord struct {
	// PaperID is the owning paper's identifier.
	PaperID string `json:"paper_id" yaml:"paper_id"`

	// References lists in-batch identifiers this paper's text mentions.
	References []string `json:"references,omitempty" yaml:"references,omitempty"`

	// CitedBy lists in-batch identifiers whose text mentions this paper.
	CitedBy []string `json:"cited_by,omitempty" yaml:"cited_by,omitempty"`

	// ReferenceCount is len(References).
	ReferenceCount int `json:"reference_count" yaml:"reference_count"`

	// CitationCount is len(CitedBy).
	CitationCount int `json:"citation_count" yaml:"citation_count"`
}
