// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation builds a reference/cited-by graph over one scoring batch
// and derives per-paper importance scores from it. References are extracted
// heuristically from title and abstract text, not from a citation database,
// and only identifiers present in the batch count as edges.
package citation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/arxiv-radar/pkg/types"
)

// Reference-notation patterns, matched against lowercased text. The numeric
// form is the modern arXiv id (YYMM.NNNNN, optional version suffix), with or
// without an "arxiv:" prefix; the slash form is the pre-2007 archive id
// (subject-class/YYMMNNN, 6 digits also accepted).
var refPatterns = []*regexp.Regexp{
	regexp.MustCompile(`arxiv:(\d{4}\.\d{4,5}(?:v\d+)?)`),
	regexp.MustCompile(`\b(\d{4}\.\d{4,5}(?:v\d+)?)\b`),
	regexp.MustCompile(`\b([a-z][a-z-]*(?:\.[a-z]{2})?/\d{6,7})\b`),
}

// ExtractReferences scans a paper's title and summary for identifier-like
// substrings. Matches are deduplicated and the paper's own identifier is
// excluded. The result is sorted for deterministic output.
func ExtractReferences(p types.Paper) []string {
	text := strings.ToLower(p.Text())
	own := strings.ToLower(p.ID)

	seen := make(map[string]struct{})
	for _, re := range refPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			id := m[1]
			if id == own {
				continue
			}
			seen[id] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	refs := make([]string, 0, len(seen))
	for id := range seen {
		refs = append(refs, id)
	}
	sort.Strings(refs)
	return refs
}
