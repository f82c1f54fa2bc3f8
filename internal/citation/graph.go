// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"sort"

	"github.com/pdiddy/arxiv-radar/pkg/types"
)

// Graph is the bidirectional citation graph over one scoring batch, keyed by
// paper id. A built graph is an immutable snapshot: callers sharing one
// across goroutines must not mutate the records in place.
type Graph map[string]*types.CitationRecord

// BuildGraph extracts references from every paper and assembles the
// reference/cited-by graph. Only identifiers belonging to papers in the
// batch become edges (closed world); self-references never appear. The
// result satisfies: B ∈ A.References ⇔ A ∈ B.CitedBy.
func BuildGraph(papers []types.Paper) Graph {
	inBatch := make(map[string]struct{}, len(papers))
	for _, p := range papers {
		inBatch[p.ID] = struct{}{}
	}

	// First pass: per-paper references, restricted to the batch.
	refs := make(map[string][]string, len(papers))
	for _, p := range papers {
		var kept []string
		for _, id := range ExtractReferences(p) {
			if _, ok := inBatch[id]; ok && id != p.ID {
				kept = append(kept, id)
			}
		}
		refs[p.ID] = kept
	}

	// Second pass: invert the reference map into citer sets.
	citedBy := make(map[string][]string, len(papers))
	for citer, outgoing := range refs {
		for _, cited := range outgoing {
			citedBy[cited] = append(citedBy[cited], citer)
		}
	}

	graph := make(Graph, len(papers))
	for _, p := range papers {
		citers := citedBy[p.ID]
		sort.Strings(citers)
		graph[p.ID] = &types.CitationRecord{
			PaperID:        p.ID,
			References:     refs[p.ID],
			CitedBy:        citers,
			ReferenceCount: len(refs[p.ID]),
			CitationCount:  len(citers),
		}
	}
	return graph
}

// MaxCitations returns the highest citer count in the graph, 0 when the
// graph has no citers at all.
func (g Graph) MaxCitations() int {
	max := 0
	for _, rec := range g {
		if rec.CitationCount > max {
			max = rec.CitationCount
		}
	}
	return max
}

// Related performs a bounded-distance breadth-first search from start over
// the undirected union of reference and citer edges. It returns every id
// reachable within maxDistance hops, excluding start itself. Distance 0, an
// unknown start id, and a negative distance all return an empty set.
func (g Graph) Related(start string, maxDistance int) map[string]struct{} {
	related := make(map[string]struct{})
	if _, ok := g[start]; !ok || maxDistance <= 0 {
		return related
	}

	visited := map[string]struct{}{start: {}}
	level := map[string]struct{}{start: {}}

	for hop := 0; hop < maxDistance && len(level) > 0; hop++ {
		next := make(map[string]struct{})
		for id := range level {
			rec, ok := g[id]
			if !ok {
				continue
			}
			for _, neighbor := range rec.References {
				if _, seen := visited[neighbor]; !seen {
					visited[neighbor] = struct{}{}
					next[neighbor] = struct{}{}
					related[neighbor] = struct{}{}
				}
			}
			for _, neighbor := range rec.CitedBy {
				if _, seen := visited[neighbor]; !seen {
					visited[neighbor] = struct{}{}
					next[neighbor] = struct{}{}
					related[neighbor] = struct{}{}
				}
			}
		}
		level = next
	}
	return related
}
