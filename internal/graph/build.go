package graph

import (
	"cmp"
	"slices"
)

// Build assembles the final graph: one node per vocabulary term with its
// accumulated count, and the pruned, capped edge list. Edges lighter than
// minWeight are dropped; the rest are ordered by weight descending with
// (source, target) as the tie-break, then truncated to maxEdges. Nodes
// keep their place even when every incident edge is pruned.
func Build(v Vocabulary, acc *Accumulator, minWeight, maxEdges int) Graph {
	nodes := make([]Node, len(v.Terms))
	counts := acc.Counts()
	for i, term := range v.Terms {
		nodes[i] = Node{ID: i, Label: term, Count: counts[i]}
	}

	edges := make([]Edge, 0, len(acc.Pairs()))
	for pair, weight := range acc.Pairs() {
		if weight < minWeight {
			continue
		}
		edges = append(edges, Edge{Source: pair[0], Target: pair[1], Weight: weight})
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Source, b.Source); c != 0 {
			return c
		}
		return cmp.Compare(a.Target, b.Target)
	})
	if len(edges) > maxEdges {
		edges = edges[:maxEdges]
	}

	return Graph{Nodes: nodes, Edges: edges}
}
