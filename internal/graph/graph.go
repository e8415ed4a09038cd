// Package graph builds the weighted term co-occurrence graph.
package graph

// Node is one vocabulary term. Count is the number of windowed-scan
// occurrences across the corpus; X and Y are filled in by the layout.
type Node struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Count int     `json:"count"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Edge is an undirected co-occurrence link. Source < Target always holds.
type Edge struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Weight int `json:"weight"`
}

// Graph is the structure written to the output artifacts.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
