package graph

import "testing"

func TestBuild(t *testing.T) {
	t.Run("prunes edges below min weight", func(t *testing.T) {
		v := testVocab("aa", "bb", "cc")
		acc := NewAccumulator(3, 12)
		acc.AddDocument(v, []string{"aa", "bb", "aa", "bb"}) // aa-bb seen 4 times
		acc.AddDocument(v, []string{"cc"})                   // cc never pairs

		g := Build(v, acc, 2, 180)

		for _, e := range g.Edges {
			if e.Weight < 2 {
				t.Errorf("edge %v survived pruning", e)
			}
		}
		if len(g.Nodes) != 3 {
			t.Errorf("len(nodes) = %d, want 3 (isolated nodes kept)", len(g.Nodes))
		}
	})

	t.Run("orders by weight then pair", func(t *testing.T) {
		v := testVocab("aa", "bb", "cc", "dd")
		acc := NewAccumulator(4, 12)
		// aa-bb twice, aa-cc twice, cc-dd three times
		acc.AddDocument(v, []string{"aa", "bb"})
		acc.AddDocument(v, []string{"aa", "bb"})
		acc.AddDocument(v, []string{"aa", "cc"})
		acc.AddDocument(v, []string{"aa", "cc"})
		acc.AddDocument(v, []string{"cc", "dd"})
		acc.AddDocument(v, []string{"cc", "dd"})
		acc.AddDocument(v, []string{"cc", "dd"})

		g := Build(v, acc, 2, 180)

		want := []Edge{
			{Source: 2, Target: 3, Weight: 3},
			{Source: 0, Target: 1, Weight: 2},
			{Source: 0, Target: 2, Weight: 2},
		}
		if len(g.Edges) != len(want) {
			t.Fatalf("len(edges) = %d, want %d", len(g.Edges), len(want))
		}
		for i, e := range want {
			if g.Edges[i] != e {
				t.Errorf("edges[%d] = %v, want %v", i, g.Edges[i], e)
			}
		}
	})

	t.Run("caps the edge count", func(t *testing.T) {
		v := testVocab("aa", "bb", "cc", "dd")
		acc := NewAccumulator(4, 12)
		doc := []string{"aa", "bb", "cc", "dd"}
		for range 3 {
			acc.AddDocument(v, doc) // every pair weight 3
		}

		g := Build(v, acc, 2, 2)

		if len(g.Edges) != 2 {
			t.Fatalf("len(edges) = %d, want 2", len(g.Edges))
		}
		// with equal weights the smallest pairs win
		if g.Edges[0] != (Edge{Source: 0, Target: 1, Weight: 3}) {
			t.Errorf("edges[0] = %v", g.Edges[0])
		}
		if g.Edges[1] != (Edge{Source: 0, Target: 2, Weight: 3}) {
			t.Errorf("edges[1] = %v", g.Edges[1])
		}
	})

	t.Run("node counts carried over", func(t *testing.T) {
		v := testVocab("aa", "bb")
		acc := NewAccumulator(2, 12)
		acc.AddDocument(v, []string{"aa", "bb", "aa"})

		g := Build(v, acc, 2, 180)

		if g.Nodes[0] != (Node{ID: 0, Label: "aa", Count: 2}) {
			t.Errorf("nodes[0] = %v", g.Nodes[0])
		}
		if g.Nodes[1] != (Node{ID: 1, Label: "bb", Count: 1}) {
			t.Errorf("nodes[1] = %v", g.Nodes[1])
		}
	})

	t.Run("empty vocabulary", func(t *testing.T) {
		v := testVocab()
		acc := NewAccumulator(0, 12)
		acc.AddDocument(v, nil)

		g := Build(v, acc, 2, 180)

		if g.Nodes == nil || g.Edges == nil {
			t.Error("nodes and edges must be non-nil for serialization")
		}
		if len(g.Nodes) != 0 || len(g.Edges) != 0 {
			t.Errorf("expected empty graph, got %v", g)
		}
	})
}
