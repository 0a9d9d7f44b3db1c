package rgraph

import (
	"testing"

	"gonum.org/v1/gonum/graph/simple"
)

func TestDense_MatchesWeights(t *testing.T) {
	g := mustRingLattice(t, 5, 2, true)
	d := g.Dense()

	r, c := d.Dims()
	if r != 5 || c != 5 {
		t.Fatalf("Dims() = (%d,%d), want (5,5)", r, c)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if got, want := d.At(i, j), g.Weight(i, j); got != want {
				t.Errorf("At(%d,%d) = %g, want %g", i, j, got, want)
			}
		}
	}
}

func TestDense_CarriesSelfLoops(t *testing.T) {
	g, err := NewGraph(3, false)
	if err != nil {
		t.Fatal(err)
	}
	g.SetWeight(1, 1, 2)

	if got := g.Dense().At(1, 1); got != 2 {
		t.Errorf("At(1,1) = %g, want 2", got)
	}
}

func TestGonumGraph_Directed(t *testing.T) {
	g := mustRingLattice(t, 5, 2, false)

	dg, ok := g.GonumGraph().(*simple.WeightedDirectedGraph)
	if !ok {
		t.Fatalf("GonumGraph() = %T, want *simple.WeightedDirectedGraph", g.GonumGraph())
	}
	if got := dg.Nodes().Len(); got != 5 {
		t.Errorf("node count = %d, want 5", got)
	}

	edges := 0
	for it := dg.Edges(); it.Next(); {
		edges++
	}
	if edges != 10 {
		t.Errorf("edge count = %d, want 10", edges)
	}
	if got := dg.WeightedEdge(0, 1).Weight(); got != 1 {
		t.Errorf("weight(0,1) = %g, want 1", got)
	}
	if dg.HasEdgeFromTo(1, 0) {
		t.Error("lattice has no edge 1->0, conversion invented one")
	}
}

func TestGonumGraph_Undirected(t *testing.T) {
	g := mustRingLattice(t, 6, 2, true)

	ug, ok := g.GonumGraph().(*simple.WeightedUndirectedGraph)
	if !ok {
		t.Fatalf("GonumGraph() = %T, want *simple.WeightedUndirectedGraph", g.GonumGraph())
	}
	if got := ug.Nodes().Len(); got != 6 {
		t.Errorf("node count = %d, want 6", got)
	}

	// The 12 symmetric entries collapse to 6 undirected edges.
	edges := 0
	for it := ug.Edges(); it.Next(); {
		edges++
	}
	if edges != 6 {
		t.Errorf("edge count = %d, want 6", edges)
	}
	if !ug.HasEdgeBetween(5, 0) {
		t.Error("missing wrap-around edge {5,0}")
	}
}

func TestGonumGraph_KeepsIsolatedVertices(t *testing.T) {
	g, err := NewGraph(4, true)
	if err != nil {
		t.Fatal(err)
	}
	g.SetWeight(0, 1, 1)

	ug := g.GonumGraph().(*simple.WeightedUndirectedGraph)
	for i := int64(0); i < 4; i++ {
		if ug.Node(i) == nil {
			t.Errorf("vertex %d missing from conversion", i)
		}
	}
}

func TestGonumGraph_OmitsSelfLoops(t *testing.T) {
	g, err := NewGraph(3, false)
	if err != nil {
		t.Fatal(err)
	}
	g.SetWeight(0, 0, 1)
	g.SetWeight(0, 2, 1)

	dg := g.GonumGraph().(*simple.WeightedDirectedGraph)
	edges := 0
	for it := dg.Edges(); it.Next(); {
		edges++
	}
	if edges != 1 {
		t.Errorf("edge count = %d, want 1 (diagonal entries are dropped)", edges)
	}
}
