package rgraph

import (
	"math/rand"
	"testing"
)

// testRand returns a deterministic rand source for test draws.
func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// mustRingLattice builds a ring lattice or fails the test.
func mustRingLattice(t *testing.T, n, k int, undirected bool) *Graph {
	t.Helper()
	g, err := RingLattice(n, k, undirected)
	if err != nil {
		t.Fatalf("RingLattice(%d, %d, %v) failed: %v", n, k, undirected, err)
	}
	return g
}

// requireSymmetric fails unless every entry has an equal mirrored entry.
func requireSymmetric(t *testing.T, g *Graph) {
	t.Helper()
	for _, e := range g.Entries() {
		if got := g.Weight(e.Col, e.Row); got != e.Weight {
			t.Fatalf("asymmetric entry: weight(%d,%d)=%g but weight(%d,%d)=%g",
				e.Row, e.Col, e.Weight, e.Col, e.Row, got)
		}
	}
}

// requireNoSelfLoops fails if any diagonal entry is non-zero.
func requireNoSelfLoops(t *testing.T, g *Graph) {
	t.Helper()
	for _, e := range g.Entries() {
		if e.Row == e.Col {
			t.Fatalf("unexpected self-loop at vertex %d with weight %g", e.Row, e.Weight)
		}
	}
}

// requireUnitWeights fails unless every stored entry is exactly 1.
func requireUnitWeights(t *testing.T, g *Graph) {
	t.Helper()
	for _, e := range g.Entries() {
		if e.Weight != 1 {
			t.Fatalf("entry (%d,%d) has weight %g, want 1", e.Row, e.Col, e.Weight)
		}
	}
}
