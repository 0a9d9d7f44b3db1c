// Package testutil provides shared test infrastructure for the graph
// generators. It consolidates the structural assertions used across the
// rgraph and rgraph/scenario test packages.
package testutil

import (
	"testing"

	"github.com/manlius/netdiffuseR/rgraph"
)

// AssertSymmetric fails the test when any entry of g lacks its mirror.
func AssertSymmetric(t *testing.T, g *rgraph.Graph) {
	t.Helper()
	for _, c := range g.Coords() {
		if g.Weight(c.Row, c.Col) != g.Weight(c.Col, c.Row) {
			t.Errorf("asymmetric entry: weight(%d,%d)=%g, weight(%d,%d)=%g",
				c.Row, c.Col, g.Weight(c.Row, c.Col), c.Col, c.Row, g.Weight(c.Col, c.Row))
		}
	}
}

// AssertNoSelfLoops fails the test when g stores any diagonal entry.
func AssertNoSelfLoops(t *testing.T, g *rgraph.Graph) {
	t.Helper()
	for _, c := range g.Coords() {
		if c.Row == c.Col {
			t.Errorf("unexpected self-loop at vertex %d", c.Row)
		}
	}
}

// AssertTotalWeight fails the test when g's summed weight differs from want.
func AssertTotalWeight(t *testing.T, g *rgraph.Graph, want float64) {
	t.Helper()
	if got := g.TotalWeight(); got != want {
		t.Errorf("total weight = %g, want %g", got, want)
	}
}
