package rgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// Dense returns the full adjacency matrix, including any diagonal entries.
// Intended for small graphs handed to visualization or linear-algebra
// tooling; the sparse Entries form is the cheaper interchange for large ones.
func (g *Graph) Dense() *mat.Dense {
	d := mat.NewDense(g.n, g.n, nil)
	for c, w := range g.weights {
		d.Set(c.Row, c.Col, w)
	}
	return d
}

// GonumGraph converts g for downstream graph analysis: a
// *simple.WeightedDirectedGraph or *simple.WeightedUndirectedGraph matching
// g's mode, with every vertex present as a node (including isolated ones)
// and edge weights carried over. Self-loops are omitted because gonum's
// simple graphs reject them; Dense carries the full matrix when they matter.
func (g *Graph) GonumGraph() graph.Graph {
	if g.undirected {
		u := simple.NewWeightedUndirectedGraph(0, 0)
		for i := 0; i < g.n; i++ {
			u.AddNode(simple.Node(i))
		}
		for c, w := range g.weights {
			// Symmetric entries appear twice; one triangle is enough.
			if c.Row >= c.Col {
				continue
			}
			u.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(c.Row), T: simple.Node(c.Col), W: w})
		}
		return u
	}

	d := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < g.n; i++ {
		d.AddNode(simple.Node(i))
	}
	for c, w := range g.weights {
		if c.Row == c.Col {
			continue
		}
		d.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(c.Row), T: simple.Node(c.Col), W: w})
	}
	return d
}
