package rgraph

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GraphStats summarizes the structure of a generated graph, for logging and
// for sanity checks on generator output.
type GraphStats struct {
	N           int     // vertex count
	Edges       int     // stored non-zero entries (undirected edges count twice)
	TotalWeight float64 // sum of all entries
	Density     float64 // Edges / (N * (N-1)), the filled fraction of off-diagonal positions
	MeanDegree  float64 // mean out-degree (row weight sums)
	StdDegree   float64 // sample standard deviation of out-degrees
	MinDegree   float64
	MaxDegree   float64
	SelfLoops   int // non-zero diagonal entries
}

// Summarize computes GraphStats for g in a single pass over its entries.
func Summarize(g *Graph) GraphStats {
	n := g.N()
	degrees := make([]float64, n)
	s := GraphStats{N: n}

	for _, e := range g.Entries() {
		s.Edges++
		s.TotalWeight += e.Weight
		degrees[e.Row] += e.Weight
		if e.Row == e.Col {
			s.SelfLoops++
		}
	}

	if n > 1 {
		s.Density = float64(s.Edges) / float64(n*(n-1))
	}
	s.MeanDegree = stat.Mean(degrees, nil)
	if n > 1 {
		s.StdDegree = stat.StdDev(degrees, nil)
	}
	s.MinDegree = floats.Min(degrees)
	s.MaxDegree = floats.Max(degrees)
	return s
}

func (s GraphStats) String() string {
	return fmt.Sprintf("n=%d edges=%d total_weight=%g density=%.4f degree[mean=%.2f std=%.2f min=%g max=%g] self_loops=%d",
		s.N, s.Edges, s.TotalWeight, s.Density, s.MeanDegree, s.StdDegree, s.MinDegree, s.MaxDegree, s.SelfLoops)
}
