package rgraph

import (
	"fmt"
	"math"
	"math/rand"
)

// Bernoulli generates an Erdős–Rényi G(n,p) graph: every admissible vertex
// pair carries an edge of weight 1 independently with probability p. On an
// undirected graph each unordered pair is drawn once and mirrored; on a
// directed graph every ordered pair is drawn independently. Diagonal entries
// are drawn only when allowSelf is set.
//
// Deterministic given rng's seed. Returns ErrInvalidProbability when p is
// outside [0, 1], ErrNeedRand when rng is nil, and ErrTooFewVertices when
// n < 1.
func Bernoulli(n int, p float64, undirected, allowSelf bool, rng *rand.Rand) (*Graph, error) {
	if rng == nil {
		return nil, fmt.Errorf("bernoulli: %w", ErrNeedRand)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("bernoulli: p=%v: %w", p, ErrInvalidProbability)
	}
	g, err := NewGraph(n, undirected)
	if err != nil {
		return nil, fmt.Errorf("bernoulli: %w", err)
	}

	for i := 0; i < n; i++ {
		// Off-diagonal draws: one per unordered pair when undirected (the
		// mirror write keeps symmetry), one per ordered pair when directed.
		lo := i + 1
		if !undirected {
			lo = 0
		}
		for j := lo; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				g.SetWeight(i, j, 1)
			}
		}
		if allowSelf && rng.Float64() < p {
			g.SetWeight(i, i, 1)
		}
	}
	return g, nil
}
