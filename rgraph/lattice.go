package rgraph

import "fmt"

// RingLattice creates a ring lattice with n vertices, each connected to its k
// nearest successors along the cycle (wrapping around). When undirected, each
// placement is mirrored and the effective per-side degree is floor(k/2), so
// the resulting degree of every vertex is k for even k and k-1 for odd k.
// This is the substrate of WattsStrogatz.
//
// Fully deterministic given (n, k, undirected). Returns ErrInvalidDegree when
// k < 0 or k > n-1, which covers every n < 1 since no degree fits; no partial
// graph is returned. k == 0 yields the empty graph.
func RingLattice(n, k int, undirected bool) (*Graph, error) {
	if k < 0 || k > n-1 {
		return nil, fmt.Errorf("ring lattice: k=%d with n=%d: %w", k, n, ErrInvalidDegree)
	}
	g, err := NewGraph(n, undirected)
	if err != nil {
		return nil, fmt.Errorf("ring lattice: %w", err)
	}

	// Each directed placement is mirrored on undirected graphs, so halve the
	// offset range to hit the requested degree.
	if undirected && k > 1 {
		k = k / 2
	}

	// Connect every vertex to its k next neighbours; valid k never wraps an
	// offset back to 0, so no self-loops or multi-edges arise.
	for i := 0; i < n; i++ {
		for j := 1; j <= k; j++ {
			g.AddWeight(i, (i+j)%n, 1)
		}
	}
	return g, nil
}
