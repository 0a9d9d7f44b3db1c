package rgraph

import (
	"context"
	"math/rand"
)

// WattsStrogatz generates a small-world graph following Watts & Strogatz
// (1998), Collective dynamics of "small-world" networks, Nature 393(6684):
// an undirected ring lattice of n vertices with degree k, each edge then
// rewired independently with probability cfg.P. Small P shortens path
// lengths while preserving the lattice's local clustering.
//
// Propagates RingLattice's and Rewire's errors; the result is always
// undirected and symmetric.
func WattsStrogatz(ctx context.Context, n, k int, cfg RewireConfig, rng *rand.Rand) (*Graph, error) {
	ring, err := RingLattice(n, k, true)
	if err != nil {
		return nil, err
	}
	return Rewire(ctx, ring, cfg, rng)
}
