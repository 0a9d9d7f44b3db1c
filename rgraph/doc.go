// Package rgraph provides random-graph generators used as substrates for
// network diffusion simulations.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - graph.go: the sparse adjacency matrix (Graph) and its COO snapshots
//   - lattice.go: deterministic ring-lattice construction
//   - rewire.go: stochastic edge rewiring (the Watts-Strogatz perturbation)
//
// # Generators
//
// RingLattice builds the regular substrate; Rewire relocates its edges with
// per-edge probability p; WattsStrogatz composes the two into the classic
// small-world model; Bernoulli is the Erdős–Rényi G(n,p) sibling. All
// constraints (self-loop policy, multi-edge policy, directed/undirected
// symmetry) are enforced during construction, and undirected graphs stay
// symmetric through every mutation.
//
// # Determinism
//
// Every stochastic generator takes an explicit *rand.Rand; the same seed and
// parameters always reproduce the same graph. PartitionedRNG derives one
// isolated stream per generator subsystem from a single master seed, so
// multi-model scenarios stay reproducible as they grow. Long rewiring runs
// poll their context and abort promptly on cancellation.
//
// The scenario sub-package drives these generators from YAML scenario files.
package rgraph
