package scenario

// Built-in scenario presets for common generation setups.
// Each returns a valid Spec ready for use with Generate.

// PresetSmallWorld creates a Watts-Strogatz scenario with the given rewiring
// probability.
func PresetSmallWorld(seed int64, n, k int, p float64) *Spec {
	return &Spec{Seed: seed, Model: ModelSmallWorld, N: n, K: k, P: p}
}

// PresetRing creates an unrewired undirected ring lattice scenario.
func PresetRing(seed int64, n, k int) *Spec {
	return &Spec{Seed: seed, Model: ModelRing, N: n, K: k, Undirected: true}
}

// PresetBernoulli creates an undirected Erdős–Rényi scenario without
// self-loops.
func PresetBernoulli(seed int64, n int, p float64) *Spec {
	return &Spec{Seed: seed, Model: ModelBernoulli, N: n, P: p, Undirected: true}
}
