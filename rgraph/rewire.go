package rgraph

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// cancelCheckInterval is how many edges are processed between context polls.
const cancelCheckInterval = 1000

// RewireConfig controls a Rewire pass.
//
// P is the per-edge rewiring probability: each stored edge independently
// relocates with probability P and stays put with probability 1-P. BothEnds
// additionally redraws the left endpoint instead of keeping it fixed.
// AllowSelf admits relocations onto the diagonal, AllowMultiple admits
// relocations onto positions that already hold weight (which then accumulate).
type RewireConfig struct {
	P             float64
	BothEnds      bool
	AllowSelf     bool
	AllowMultiple bool
}

// Rewire relocates each edge of g independently with probability cfg.P,
// producing the randomized graph as a new value; g itself is never modified.
// Applied to a ring lattice this is the Watts-Strogatz perturbation step.
//
// The edge list under consideration is snapshotted before any mutation, so
// relocated edges are not reconsidered. A new right endpoint is drawn
// uniformly from [0, n) by rejection sampling against the in-progress output:
// candidates violating the self-loop, multi-edge, or undirected
// canonical-order constraints are rejected and redrawn. An edge whose search
// exhausts the n*n rejection budget is left in place; that bounds worst-case
// work on near-complete graphs and is not an error. Total edge weight is
// conserved, except that an undirected self-loop's stored weight doubles when
// relocated off the diagonal (the mirrored write counts it twice).
//
// On an undirected graph (g.Undirected), each edge is processed once through
// its lower-triangle entry and every relocation keeps the matrix symmetric.
//
// ctx is polled every 1000 edges; on cancellation the wrapped context error
// is returned and the partial output is discarded. rng is the caller's
// random source (nil returns ErrNeedRand); pass a seeded *rand.Rand for
// reproducible results. Returns ErrInvalidProbability when P is outside
// [0, 1], before any work.
func Rewire(ctx context.Context, g *Graph, cfg RewireConfig, rng *rand.Rand) (*Graph, error) {
	if rng == nil {
		return nil, fmt.Errorf("rewire: %w", ErrNeedRand)
	}
	if math.IsNaN(cfg.P) || cfg.P < 0 || cfg.P > 1 {
		return nil, fmt.Errorf("rewire: p=%v: %w", cfg.P, ErrInvalidProbability)
	}

	out := g.Clone()
	n := g.N()
	coords := g.Coords()

	for i, c := range coords {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("rewire interrupted after %d of %d edges: %w", i, len(coords), err)
			}
		}

		// Keep the edge with probability 1-P. The inclusive comparison makes
		// both endpoints exact: P=0 never rewires, P=1 always does.
		if rng.Float64() >= cfg.P {
			continue
		}

		// Undirected edges appear at (r,c) and (c,r); only the lower-triangle
		// entry triggers a rewire so each edge moves at most once.
		if g.Undirected() && c.Row < c.Col {
			continue
		}

		newRow := c.Row
		if cfg.BothEnds {
			newRow = rng.Intn(n)
		}

		newCol, ok := pickEndpoint(out, cfg, rng, newRow)
		if !ok {
			logrus.Debugf("rewire: no admissible endpoint for edge (%d,%d); leaving in place", c.Row, c.Col)
			continue
		}

		// Relocate the full accumulated weight. SetWeight/AddWeight mirror on
		// undirected graphs, so symmetry survives every step.
		w := out.Weight(c.Row, c.Col)
		out.SetWeight(c.Row, c.Col, 0)
		out.AddWeight(newRow, newCol, w)
	}
	return out, nil
}

// pickEndpoint rejection-samples a column for the relocated edge. Candidates
// are drawn uniformly from [0, n); each distinct value is tried at most once,
// and redraws of already-tried values count toward an n*n budget that bounds
// the search when few admissible targets remain. Returns false when the
// budget is exhausted without an admissible candidate.
func pickEndpoint(out *Graph, cfg RewireConfig, rng *rand.Rand, newRow int) (int, bool) {
	n := out.N()
	tried := make([]bool, n)
	budget := n * n

	for rejects := 0; rejects < budget; {
		cand := rng.Intn(n)
		if tried[cand] {
			rejects++
			continue
		}
		tried[cand] = true

		// Same canonical-order rule the edge loop uses: on undirected graphs
		// the new edge must land in the lower triangle.
		if out.Undirected() && newRow < cand {
			continue
		}
		if !cfg.AllowSelf && newRow == cand {
			continue
		}
		// Multi-edge check runs against the partially rewired output, not the
		// input: earlier relocations occupy positions too.
		if !cfg.AllowMultiple && out.Weight(newRow, cand) != 0 {
			continue
		}
		return cand, true
	}
	return 0, false
}
