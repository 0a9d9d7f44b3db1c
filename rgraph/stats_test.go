package rgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_DirectedLattice(t *testing.T) {
	s := Summarize(mustRingLattice(t, 6, 2, false))

	assert.Equal(t, 6, s.N)
	assert.Equal(t, 12, s.Edges)
	assert.Equal(t, 12.0, s.TotalWeight)
	assert.InDelta(t, 0.4, s.Density, 1e-12)
	assert.Equal(t, 2.0, s.MeanDegree)
	assert.Equal(t, 0.0, s.StdDegree)
	assert.Equal(t, 2.0, s.MinDegree)
	assert.Equal(t, 2.0, s.MaxDegree)
	assert.Equal(t, 0, s.SelfLoops)
}

func TestSummarize_CountsSelfLoops(t *testing.T) {
	g, err := NewGraph(3, false)
	require.NoError(t, err)
	g.SetWeight(0, 0, 1)
	g.SetWeight(1, 2, 1)

	s := Summarize(g)
	assert.Equal(t, 2, s.Edges)
	assert.Equal(t, 1, s.SelfLoops)
	assert.Equal(t, 0.0, s.MinDegree, "vertex 2 has no out-edges")
	assert.Equal(t, 1.0, s.MaxDegree)
}

func TestSummarize_SingleVertex(t *testing.T) {
	g, err := NewGraph(1, true)
	require.NoError(t, err)

	s := Summarize(g)
	assert.Equal(t, 1, s.N)
	assert.Equal(t, 0, s.Edges)
	assert.Equal(t, 0.0, s.Density)
	assert.Equal(t, 0.0, s.MeanDegree)
	assert.Equal(t, 0.0, s.StdDegree)
}

func TestGraphStatsString(t *testing.T) {
	s := Summarize(mustRingLattice(t, 6, 2, false))
	assert.Equal(t,
		"n=6 edges=12 total_weight=12 density=0.4000 degree[mean=2.00 std=0.00 min=2 max=2] self_loops=0",
		s.String())
}
