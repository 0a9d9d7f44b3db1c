package rgraph

import (
	"fmt"
	"sort"
)

// Coord addresses a single adjacency-matrix entry by (row, column).
type Coord struct {
	Row, Col int
}

// Entry is one non-zero adjacency-matrix entry in coordinate (COO) form,
// the interchange representation consumed by downstream analysis tools.
type Entry struct {
	Row, Col int
	Weight   float64
}

// Graph is an n-by-n sparse adjacency matrix over non-negative float64
// weights. Entry (i, j) holds the weight (edge multiplicity) of the directed
// arc i->j; only non-zero entries are stored.
//
// Directedness is fixed at construction. On an undirected graph every write
// through SetWeight/AddWeight is mirrored to the transposed position, so the
// matrix is symmetric at every observable point.
//
// Not safe for concurrent mutation. Callers own synchronization.
type Graph struct {
	n          int
	undirected bool
	weights    map[Coord]float64
}

// NewGraph creates an empty n-vertex graph.
// Returns ErrTooFewVertices when n < 1.
func NewGraph(n int, undirected bool) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("new graph: n=%d: %w", n, ErrTooFewVertices)
	}
	return &Graph{
		n:          n,
		undirected: undirected,
		weights:    make(map[Coord]float64),
	}, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// Undirected reports whether writes are mirrored to keep the matrix symmetric.
func (g *Graph) Undirected() bool { return g.undirected }

// Weight returns the weight of the arc i->j, or 0 when no edge is stored.
// Panics when an index is outside [0, n).
func (g *Graph) Weight(i, j int) float64 {
	g.checkIndex(i, j)
	return g.weights[Coord{i, j}]
}

// SetWeight stores w at (i, j), deleting the entry when w == 0.
// On an undirected graph the write is mirrored to (j, i). w must be
// non-negative. Panics when an index is outside [0, n).
func (g *Graph) SetWeight(i, j int, w float64) {
	g.checkIndex(i, j)
	g.set(i, j, w)
	if g.undirected {
		g.set(j, i, w)
	}
}

// AddWeight adds w to the entry at (i, j). On an undirected graph the
// increment is mirrored to (j, i); a diagonal increment therefore counts
// twice, matching the adjacency-matrix convention for undirected self-loops.
// Panics when an index is outside [0, n).
func (g *Graph) AddWeight(i, j int, w float64) {
	g.checkIndex(i, j)
	g.set(i, j, g.weights[Coord{i, j}]+w)
	if g.undirected {
		g.set(j, i, g.weights[Coord{j, i}]+w)
	}
}

// set writes a single entry without mirroring.
func (g *Graph) set(i, j int, w float64) {
	c := Coord{i, j}
	if w == 0 {
		delete(g.weights, c)
		return
	}
	g.weights[c] = w
}

func (g *Graph) checkIndex(i, j int) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		panic(fmt.Sprintf("rgraph: index (%d,%d) out of range for n=%d", i, j, g.n))
	}
}

// NNZ returns the number of stored non-zero entries. On an undirected graph
// each edge contributes two entries.
func (g *Graph) NNZ() int { return len(g.weights) }

// TotalWeight returns the sum of all stored entries.
func (g *Graph) TotalWeight() float64 {
	var total float64
	for _, w := range g.weights {
		total += w
	}
	return total
}

// OutDegree returns the weight sum of row i.
func (g *Graph) OutDegree(i int) float64 {
	g.checkIndex(i, 0)
	var d float64
	for c, w := range g.weights {
		if c.Row == i {
			d += w
		}
	}
	return d
}

// InDegree returns the weight sum of column j.
func (g *Graph) InDegree(j int) float64 {
	g.checkIndex(0, j)
	var d float64
	for c, w := range g.weights {
		if c.Col == j {
			d += w
		}
	}
	return d
}

// Coords returns the coordinates of the non-zero entries in row-major order.
// The slice is a snapshot taken at call time: mutating the graph afterwards
// does not change it. The rewirer iterates such a snapshot so that the edge
// set under consideration is fixed up front.
func (g *Graph) Coords() []Coord {
	coords := make([]Coord, 0, len(g.weights))
	for c := range g.weights {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(a, b int) bool {
		if coords[a].Row != coords[b].Row {
			return coords[a].Row < coords[b].Row
		}
		return coords[a].Col < coords[b].Col
	})
	return coords
}

// Entries returns the non-zero entries as COO triples in row-major order.
func (g *Graph) Entries() []Entry {
	coords := g.Coords()
	entries := make([]Entry, len(coords))
	for i, c := range coords {
		entries[i] = Entry{Row: c.Row, Col: c.Col, Weight: g.weights[c]}
	}
	return entries
}

// Clone returns an independent deep copy.
func (g *Graph) Clone() *Graph {
	weights := make(map[Coord]float64, len(g.weights))
	for c, w := range g.weights {
		weights[c] = w
	}
	return &Graph{n: g.n, undirected: g.undirected, weights: weights}
}

// Equal reports whether h has the same size, directedness, and entries.
func (g *Graph) Equal(h *Graph) bool {
	if h == nil || g.n != h.n || g.undirected != h.undirected || len(g.weights) != len(h.weights) {
		return false
	}
	for c, w := range g.weights {
		if h.weights[c] != w {
			return false
		}
	}
	return true
}

func (g *Graph) String() string {
	mode := "directed"
	if g.undirected {
		mode = "undirected"
	}
	return fmt.Sprintf("graph[n=%d %s nnz=%d]", g.n, mode, len(g.weights))
}
