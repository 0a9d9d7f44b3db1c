package rgraph

import "errors"

// Sentinel errors returned by the graph constructors and the rewirer.
// Callers branch with errors.Is; call sites wrap them with parameter context.
var (
	// ErrTooFewVertices indicates a graph size below the minimum of one vertex.
	ErrTooFewVertices = errors.New("rgraph: graph needs at least one vertex")

	// ErrInvalidDegree indicates a ring-lattice degree outside [0, n-1]: the
	// requested out-degree cannot exceed the number of other vertices.
	ErrInvalidDegree = errors.New("rgraph: k can be at most n - 1")

	// ErrInvalidProbability indicates a probability outside the closed
	// interval [0, 1].
	ErrInvalidProbability = errors.New("rgraph: probability out of range")

	// ErrNeedRand indicates that a stochastic generator was called without a
	// random source.
	ErrNeedRand = errors.New("rgraph: rand source is required")
)
