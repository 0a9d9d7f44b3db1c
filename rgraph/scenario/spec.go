// Package scenario loads YAML generation scenarios and runs the generator
// they name. A scenario pins a model, its parameters, and a seed, so a file
// fully determines the resulting graph.
package scenario

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/manlius/netdiffuseR/rgraph"
)

// Recognized generator model names.
const (
	ModelRing       = "ring"
	ModelSmallWorld = "smallworld"
	ModelBernoulli  = "bernoulli"
)

// validModels is the set of recognized model names.
var validModels = map[string]bool{ModelRing: true, ModelSmallWorld: true, ModelBernoulli: true}

// Spec is the top-level scenario configuration, loadable from a YAML file.
// K applies to the lattice models, P to the probabilistic ones; Undirected is
// ignored by smallworld, which is undirected by construction. BothEnds, Self,
// and Multiple carry the rewiring switches and are meaningful for smallworld
// (Self also gates Bernoulli diagonal draws).
type Spec struct {
	Seed       int64   `yaml:"seed"`
	Model      string  `yaml:"model"`
	N          int     `yaml:"n"`
	K          int     `yaml:"k,omitempty"`
	P          float64 `yaml:"p,omitempty"`
	Undirected bool    `yaml:"undirected,omitempty"`
	BothEnds   bool    `yaml:"both_ends,omitempty"`
	Self       bool    `yaml:"self,omitempty"`
	Multiple   bool    `yaml:"multiple,omitempty"`
}

// Load reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &spec, nil
}

// Validate checks that the spec's fields are in range for its model. The
// returned errors wrap the rgraph sentinels so callers can test them with
// errors.Is.
func (s *Spec) Validate() error {
	if !validModels[s.Model] {
		return fmt.Errorf("unknown model %q; valid: ring, smallworld, bernoulli", s.Model)
	}
	if s.N < 1 {
		return fmt.Errorf("n must be at least 1, got %d: %w", s.N, rgraph.ErrTooFewVertices)
	}
	if s.Model == ModelRing || s.Model == ModelSmallWorld {
		if s.K < 0 || s.K > s.N-1 {
			return fmt.Errorf("k=%d with n=%d: %w", s.K, s.N, rgraph.ErrInvalidDegree)
		}
	}
	if s.Model == ModelSmallWorld || s.Model == ModelBernoulli {
		if math.IsNaN(s.P) || s.P < 0 || s.P > 1 {
			return fmt.Errorf("p=%v: %w", s.P, rgraph.ErrInvalidProbability)
		}
	}
	return nil
}
