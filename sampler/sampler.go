// Package sampler draws uniformly random nodes for the Monte Carlo metrics.
//
// This file centralizes random generation for degree sampling and BFS
// source/target selection.
//
// Goals:
//   - Determinism: New(seed) ⇒ identical draw sequences across runs.
//   - Encapsulation: the generator is an explicit value passed to callers; no ambient state.
//   - Safety: no panics or logging; only sentinel errors.
//
// Concurrency:
//   - A Sampler wraps math/rand.Rand and is NOT goroutine-safe. Draws mutate
//     generator state, so their order defines the results.
package sampler

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/degrees/socialgraph"
)

// ErrEmptyGraph is returned when a draw is requested from a graph with no nodes.
var ErrEmptyGraph = errors.New("sampler: cannot draw from an empty graph")

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// Sampler selects node ids uniformly at random, with replacement.
type Sampler struct {
	rng *rand.Rand
}

// New returns a deterministic Sampler.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
func New(seed int64) *Sampler {
	if seed == 0 {
		seed = defaultSeed
	}
	return FromSource(rand.NewSource(seed))
}

// NewUnseeded returns a Sampler seeded from the wall clock. Results differ
// from run to run.
func NewUnseeded() *Sampler {
	return FromSource(rand.NewSource(time.Now().UnixNano()))
}

// FromSource wraps an arbitrary rand.Source, e.g. a scripted one in tests.
func FromSource(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// Node draws one id uniformly from [0,n).
func (s *Sampler) Node(n int) (socialgraph.NodeID, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: n=%d", ErrEmptyGraph, n)
	}
	return socialgraph.NodeID(s.rng.Intn(n)), nil
}

// Pair draws a source and then a target, independently; they may coincide.
func (s *Sampler) Pair(n int) (src, dst socialgraph.NodeID, err error) {
	if src, err = s.Node(n); err != nil {
		return 0, 0, err
	}
	if dst, err = s.Node(n); err != nil {
		return 0, 0, err
	}
	return src, dst, nil
}

// Rand exposes the underlying generator for callers that need other
// distributions from the same stream (e.g. socialgraph.RandomSparse).
func (s *Sampler) Rand() *rand.Rand {
	return s.rng
}
