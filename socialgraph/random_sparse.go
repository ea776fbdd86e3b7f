// SPDX-License-Identifier: MIT
// Package: socialgraph
//
// random_sparse.go - directed Erdős–Rényi-like generator for synthetic datasets.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Ordered pairs (i,j), i≠j; self-loops are never sampled.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. A fixed seed yields a fixed graph.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(n + m).

package socialgraph

import (
	"errors"
	"fmt"
	"math/rand"
)

// Generator errors.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("socialgraph: parameter too small")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("socialgraph: probability out of range")

	// ErrNeedRandSource indicates a stochastic draw was requested without an rng.
	ErrNeedRandSource = errors.New("socialgraph: rng is required")
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples a directed graph on n nodes where each ordered pair
// (i,j), i≠j, becomes an edge independently with probability p.
func RandomSparse(n int, p float64, rng *rand.Rand) (*Graph, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	// p ∈ {0,1} is deterministic and needs no rng.
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
	}

	g := newGraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			switch {
			case p == probMax:
				g.addEdge(NodeID(i), NodeID(j))
			case p == probMin:
			case rng.Float64() < p:
				g.addEdge(NodeID(i), NodeID(j))
			}
		}
	}
	return g, nil
}
