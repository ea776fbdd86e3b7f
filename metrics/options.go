package metrics

import (
	"context"
	"errors"
)

// ErrInvalidCount is returned when a sample or trial count is negative.
var ErrInvalidCount = errors.New("metrics: count must be non-negative")

// Option configures metric computation via functional arguments.
type Option func(*Options)

// Options holds the knobs shared by the metric functions. Each function reads
// only the fields that apply to it.
type Options struct {
	// Ctx allows cancellation of AverageDistance between trials.
	Ctx context.Context

	// EdgeLengths makes AverageDistance count edges instead of path nodes.
	EdgeLengths bool

	// DistinctPairs makes ClusteringCoefficient skip pairs with n1 == n2.
	DistinctPairs bool
}

// DefaultOptions returns background context and the reference counting rules.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEdgeLengths records path lengths as edge counts (node count − 1).
func WithEdgeLengths() Option {
	return func(o *Options) { o.EdgeLengths = true }
}

// WithDistinctPairs excludes self-pairs from the clustering enumeration.
func WithDistinctPairs() Option {
	return func(o *Options) { o.DistinctPairs = true }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
