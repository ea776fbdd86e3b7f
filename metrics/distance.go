package metrics

import (
	"fmt"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/sampler"
	"github.com/katalvlaran/degrees/socialgraph"
)

// DistanceEstimate is the outcome of AverageDistance.
type DistanceEstimate struct {
	// Mean is the average recorded path length, 0 when Samples is 0.
	Mean float64
	// Samples is the number of trials that found a path.
	Samples int
	// Trials is the number of source/target pairs drawn.
	Trials int
}

// AverageDistance estimates the mean shortest-path length by Monte Carlo.
//
// Each trial draws a source and then a target (they may coincide), runs BFS
// from the source until the target is dequeued, and records the length of the
// reconstructed path. Trials without a path are dropped, not retried. The
// mean is taken over the recorded samples.
//
// By default a path's length is its node count, source included; pass
// WithEdgeLengths for edge counts. Honors WithContext between trials.
func AverageDistance(g *socialgraph.Graph, s *sampler.Sampler, trials int, opts ...Option) (DistanceEstimate, error) {
	est := DistanceEstimate{Trials: trials}
	if trials < 0 {
		return est, fmt.Errorf("%w: trials=%d", ErrInvalidCount, trials)
	}
	o := resolve(opts)

	sum := 0
	for i := 0; i < trials; i++ {
		if err := o.Ctx.Err(); err != nil {
			return est, err
		}
		src, dst, err := s.Pair(g.Len())
		if err != nil {
			return est, err
		}
		tree, err := bfs.ShortestPathTree(g, src, bfs.WithContext(o.Ctx), bfs.WithStopAt(dst))
		if err != nil {
			return est, fmt.Errorf("metrics: trial %d: %w", i, err)
		}
		path, ok := bfs.ReconstructPath(tree, src, dst)
		if !ok {
			continue
		}
		length := len(path)
		if o.EdgeLengths {
			length--
		}
		sum += length
		est.Samples++
	}
	if est.Samples > 0 {
		est.Mean = float64(sum) / float64(est.Samples)
	}
	return est, nil
}
