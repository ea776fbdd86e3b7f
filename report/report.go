// Package report runs the full set of graph statistics in sequence and renders
// them as the labeled, line-per-statistic text summary printed by the CLI.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/metrics"
	"github.com/katalvlaran/degrees/sampler"
	"github.com/katalvlaran/degrees/socialgraph"
)

// ErrGraphNil is returned when Analyze is given a nil graph.
var ErrGraphNil = errors.New("report: graph is nil")

// Options tunes one analysis run.
type Options struct {
	// DegreeSamples is the number of random nodes whose degree is sampled.
	DegreeSamples int
	// DistanceTrials is the number of source/target pairs drawn for AverageDistance.
	DistanceTrials int
	// EdgeLengths reports separation in edges instead of path nodes.
	EdgeLengths bool
	// SkipDiameter omits the O(n·(n+m)) diameter scan.
	SkipDiameter bool
	// Logger receives progress records; nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the sample sizes of the reference analysis:
// 500 degree samples and 3000 distance trials.
func DefaultOptions() Options {
	return Options{
		DegreeSamples:  500,
		DistanceTrials: 3000,
	}
}

// Report holds the outcome of Analyze.
type Report struct {
	Nodes           int
	Edges           int
	DegreeSamples   []int
	AverageDegree   float64
	Separation      metrics.DistanceEstimate
	EdgeLengths     bool
	Clustering      float64
	MaxDegree       int
	Diameter        int
	DiameterSkipped bool
}

// Analyze computes every statistic against g, drawing random nodes from s.
// Metrics run one after another; the first failure aborts the run.
func Analyze(ctx context.Context, g *socialgraph.Graph, s *sampler.Sampler, opts Options) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("nodes", g.Len(), "edges", g.EdgeCount())

	r := &Report{Nodes: g.Len(), Edges: g.EdgeCount(), EdgeLengths: opts.EdgeLengths}

	err := step(log, "degree_sample", func() error {
		var err error
		r.DegreeSamples, err = metrics.SampleDegree(g, s, opts.DegreeSamples)
		r.AverageDegree = metrics.Mean(r.DegreeSamples)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = step(log, "separation", func() error {
		mopts := []metrics.Option{metrics.WithContext(ctx)}
		if opts.EdgeLengths {
			mopts = append(mopts, metrics.WithEdgeLengths())
		}
		var err error
		r.Separation, err = metrics.AverageDistance(g, s, opts.DistanceTrials, mopts...)
		if err == nil && r.Separation.Samples < r.Separation.Trials {
			log.Debug("unreachable pairs dropped",
				"trials", r.Separation.Trials, "samples", r.Separation.Samples)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	err = step(log, "clustering", func() error {
		r.Clustering = metrics.ClusteringCoefficient(g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = step(log, "centrality", func() error {
		r.MaxDegree = metrics.MaxDegree(g)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.SkipDiameter {
		r.DiameterSkipped = true
		log.Info("diameter skipped")
		return r, nil
	}
	err = step(log, "diameter", func() error {
		visits := 0
		var err error
		r.Diameter, err = bfs.Diameter(g, bfs.WithContext(ctx),
			bfs.WithOnVisit(func(socialgraph.NodeID, int) error {
				visits++
				return nil
			}))
		log.Debug("diameter scan", "visits", visits)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// step runs fn and logs its duration under the given metric name.
func step(log *slog.Logger, name string, fn func() error) error {
	start := time.Now()
	log.Debug("metric started", "metric", name)
	if err := fn(); err != nil {
		log.Error("metric failed", "metric", name, "error", err)
		return fmt.Errorf("report: %s: %w", name, err)
	}
	log.Info("metric done", "metric", name, "duration", time.Since(start))
	return nil
}

// WriteText renders r one labeled statistic per line.
func (r *Report) WriteText(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("Random %d nodes and the degree value they each have", len(r.DegreeSamples)),
		fmt.Sprint(r.DegreeSamples),
		fmt.Sprintf("Average degree of all the nodes (average amount of connections a user has): %v", r.AverageDegree),
	}
	if r.Separation.Samples > 0 {
		unit := "nodes per path"
		if r.EdgeLengths {
			unit = "edges per path"
		}
		lines = append(lines, fmt.Sprintf(
			"Average degrees of separation (distance between two users): %v (%d of %d pairs connected, %s)",
			r.Separation.Mean, r.Separation.Samples, r.Separation.Trials, unit))
	} else {
		lines = append(lines, fmt.Sprintf(
			"Average degrees of separation (distance between two users): no connected pair in %d trials",
			r.Separation.Trials))
	}
	lines = append(lines,
		fmt.Sprintf("The clustering coefficient of the network is %.4f.", r.Clustering),
		fmt.Sprintf("The most connected user has %d connections.", r.MaxDegree),
	)
	if r.DiameterSkipped {
		lines = append(lines, "The diameter of the graph was not computed.")
	} else {
		lines = append(lines, fmt.Sprintf("The diameter of the graph is %d steps.", r.Diameter))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
