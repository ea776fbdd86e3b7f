package metrics

import (
	"fmt"

	"github.com/katalvlaran/degrees/sampler"
	"github.com/katalvlaran/degrees/socialgraph"
)

// SampleDegree draws count nodes uniformly with replacement and returns their
// out-degrees in draw order. Returns sampler.ErrEmptyGraph when count > 0 and
// the graph has no nodes.
func SampleDegree(g *socialgraph.Graph, s *sampler.Sampler, count int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count=%d", ErrInvalidCount, count)
	}
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := s.Node(g.Len())
		if err != nil {
			return nil, err
		}
		out = append(out, g.Degree(v))
	}
	return out, nil
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// DegreeCentrality returns the out-degree of every node in index order.
func DegreeCentrality(g *socialgraph.Graph) []int {
	out := make([]int, g.Len())
	for v := range out {
		out[v] = g.Degree(socialgraph.NodeID(v))
	}
	return out
}

// MaxDegree returns the largest out-degree, or 0 for an empty graph.
func MaxDegree(g *socialgraph.Graph) int {
	best := 0
	for _, d := range DegreeCentrality(g) {
		if d > best {
			best = d
		}
	}
	return best
}
