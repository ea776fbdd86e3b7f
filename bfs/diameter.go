package bfs

import (
	"fmt"

	"github.com/katalvlaran/degrees/socialgraph"
)

// Eccentricity returns the largest finite distance from source to any node it reaches.
func Eccentricity(g *socialgraph.Graph, source socialgraph.NodeID, opts ...Option) (int, error) {
	t, err := ShortestPathTree(g, source, opts...)
	if err != nil {
		return 0, err
	}
	return t.MaxDistance(), nil
}

// Diameter returns the largest finite shortest-path distance between any
// ordered pair of nodes, i.e. the maximum eccentricity over all sources.
//
// It is exact and runs one full BFS per node: O(n·(n+m)) time, O(n) memory
// per run. This is the most expensive analysis in the module. WithContext and
// WithOnVisit are forwarded to every run; depth limits and stop targets would
// change the distances and are ignored.
// Returns 0 for graphs with fewer than two nodes and no edges.
func Diameter(g *socialgraph.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	diameter := 0
	for v := 0; v < g.Len(); v++ {
		ecc, err := Eccentricity(g, socialgraph.NodeID(v), WithContext(o.Ctx), WithOnVisit(o.OnVisit))
		if err != nil {
			return 0, fmt.Errorf("bfs: diameter from %d: %w", v, err)
		}
		if ecc > diameter {
			diameter = ecc
		}
	}
	return diameter, nil
}
