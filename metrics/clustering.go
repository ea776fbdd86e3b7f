package metrics

import "github.com/katalvlaran/degrees/socialgraph"

// ClusteringCoefficient returns the network clustering coefficient.
//
// For each node with k ≥ 2 out-neighbors, every ordered pair (n1,n2) of its
// neighbor list is tested for the edge n1→n2; the hit count divided by
// k·(k−1) is the local coefficient. Nodes with k < 2 are skipped, but the sum
// of local coefficients is divided by the total node count. Returns 0 for an
// empty graph.
//
// Complexity: O(Σ k² · k̄) where k̄ is the mean neighbor degree.
func ClusteringCoefficient(g *socialgraph.Graph, opts ...Option) float64 {
	n := g.Len()
	if n == 0 {
		return 0
	}
	o := resolve(opts)

	total := 0.0
	for v := 0; v < n; v++ {
		nbrs := g.Neighbors(socialgraph.NodeID(v))
		k := len(nbrs)
		if k < 2 {
			continue
		}
		links := 0
		for _, n1 := range nbrs {
			for _, n2 := range nbrs {
				if o.DistinctPairs && n1 == n2 {
					continue
				}
				if g.HasEdge(n1, n2) {
					links++
				}
			}
		}
		total += float64(links) / float64(k*(k-1))
	}
	return total / float64(n)
}
