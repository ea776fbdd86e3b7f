// Package metrics computes descriptive statistics of a socialgraph.Graph:
// sampled degrees, the clustering coefficient, degree centrality, and a
// Monte Carlo estimate of the average shortest-path length.
//
// Every function is independent of the others and only reads the graph, so
// any subset may run against the same Graph in any order. Functions that
// draw random nodes take an explicit *sampler.Sampler; seed it to make the
// results reproducible.
//
// Compatibility notes
//
//   - ClusteringCoefficient enumerates every ordered neighbor pair (n1,n2),
//     n1==n2 included, and divides the sum of local values by the total node
//     count. WithDistinctPairs drops the n1==n2 pairs.
//   - AverageDistance measures a path by its node count (source included) by
//     default. WithEdgeLengths measures it in edges instead.
package metrics
