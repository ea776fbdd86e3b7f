// Package degrees is an in-memory toolkit for measuring how close people are
// in a directed social graph: degree distribution, clustering coefficient,
// degree centrality, exact diameter, and a Monte Carlo estimate of the average
// degrees of separation.
//
// Under the hood, everything is organized under these subpackages:
//
//	socialgraph/ — immutable index-addressed adjacency store, edge-list parser & writer, random generator
//	bfs/         — shortest-path trees, path reconstruction, eccentricity & diameter
//	sampler/     — seeded uniform node selection
//	metrics/     — degree sampling, clustering, centrality, separation estimate
//	report/      — runs every metric and renders the text summary
//	cmd/degrees  — CLI: analyze an edge list or generate a synthetic one
//
// Quick ASCII example:
//
//	0 ──► 1 ──► 2
//	      ▲     │
//	      └─ 3 ◄┘
//
// is the edge list "4 / 0 1 / 1 2 / 2 3 / 3 1"; its diameter is 3.
//
//	go install github.com/katalvlaran/degrees/cmd/degrees@latest
//	degrees analyze facebook_combined.txt --seed 42
package degrees
