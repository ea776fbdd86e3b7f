// Package bfs provides breadth-first search over a socialgraph.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a source node,
//     following directed out-edges only.
//   - Returns a Tree containing:
//   - Order: visit sequence
//   - Distance(v): edges from the source, or Unreached
//   - Parent(v): predecessor through which v was first discovered
//   - ReconstructPath / Tree.PathTo turn a Tree into a source→target path.
//   - Diameter runs one BFS per node and keeps the largest eccentricity.
//
// Why
//
//   - Compute unweighted shortest paths ("degrees of separation") in O(n + m).
//   - Foundation for distance sampling and the diameter scan.
//
// Determinism
//
//	Neighbors are enqueued in adjacency (edge-arrival) order, so the visit
//	sequence and the path chosen among several shortest ones are reproducible:
//	the first-discovered parent wins.
//
// Complexity (n = nodes, m = edges)
//
//   - ShortestPathTree: O(n + m) time, O(n) memory.
//   - Diameter:         O(n·(n+m)) time. Exact, not sampled; budget for it on large graphs.
//
// Usage
//
//	t, err := bfs.ShortestPathTree(g, 0)
//	if err != nil {
//		// ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation, ctx errors, or hook errors
//	}
//	path, ok := bfs.ReconstructPath(t, 0, 3)
//
//	t, err = bfs.ShortestPathTree(
//		g, 0,
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(3),
//		bfs.WithStopAt(42),
//		bfs.WithOnVisit(func(id socialgraph.NodeID, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrSourceOutOfRange  if the source is not in [0,n).
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath            from Tree.PathTo when the target was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
