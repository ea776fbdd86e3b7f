// Package socialgraph holds the immutable, index-addressed adjacency store that every
// analysis in this module runs against.
//
// What
//
//   - A Graph of n nodes identified by NodeID values 0..n-1.
//   - One out-neighbor list per node, kept in edge-arrival order.
//   - Directed edges only: x→y appears in x's list unless y→x is also supplied.
//   - Duplicate edges and self-loops are stored as given (no deduplication).
//
// Construction
//
//   - Build(r)            parse an edge list from any io.Reader.
//   - Load(path)          open a file and Build from it.
//   - FromAdjacency(adj)  validate and copy an in-memory adjacency list.
//   - RandomSparse(n,p,r) sample a directed Erdős–Rényi graph for benchmarks and datasets.
//
// Once returned, a Graph is never mutated. All accessors are read-only, which lets one
// Graph be shared by any number of analyses without locking.
//
// Edge-list format
//
//	4        ← node count n (ids 0..n-1)
//	0 1      ← edge 0→1
//	1 2
//	2 3
//	3 1
//
// Extra spaces or tabs between and around tokens are tolerated. A blank line, a line with
// other than two tokens, a non-integer or negative token, or an id outside [0,n) is
// rejected with ErrFormat. Read failures are reported as ErrIO.
//
// Complexity (n = nodes, m = edges)
//
//   - Build:   O(n + m) time and memory.
//   - Degree:  O(1).
//   - HasEdge: O(deg(x)).
package socialgraph
