package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/degrees/socialgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source id is not a node of the graph.
	ErrSourceOutOfRange = errors.New("bfs: source node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Tree.PathTo when the target was not reached.
	ErrNoPath = errors.New("bfs: no path to target")
)

// Unreached is the distance reported for nodes the traversal never discovered.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id socialgraph.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// StopAt, when hasStop is set, ends the search as soon as this node is dequeued.
	StopAt  socialgraph.NodeID
	hasStop bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// no early stop, and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(socialgraph.NodeID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id socialgraph.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithStopAt ends the traversal once target is dequeued. The parent chain of
// target is final at that point, so PathTo(target) is still exact; other nodes
// may be left undiscovered.
func WithStopAt(target socialgraph.NodeID) Option {
	return func(o *Options) {
		o.StopAt = target
		o.hasStop = true
	}
}

// Tree is the shortest-path tree produced by one BFS run.
//
//   - Order: nodes in dequeue order, Source first.
//   - parent[v]: predecessor through which v was first discovered (none for Source and unreached nodes).
//   - depth[v]: edges from Source, or Unreached.
type Tree struct {
	Source socialgraph.NodeID
	Order  []socialgraph.NodeID
	parent []socialgraph.NodeID
	depth  []int
}

// Reached reports whether v was discovered.
func (t *Tree) Reached(v socialgraph.NodeID) bool {
	return v >= 0 && int(v) < len(t.depth) && t.depth[v] != Unreached
}

// Distance returns the edge count from Source to v, and false if v was not reached.
func (t *Tree) Distance(v socialgraph.NodeID) (int, bool) {
	if !t.Reached(v) {
		return Unreached, false
	}
	return t.depth[v], true
}

// Parent returns v's predecessor in the tree. It returns false for Source
// and for unreached nodes.
func (t *Tree) Parent(v socialgraph.NodeID) (socialgraph.NodeID, bool) {
	if !t.Reached(v) || t.depth[v] == 0 {
		return 0, false
	}
	return t.parent[v], true
}

// Distances returns a copy of the per-node distances, Unreached where undiscovered.
func (t *Tree) Distances() []int {
	return append([]int(nil), t.depth...)
}

// MaxDistance returns the largest finite distance in the tree (the eccentricity of Source).
func (t *Tree) MaxDistance() int {
	ecc := 0
	for _, d := range t.depth {
		if d > ecc {
			ecc = d
		}
	}
	return ecc
}

// PathTo reconstructs the path from Source to dest.
// Returns ErrNoPath if dest was not reached.
func (t *Tree) PathTo(dest socialgraph.NodeID) ([]socialgraph.NodeID, error) {
	path, ok := ReconstructPath(t, t.Source, dest)
	if !ok {
		return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, dest, t.Source)
	}
	return path, nil
}

// ReconstructPath walks parent pointers from target back to the depth-0 node
// and returns the path in source→target order. It returns (nil, false) when
// target was not reached or when the walk does not end at source, so callers
// never see a partial path.
func ReconstructPath(t *Tree, source, target socialgraph.NodeID) ([]socialgraph.NodeID, bool) {
	if t == nil || !t.Reached(target) {
		return nil, false
	}
	// build reversed path; depth strictly decreases so the walk terminates
	path := make([]socialgraph.NodeID, 0, t.depth[target]+1)
	cur := target
	for t.depth[cur] > 0 {
		path = append(path, cur)
		cur = t.parent[cur]
	}
	path = append(path, cur)
	if cur != source {
		return nil, false
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
