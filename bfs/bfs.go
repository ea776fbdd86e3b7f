package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/degrees/socialgraph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *socialgraph.Graph
	opts    Options
	ctx     context.Context
	queue   []socialgraph.NodeID
	head    int
	visited []bool
	res     *Tree
}

// ShortestPathTree runs breadth-first search on g from source over directed
// out-edges, applying any number of functional Options.
// Returns ErrGraphNil or ErrSourceOutOfRange for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func ShortestPathTree(g *socialgraph.Graph, source socialgraph.NodeID, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Valid(source) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, g.Len())
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]socialgraph.NodeID, 0, n),
		visited: make([]bool, n),
		res: &Tree{
			Source: source,
			Order:  make([]socialgraph.NodeID, 0, n),
			parent: make([]socialgraph.NodeID, n),
			depth:  make([]int, n),
		},
	}
	for i := range w.res.depth {
		w.res.depth[i] = Unreached
	}

	// Seed queue with source (no parent)
	w.enqueue(source, 0, source)
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(id socialgraph.NodeID, d int, parent socialgraph.NodeID) {
	w.visited[id] = true
	w.res.depth[id] = d
	w.res.parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, early stop, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[w.head]
		w.head++
		if err := w.visit(id); err != nil {
			return err
		}
		if w.opts.hasStop && id == w.opts.StopAt {
			return nil
		}
		w.enqueueNeighbors(id)
	}
	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(id socialgraph.NodeID) error {
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, w.res.depth[id]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen out-neighbor.
func (w *walker) enqueueNeighbors(id socialgraph.NodeID) {
	nextDepth := w.res.depth[id] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(id) {
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, id)
		}
	}
}
