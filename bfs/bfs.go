// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and component filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/zreduce/core"
)

// ErrNeighbors is returned when fetching incident components from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*BFSResult, error) {
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

	// Validate start node
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
		res: &BFSResult{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
			Via:    make(map[core.NodeID]core.ComponentID, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, core.NoNode, core.NoComponent)
	// Main loop
	return w.res, w.loop()
}

// Reachable reports whether to can be reached from from, honoring opts
// (typically WithoutComponents).
func Reachable(g *core.Graph, from, to core.NodeID, opts ...Option) (bool, error) {
	stop := errors.New("found")
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithOnVisit(func(id core.NodeID, _ int) error {
		if id == to {
			return stop
		}
		return nil
	}))
	_, err := BFS(g, from, all...)
	switch {
	case errors.Is(err, stop):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

// enqueue marks id visited at depth d, records its parent and the
// component used, calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID, via core.ComponentID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != core.NoNode {
		w.res.Parent[id] = parent
		w.res.Via[id] = via
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at node %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors walks the incident components of item in ascending ID
// order, applies filtering and MaxDepth, and enqueues each unseen far end.
// Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	incident, err := w.graph.Incident(item.id)
	if err != nil {
		return fmt.Errorf("%w: incident components of node %d: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, cid := range incident {
		c, err := w.graph.Component(cid)
		if err != nil {
			return fmt.Errorf("%w: component %d: %v", ErrNeighbors, cid, err)
		}
		if !w.opts.FilterComponent(item.id, c) {
			continue
		}

		// first time seen?
		nbr := c.Other(item.id)
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id, cid)
		}
	}
	return nil
}
