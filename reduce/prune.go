// SPDX-License-Identifier: MIT
//
// File: prune.go
// Role: Optional removal of components that cannot carry current between
//       the terminals.
// Order:
//   1. Islands: components whose endpoints bfs does not reach from the
//      source, ascending ComponentID.
//   2. Dead ends: degree-1 nodes that are neither terminals nor ground,
//      ascending NodeID, cascading into the far endpoint.

package reduce

import (
	"fmt"

	"github.com/katalvlaran/zreduce/bfs"
	"github.com/katalvlaran/zreduce/core"
	"github.com/katalvlaran/zreduce/impedance"
)

// prune runs both prune phases and returns the number of steps recorded.
func (r *reducer) prune() (int, error) {
	n, err := r.pruneIslands()
	if err != nil {
		return n, err
	}
	m, err := r.pruneDeadEnds()

	return n + m, err
}

// pruneIslands removes every component not reachable from the source.
func (r *reducer) pruneIslands() (int, error) {
	seen, err := bfs.BFS(r.g, r.q.Source)
	if err != nil {
		return 0, fmt.Errorf("Reduce: prune: %w", err)
	}

	applied := 0
	for _, c := range r.g.Components() {
		if seen.Reached(c.A) {
			continue
		}
		if err = r.drop(c, core.NoNode); err != nil {
			return applied, err
		}
		applied++
	}

	return applied, nil
}

// pruneDeadEnds removes dead-end components together with their free node.
func (r *reducer) pruneDeadEnds() (int, error) {
	var queue []core.NodeID
	for _, n := range r.g.Nodes() {
		queue = append(queue, n.ID)
	}

	applied := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if !r.dangling(id) {
			continue
		}
		inc, err := r.g.Incident(id)
		if err != nil {
			return applied, fmt.Errorf("Reduce: prune: %w", err)
		}
		c, err := r.g.Component(inc[0])
		if err != nil {
			return applied, fmt.Errorf("Reduce: prune: %w", err)
		}
		if err = r.drop(c, id); err != nil {
			return applied, err
		}
		if err = r.g.RemoveNode(id); err != nil {
			return applied, fmt.Errorf("Reduce: prune node %d: %w", id, err)
		}
		applied++
		queue = append(queue, c.Other(id))
	}

	return applied, nil
}

// dangling reports whether id is a live degree-1 node the reducer may remove.
func (r *reducer) dangling(id core.NodeID) bool {
	if id == r.q.Source || id == r.q.Target {
		return false
	}
	n, err := r.g.Node(id)
	if err != nil || n.Ground {
		return false
	}
	d, err := r.g.Degree(id)

	return err == nil && d == 1
}

// drop removes c and records an OpPrune step.
func (r *reducer) drop(c core.Component, eliminated core.NodeID) error {
	if err := r.g.RemoveComponent(c.ID); err != nil {
		return fmt.Errorf("Reduce: prune %s: %w", c.Name, err)
	}
	delete(r.z, c.ID)
	r.record(Step{
		Op:         OpPrune,
		Consumed:   []core.ComponentID{c.ID},
		Result:     core.NoComponent,
		Impedance:  impedance.Impedance{},
		Eliminated: eliminated,
		Ends:       c.Pair(),
	})

	return nil
}
