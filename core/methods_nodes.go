// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and adjacency queries.
// Determinism:
//   - Nodes() returns live nodes in ascending NodeID order.
//   - Incident() returns component IDs in ascending (insertion) order.
//   - Neighbors() returns unique far endpoints in ascending order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// nodeNamePrefix is used for generated names of anonymous nodes ("n0", "n1", ...).
const nodeNamePrefix = 'n'

// AddNode appends a node and returns its handle.
//
// An empty name is replaced by "n<id>". Names are unique among live nodes;
// a taken name returns ErrDuplicateNode and leaves the graph unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string, opts ...NodeOption) (NodeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NodeID(len(g.nodes))
	if name == "" {
		buf := make([]byte, 0, 1+20)
		buf = append(buf, nodeNamePrefix)
		buf = strconv.AppendInt(buf, int64(id), 10)
		name = string(buf)
	}
	if _, taken := g.names[name]; taken {
		return NoNode, fmt.Errorf("AddNode(%q): %w", name, ErrDuplicateNode)
	}

	n := Node{ID: id, Name: name}
	for _, opt := range opts {
		opt(&n)
	}
	n.ID = id // options must not rewrite the handle

	g.nodes = append(g.nodes, nodeSlot{node: n, alive: true})
	g.names[n.Name] = id
	g.liveNodes++

	return id, nil
}

// SetGround flags an existing node as ground.
// Complexity: O(1).
func (g *Graph) SetGround(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.nodeSlot(id)
	if err != nil {
		return err
	}
	s.node.Ground = true

	return nil
}

// Lookup returns the handle of the live node with the given name.
func (g *Graph) Lookup(name string) (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.names[name]

	return id, ok
}

// HasNode reports whether id names a live node.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, err := g.nodeSlot(id)

	return err == nil
}

// Node returns a copy of the live node id.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, err := g.nodeSlot(id)
	if err != nil {
		return Node{}, err
	}

	return s.node, nil
}

// Nodes returns copies of all live nodes in ascending ID order.
// Complexity: O(N) over the arena, including dead slots.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, g.liveNodes)
	for i := range g.nodes {
		if g.nodes[i].alive {
			out = append(out, g.nodes[i].node)
		}
	}

	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveNodes
}

// RemoveNode deletes an isolated, non-ground node.
//
// Errors: ErrUnknownNode, ErrGroundNode, ErrNodeInUse (degree > 0).
// Complexity: O(1).
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.nodeSlot(id)
	if err != nil {
		return err
	}
	if s.node.Ground {
		return fmt.Errorf("RemoveNode(%d): %w", id, ErrGroundNode)
	}
	if len(s.incident) > 0 {
		return fmt.Errorf("RemoveNode(%d): degree %d: %w", id, len(s.incident), ErrNodeInUse)
	}
	g.killNode(id)

	return nil
}

// Degree returns the number of components incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, err := g.nodeSlot(id)
	if err != nil {
		return 0, err
	}

	return len(s.incident), nil
}

// Incident returns the IDs of components incident to id, ascending.
// The slice is a copy.
// Complexity: O(deg).
func (g *Graph) Incident(id NodeID) ([]ComponentID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, err := g.nodeSlot(id)
	if err != nil {
		return nil, err
	}
	out := make([]ComponentID, len(s.incident))
	copy(out, s.incident)

	return out, nil
}

// Neighbors returns the distinct far endpoints of components incident to id,
// ascending. Parallel components contribute their neighbor once.
// Complexity: O(deg·log deg).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, err := g.nodeSlot(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[NodeID]struct{}, len(s.incident))
	out := make([]NodeID, 0, len(s.incident))
	for _, cid := range s.incident {
		far := g.comps[cid].comp.Other(id)
		if _, dup := seen[far]; dup {
			continue
		}
		seen[far] = struct{}{}
		out = append(out, far)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// nodeSlot returns the live slot for id. Caller holds mu.
func (g *Graph) nodeSlot(id NodeID) (*nodeSlot, error) {
	if id < 0 || int(id) >= len(g.nodes) || !g.nodes[id].alive {
		return nil, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}

	return &g.nodes[id], nil
}

// killNode marks a node slot dead and releases its name. Caller holds mu and
// has verified the slot is live and isolated.
func (g *Graph) killNode(id NodeID) {
	s := &g.nodes[id]
	s.alive = false
	s.incident = nil
	delete(g.names, s.node.Name)
	g.liveNodes--
}
