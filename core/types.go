// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Component and Graph declarations, sentinel errors, options and
//       the NewGraph constructor.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/zreduce/component"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates an operation referenced an absent or removed node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrUnknownComponent indicates an operation referenced an absent or removed component.
	ErrUnknownComponent = errors.New("core: unknown component")

	// ErrSelfLoop indicates a component (existing or synthetic) would join a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateNode indicates AddNode was given a name that is already in use.
	ErrDuplicateNode = errors.New("core: duplicate node name")

	// ErrGroundNode indicates an operation would eliminate a ground node.
	ErrGroundNode = errors.New("core: ground node cannot be eliminated")

	// ErrNotSeriesNode indicates ContractSeries was called on a node whose degree is not 2.
	ErrNotSeriesNode = errors.New("core: node is not a series junction")

	// ErrNotParallelGroup indicates ReplaceParallelGroup was given components
	// that do not all share one endpoint pair, or fewer than two distinct ones.
	ErrNotParallelGroup = errors.New("core: components are not a parallel group")

	// ErrNodeInUse indicates RemoveNode was called on a node that still has components.
	ErrNodeInUse = errors.New("core: node still has components")
)

// NodeID is the stable arena handle of a node.
type NodeID int

// ComponentID is the stable arena handle of a component.
type ComponentID int

// NoNode and NoComponent mark an absent handle.
const (
	NoNode      NodeID      = -1
	NoComponent ComponentID = -1
)

// Node is a circuit node. Values returned by Graph are copies.
type Node struct {
	ID     NodeID
	Name   string
	Ground bool
}

// Component is a two-terminal element joining the unordered pair {A, B}.
// Values returned by Graph are copies.
type Component struct {
	ID   ComponentID
	Name string
	Kind component.Kind
	A, B NodeID

	// Synthetic is true for equivalents created by a contraction.
	Synthetic bool
}

// Other returns the endpoint of c opposite n, or NoNode if n is not an endpoint.
func (c Component) Other(n NodeID) NodeID {
	switch n {
	case c.A:
		return c.B
	case c.B:
		return c.A
	default:
		return NoNode
	}
}

// Pair returns the endpoints of c in ascending order, the key under which
// parallel components coincide.
func (c Component) Pair() [2]NodeID {
	if c.A < c.B {
		return [2]NodeID{c.A, c.B}
	}

	return [2]NodeID{c.B, c.A}
}

// NodeOption configures a node at AddNode time.
type NodeOption func(*Node)

// WithGround flags the new node as ground.
func WithGround() NodeOption {
	return func(n *Node) { n.Ground = true }
}

// ComponentOption configures a component at AddComponent time.
type ComponentOption func(*Component)

// WithName sets the component's display name. An empty name keeps the
// generated default (kind prefix + sequence, e.g. "R3").
func WithName(name string) ComponentOption {
	return func(c *Component) {
		if name != "" {
			c.Name = name
		}
	}
}

// nodeSlot is one arena cell for a node.
type nodeSlot struct {
	node     Node
	alive    bool
	incident []ComponentID // ascending
}

// compSlot is one arena cell for a component.
type compSlot struct {
	comp  Component
	alive bool
}

// Graph is the arena-backed circuit multigraph.
//
// mu guards every field. Slices only grow; dead slots stay in place so that
// handles remain valid indices.
type Graph struct {
	mu sync.RWMutex

	nodes []nodeSlot
	comps []compSlot
	names map[string]NodeID // live node name → handle

	liveNodes int
	liveComps int

	// nextSynthetic numbers reducer equivalents "EQ1", "EQ2", ...
	nextSynthetic uint64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{names: make(map[string]NodeID)}
}
