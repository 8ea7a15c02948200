// Package core provides the mutable circuit multigraph that the reducer
// contracts in place.
//
// The Graph G = (N, C) stores nodes and two-terminal components in an arena:
//
//   - Nodes and components are addressed by stable integer handles
//     (NodeID, ComponentID) equal to their arena index.
//   - Removal marks a slot dead; handles are never reused, so a handle held by
//     a step log keeps meaning the same element for the life of the graph.
//   - Each live node keeps its incident component IDs in ascending
//     (insertion) order; degree is the length of that list.
//   - Parallel components (same unordered endpoint pair) are allowed;
//     self-loops are not.
//   - Nodes may be flagged ground. Ground nodes are never contracted.
//
// Contraction primitives:
//
//	ContractSeries(n, kind)         n has degree 2 and is not ground:
//	                                a─c1─n─c2─b  ⇒  a─eq─b, n deleted
//	ReplaceParallelGroup(ids, kind) all ids join the same pair {a,b}:
//	                                a═c1,c2,…═b  ⇒  a─eq─b
//
// The caller supplies the Kind of the synthetic equivalent (normally a
// component.GenericImpedance holding the combined impedance); core only
// maintains topology. Every mutation validates first and either applies
// fully or returns an error with the graph unchanged.
//
// Core Methods:
//
//	AddNode(name, opts...) (NodeID, error)            // O(1)
//	AddComponent(a, b, kind, opts...) (ComponentID, error) // O(1)
//	RemoveComponent(id) error                          // O(deg)
//	RemoveNode(id) error                               // O(1), isolated nodes only
//	Degree(id) / Incident(id) / Neighbors(id)          // O(deg) / O(deg) / O(deg·log deg)
//	Between(a, b) []ComponentID                        // O(deg(a))
//	ContractSeries / ReplaceParallelGroup              // O(deg) / O(k·deg)
//	Nodes() / Components()                             // O(N) / O(C), ascending IDs
//	Clone() *Graph                                     // O(N + C)
//
// Errors:
//
//	ErrUnknownNode       - node handle absent or removed
//	ErrUnknownComponent  - component handle absent or removed
//	ErrSelfLoop          - endpoints equal, or a contraction would create a loop
//	ErrDuplicateNode     - node name already taken
//	ErrGroundNode        - operation would eliminate a ground node
//	ErrNotSeriesNode     - ContractSeries on a node whose degree is not 2
//	ErrNotParallelGroup  - ReplaceParallelGroup on ids not sharing one pair
//	ErrNodeInUse         - RemoveNode on a node that still has components
//	component.ErrInvalidComponent (wrapped) - kind fails validation
//
// Concurrency: all methods take one sync.RWMutex, so concurrent readers are
// safe. A reduction run still needs exclusive ownership of its graph: the
// reducer's read-then-contract sequences are not atomic across calls.
package core
