// SPDX-License-Identifier: MIT
//
// File: methods_contract.go
// Role: Atomic contraction primitives used by the reducer.
// Policy:
//   - Validate everything first, then mutate; a rejected call leaves the
//     graph exactly as it was.
//   - The synthetic equivalent is always appended last, so its handle is
//     larger than every handle it consumed.

package core

import (
	"fmt"

	"github.com/katalvlaran/zreduce/component"
)

// SeriesContraction describes one applied ContractSeries.
type SeriesContraction struct {
	// Node is the eliminated junction.
	Node NodeID

	// Consumed holds the two replaced components in ascending ID order.
	Consumed [2]ComponentID

	// Result is the synthetic equivalent.
	Result ComponentID

	// Ends are the far endpoints joined by Result, in Consumed order.
	Ends [2]NodeID
}

// ParallelReplacement describes one applied ReplaceParallelGroup.
type ParallelReplacement struct {
	// Consumed holds the replaced components in the order given by the caller.
	Consumed []ComponentID

	// Result is the synthetic equivalent.
	Result ComponentID

	// Ends are the shared endpoints, ascending.
	Ends [2]NodeID
}

// ContractSeries replaces the two components meeting at node with one
// synthetic component of the given kind joining their far endpoints, and
// deletes node.
//
//	a ─c1─ node ─c2─ b   ⇒   a ─eq─ b
//
// Errors:
//   - ErrUnknownNode: node absent or removed.
//   - ErrGroundNode: node is ground.
//   - ErrNotSeriesNode: degree(node) != 2.
//   - ErrSelfLoop: both components lead to the same far node (they are a
//     parallel pair; merge them first).
//   - component.ErrInvalidComponent: kind fails validation.
//
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) ContractSeries(node NodeID, kind component.Kind) (SeriesContraction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.nodeSlot(node)
	if err != nil {
		return SeriesContraction{}, fmt.Errorf("ContractSeries: %w", err)
	}
	if s.node.Ground {
		return SeriesContraction{}, fmt.Errorf("ContractSeries(%d): %w", node, ErrGroundNode)
	}
	if len(s.incident) != 2 {
		return SeriesContraction{}, fmt.Errorf("ContractSeries(%d): degree %d: %w", node, len(s.incident), ErrNotSeriesNode)
	}

	c1, c2 := s.incident[0], s.incident[1]
	a := g.comps[c1].comp.Other(node)
	b := g.comps[c2].comp.Other(node)
	if a == b {
		return SeriesContraction{}, fmt.Errorf("ContractSeries(%d): both ends at node %d: %w", node, a, ErrSelfLoop)
	}
	if err = component.Validate(kind); err != nil {
		return SeriesContraction{}, fmt.Errorf("ContractSeries(%d): %w", node, err)
	}

	g.unlinkComponent(c1)
	g.unlinkComponent(c2)
	g.killNode(node)
	eq := g.linkComponent(a, b, kind, true)

	return SeriesContraction{Node: node, Consumed: [2]ComponentID{c1, c2}, Result: eq, Ends: [2]NodeID{a, b}}, nil
}

// ReplaceParallelGroup replaces two or more components sharing one unordered
// endpoint pair with one synthetic component of the given kind.
//
// Errors:
//   - ErrNotParallelGroup: fewer than two ids, a repeated id, or differing pairs.
//   - ErrUnknownComponent: an id is absent or removed.
//   - component.ErrInvalidComponent: kind fails validation.
//
// Complexity: O(k·deg) for k = len(ids).
func (g *Graph) ReplaceParallelGroup(ids []ComponentID, kind component.Kind) (ParallelReplacement, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(ids) < 2 {
		return ParallelReplacement{}, fmt.Errorf("ReplaceParallelGroup: %d component(s): %w", len(ids), ErrNotParallelGroup)
	}

	seen := make(map[ComponentID]struct{}, len(ids))
	var pair [2]NodeID
	for i, id := range ids {
		cs, err := g.compSlot(id)
		if err != nil {
			return ParallelReplacement{}, fmt.Errorf("ReplaceParallelGroup: %w", err)
		}
		if _, dup := seen[id]; dup {
			return ParallelReplacement{}, fmt.Errorf("ReplaceParallelGroup: component %d repeated: %w", id, ErrNotParallelGroup)
		}
		seen[id] = struct{}{}

		p := cs.comp.Pair()
		if i == 0 {
			pair = p
			continue
		}
		if p != pair {
			return ParallelReplacement{}, fmt.Errorf("ReplaceParallelGroup: component %d joins %v, want %v: %w",
				id, p, pair, ErrNotParallelGroup)
		}
	}
	if err := component.Validate(kind); err != nil {
		return ParallelReplacement{}, fmt.Errorf("ReplaceParallelGroup: %w", err)
	}

	for _, id := range ids {
		g.unlinkComponent(id)
	}
	eq := g.linkComponent(pair[0], pair[1], kind, true)

	consumed := make([]ComponentID, len(ids))
	copy(consumed, ids)

	return ParallelReplacement{Consumed: consumed, Result: eq, Ends: pair}, nil
}
