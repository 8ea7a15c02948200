// SPDX-License-Identifier: MIT
//
// File: methods_components.go
// Role: Component lifecycle and queries: AddComponent, RemoveComponent,
//       Component, Components, ComponentCount, Between.
// Determinism:
//   - Components() and Between() return ascending ComponentID order, which is
//     insertion order because handles are allocated monotonically.

package core

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/zreduce/component"
)

// syntheticPrefix names reducer equivalents ("EQ1", "EQ2", ...).
const syntheticPrefix = "EQ"

// AddComponent joins a and b with a new component of the given kind.
//
// Steps:
//  1. Validate endpoints exist (ErrUnknownNode) and differ (ErrSelfLoop).
//  2. Validate kind (component.ErrInvalidComponent, wrapped).
//  3. Allocate the next handle, apply options, link both incidence lists.
//
// No state changes unless all checks pass.
// Complexity: O(1) amortized.
func (g *Graph) AddComponent(a, b NodeID, kind component.Kind, opts ...ComponentOption) (ComponentID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpoints(a, b); err != nil {
		return NoComponent, fmt.Errorf("AddComponent(%d,%d): %w", a, b, err)
	}
	if err := component.Validate(kind); err != nil {
		return NoComponent, fmt.Errorf("AddComponent(%d,%d): %w", a, b, err)
	}

	id := g.linkComponent(a, b, kind, false)
	c := &g.comps[id].comp
	for _, opt := range opts {
		opt(c)
	}
	c.ID = id

	return id, nil
}

// RemoveComponent deletes a component and unlinks it from both endpoints.
// Complexity: O(deg(A) + deg(B)).
func (g *Graph) RemoveComponent(id ComponentID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.compSlot(id); err != nil {
		return err
	}
	g.unlinkComponent(id)

	return nil
}

// HasComponent reports whether id names a live component.
func (g *Graph) HasComponent(id ComponentID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, err := g.compSlot(id)

	return err == nil
}

// Component returns a copy of the live component id.
func (g *Graph) Component(id ComponentID) (Component, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, err := g.compSlot(id)
	if err != nil {
		return Component{}, err
	}

	return s.comp, nil
}

// Components returns copies of all live components in ascending ID order.
func (g *Graph) Components() []Component {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Component, 0, g.liveComps)
	for i := range g.comps {
		if g.comps[i].alive {
			out = append(out, g.comps[i].comp)
		}
	}

	return out
}

// ComponentCount returns the number of live components.
func (g *Graph) ComponentCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveComps
}

// Between returns the live components joining the unordered pair {a, b},
// ascending. Unknown nodes or a == b yield nil.
// Complexity: O(deg(a)).
func (g *Graph) Between(a, b NodeID) []ComponentID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if a == b {
		return nil
	}
	sa, err := g.nodeSlot(a)
	if err != nil {
		return nil
	}
	var out []ComponentID
	for _, cid := range sa.incident {
		if g.comps[cid].comp.Other(a) == b {
			out = append(out, cid)
		}
	}

	return out
}

// compSlot returns the live slot for id. Caller holds mu.
func (g *Graph) compSlot(id ComponentID) (*compSlot, error) {
	if id < 0 || int(id) >= len(g.comps) || !g.comps[id].alive {
		return nil, fmt.Errorf("component %d: %w", id, ErrUnknownComponent)
	}

	return &g.comps[id], nil
}

// checkEndpoints validates a prospective component's endpoints. Caller holds mu.
func (g *Graph) checkEndpoints(a, b NodeID) error {
	if _, err := g.nodeSlot(a); err != nil {
		return err
	}
	if _, err := g.nodeSlot(b); err != nil {
		return err
	}
	if a == b {
		return ErrSelfLoop
	}

	return nil
}

// linkComponent allocates a component slot and appends it to both incidence
// lists. Caller holds mu and has validated endpoints and kind.
func (g *Graph) linkComponent(a, b NodeID, kind component.Kind, synthetic bool) ComponentID {
	id := ComponentID(len(g.comps))

	var name string
	if synthetic {
		g.nextSynthetic++
		name = syntheticPrefix + strconv.FormatUint(g.nextSynthetic, 10)
	} else {
		name = kind.Prefix() + strconv.Itoa(int(id)+1)
	}

	g.comps = append(g.comps, compSlot{
		comp:  Component{ID: id, Name: name, Kind: kind, A: a, B: b, Synthetic: synthetic},
		alive: true,
	})
	g.nodes[a].incident = append(g.nodes[a].incident, id)
	g.nodes[b].incident = append(g.nodes[b].incident, id)
	g.liveComps++

	return id
}

// unlinkComponent marks a component dead and removes it from both incidence
// lists, preserving their order. Caller holds mu and has verified liveness.
func (g *Graph) unlinkComponent(id ComponentID) {
	s := &g.comps[id]
	s.alive = false
	g.nodes[s.comp.A].incident = removeID(g.nodes[s.comp.A].incident, id)
	g.nodes[s.comp.B].incident = removeID(g.nodes[s.comp.B].incident, id)
	g.liveComps--
}

// removeID deletes the first occurrence of id from an ascending list in place.
func removeID(list []ComponentID, id ComponentID) []ComponentID {
	for i, v := range list {
		if v == id {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
