// File: methods_clone.go
// Role: Deep copy and summary statistics.
// Determinism:
//   - Clone carries the synthetic counter, so equivalents created on the
//     clone continue the same "EQ<n>" sequence and handles stay aligned.
// Concurrency:
//   - Read lock on the source graph only.

package core

// Clone returns a deep copy of g: arena slots (live and dead), incidence
// lists, the name index and counters. Handles valid in g are valid in the
// clone and denote the same elements.
//
// Component kinds are values and are shared by copy.
// Complexity: O(N + C).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		nodes:         make([]nodeSlot, len(g.nodes)),
		comps:         make([]compSlot, len(g.comps)),
		names:         make(map[string]NodeID, len(g.names)),
		liveNodes:     g.liveNodes,
		liveComps:     g.liveComps,
		nextSynthetic: g.nextSynthetic,
	}
	for i, s := range g.nodes {
		clone.nodes[i] = nodeSlot{node: s.node, alive: s.alive}
		if len(s.incident) > 0 {
			clone.nodes[i].incident = append([]ComponentID(nil), s.incident...)
		}
	}
	copy(clone.comps, g.comps)
	for name, id := range g.names {
		clone.names[name] = id
	}

	return clone
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Nodes      int // live nodes
	Ground     int // live ground nodes
	Components int // live components
	Synthetic  int // live components created by contractions
}

// Stats returns counts of live elements.
// Complexity: O(N + C).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{Nodes: g.liveNodes, Components: g.liveComps}
	for i := range g.nodes {
		if g.nodes[i].alive && g.nodes[i].node.Ground {
			st.Ground++
		}
	}
	for i := range g.comps {
		if g.comps[i].alive && g.comps[i].comp.Synthetic {
			st.Synthetic++
		}
	}

	return st
}
