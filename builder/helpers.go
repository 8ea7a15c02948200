// Package builder provides internal helper functions
// used by Constructor implementations to emit nodes and components.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method name and ErrConstructFailed.
//   - Determinism: internal names are derived from the arena index.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zreduce/component"
	"github.com/katalvlaran/zreduce/core"
)

// addInternal adds a fresh internal node named cfg.idFn(k), where k starts at
// the current node count and advances past names already taken.
//
// Complexity: O(1) amortized for schemes that do not collide with terminals.
func addInternal(method string, g *core.Graph, cfg builderConfig) (core.NodeID, error) {
	for k := g.NodeCount(); ; k++ {
		id, err := g.AddNode(cfg.idFn(k))
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, core.ErrDuplicateNode) {
			return core.NoNode, fmt.Errorf("%s: %w: %w", method, err, ErrConstructFailed)
		}
	}
}

// addElement joins a and b with one component drawn from cfg.valueFn.
func addElement(method string, g *core.Graph, cfg builderConfig, a, b core.NodeID) error {
	return addKind(method, g, a, b, cfg.valueFn(cfg.rng))
}

// addKind joins a and b with one component of the given kind.
func addKind(method string, g *core.Graph, a, b core.NodeID, kind component.Kind) error {
	if _, err := g.AddComponent(a, b, kind); err != nil {
		return fmt.Errorf("%s: AddComponent(%d,%d,%v): %w: %w", method, a, b, kind, err, ErrConstructFailed)
	}

	return nil
}

// validateMin ensures that got ≥ min, returning ErrTooFewComponents otherwise.
func validateMin(method, what string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, what, got, min, ErrTooFewComponents)
	}

	return nil
}
