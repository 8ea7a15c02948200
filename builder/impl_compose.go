// SPDX-License-Identifier: MIT
// Package: zreduce/builder
//
// impl_compose.go - single elements and series/parallel composition.
//
// Contract:
//   - Element validates nothing itself; core.Graph rejects invalid kinds.
//   - SeriesOf creates len(parts)-1 internal nodes, then runs each part on
//     consecutive node pairs a→x1→…→b in argument order.
//   - ParallelOf runs every part between a and b in argument order.
//
// Determinism:
//   - Node and component emission follows argument order exactly.

package builder

import (
	"fmt"

	"github.com/katalvlaran/zreduce/component"
	"github.com/katalvlaran/zreduce/core"
)

// Element returns a Constructor that joins a and b with one component of kind.
func Element(kind component.Kind) Constructor {
	return func(g *core.Graph, _ builderConfig, a, b core.NodeID) error {
		return addKind(MethodElement, g, a, b, kind)
	}
}

// Leaf returns a Constructor that joins a and b with one component drawn
// from the configured ValueFn.
func Leaf() Constructor {
	return func(g *core.Graph, cfg builderConfig, a, b core.NodeID) error {
		return addElement(MethodElement, g, cfg, a, b)
	}
}

// SeriesOf returns a Constructor that places parts end to end between a and b.
func SeriesOf(parts ...Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig, a, b core.NodeID) error {
		if err := validateMin(MethodSeriesOf, "parts", len(parts), MinComposeParts); err != nil {
			return err
		}

		prev := a
		for i, part := range parts {
			if part == nil {
				return fmt.Errorf("%s: nil part at index %d: %w", MethodSeriesOf, i, ErrConstructFailed)
			}
			next := b
			if i < len(parts)-1 {
				var err error
				if next, err = addInternal(MethodSeriesOf, g, cfg); err != nil {
					return err
				}
			}
			if err := part(g, cfg, prev, next); err != nil {
				return fmt.Errorf("%s: part %d: %w", MethodSeriesOf, i, err)
			}
			prev = next
		}

		return nil
	}
}

// ParallelOf returns a Constructor that places every part between a and b.
func ParallelOf(parts ...Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig, a, b core.NodeID) error {
		if err := validateMin(MethodParallelOf, "parts", len(parts), MinComposeParts); err != nil {
			return err
		}
		for i, part := range parts {
			if part == nil {
				return fmt.Errorf("%s: nil part at index %d: %w", MethodParallelOf, i, ErrConstructFailed)
			}
			if err := part(g, cfg, a, b); err != nil {
				return fmt.Errorf("%s: part %d: %w", MethodParallelOf, i, err)
			}
		}

		return nil
	}
}
