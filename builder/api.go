// SPDX-License-Identifier: MIT
// Package: zreduce/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildCircuit(bopts, cons...). Creates g and the two
//     terminals, resolves cfg, runs cons in order between the terminals.
//   - Public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical circuits.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/zreduce/core"
)

// Constructor places a sub-network between the existing nodes a and b of g
// using the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add internal nodes via addInternal and components in a stable order.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig, a, b core.NodeID) error

// Circuit is a built network together with its query terminals.
type Circuit struct {
	Graph  *core.Graph
	Source core.NodeID
	Target core.NodeID
}

// BuildCircuit creates a new core.Graph with two terminals (DefaultSourceName
// and DefaultTargetName unless renamed), resolves the builder configuration
// from bopts, and applies all constructors in order between the terminals,
// so that several constructors end up in parallel.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewComponents, ErrNeedRandSource, ...).
func BuildCircuit(bopts []BuilderOption, cons ...Constructor) (*Circuit, error) {
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph()

	src, err := g.AddNode(cfg.sourceName)
	if err != nil {
		return nil, fmt.Errorf("%s: source: %w: %w", MethodBuildCircuit, err, ErrConstructFailed)
	}
	var topts []core.NodeOption
	if cfg.groundTarget {
		topts = append(topts, core.WithGround())
	}
	dst, err := g.AddNode(cfg.targetName, topts...)
	if err != nil {
		return nil, fmt.Errorf("%s: target: %w: %w", MethodBuildCircuit, err, ErrConstructFailed)
	}

	if err = apply(g, cfg, src, dst, cons); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildCircuit, err)
	}

	return &Circuit{Graph: g, Source: src, Target: dst}, nil
}

// Build runs cons between the existing nodes a and b of g. It is the entry
// point for attaching fixtures to a hand-built graph.
func Build(g *core.Graph, a, b core.NodeID, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Build: nil graph: %w", ErrConstructFailed)
	}

	return apply(g, newBuilderConfig(bopts...), a, b, cons)
}

// apply executes constructors in order, rejecting nil entries.
func apply(g *core.Graph, cfg builderConfig, a, b core.NodeID, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg, a, b); err != nil {
			return err
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Element joins a and b with one component of the given kind.
//func Element(kind component.Kind) Constructor

// Leaf joins a and b with one component drawn from cfg.valueFn.
//func Leaf() Constructor

// Chain builds n components in series between a and b (n ≥ 1, n−1 internal nodes).
//func Chain(n int) Constructor

// Bank builds n components in parallel between a and b (n ≥ 1).
//func Bank(n int) Constructor

// SeriesOf places parts end to end between a and b through fresh internal nodes.
//func SeriesOf(parts ...Constructor) Constructor

// ParallelOf places every part directly between a and b.
//func ParallelOf(parts ...Constructor) Constructor

// Ladder builds k series/shunt sections from a, shunting each section to b.
//func Ladder(k int) Constructor

// Bridge builds a Wheatstone bridge between a and b (5 components, irreducible).
//func Bridge() Constructor

// Delta builds a triangle on a, b and a third node, tied by a Wye hub (K4, irreducible).
//func Delta() Constructor

// Stub hangs a dead-end chain of n components off a.
//func Stub(n int) Constructor

// RandomSeriesParallel builds a random two-terminal series/parallel network
// with exactly n components. Requires cfg.rng.
//func RandomSeriesParallel(n int) Constructor
