// SPDX-License-Identifier: MIT
// Package: zreduce/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn         = DefaultIDFn        ("n0","n1",...)
//   • rng          = nil                (pure/deterministic unless seeded)
//   • valueFn      = DefaultValueFn     (Resistor{DefaultResistance})
//   • source/target = "S" / "T"
//   • groundTarget = false

package builder

import (
	"math/rand" // RNG for stochastic builders
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Internal node naming strategy: index -> name (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Kind generator for every emitted component.
	valueFn ValueFn

	// Terminal names. Empty → defaults resolved below.
	sourceName string
	targetName string
	// groundTarget creates the target terminal as a ground node.
	groundTarget bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Empty terminal names resolve to defaults here to keep
// downstream code branch-free.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		rng:        nil,
		valueFn:    DefaultValueFn,
		sourceName: DefaultSourceName,
		targetName: DefaultTargetName,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.sourceName == "" {
		cfg.sourceName = DefaultSourceName
	}
	if cfg.targetName == "" {
		cfg.targetName = DefaultTargetName
	}

	return cfg
}
