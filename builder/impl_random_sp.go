// SPDX-License-Identifier: MIT
// Package: zreduce/builder
//
// impl_random_sp.go - implementation of RandomSeriesParallel(n) constructor.
//
// Canonical model:
//   - Recursive split: a network of n > 1 components is split into k and n−k
//     parts (k uniform in [1, n−1]); the parts are joined in series through a
//     fresh internal node or placed in parallel, with equal probability.
//   - n = 1 emits one component from cfg.valueFn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewComponents).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for n = 1.
//   - Exactly n components are emitted; every internal node has degree ≥ 2.
//
// Determinism:
//   - Draw order is fixed: split size, split kind, then the left part before
//     the right part (depth-first). Value draws interleave in emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/zreduce/core"
)

// RandomSeriesParallel returns a Constructor that builds a random two-terminal
// series/parallel network with exactly n components.
func RandomSeriesParallel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig, a, b core.NodeID) error {
		if err := validateMin(MethodRandomSeriesParallel, "n", n, MinRandomLeaves); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSeriesParallel, ErrNeedRandSource)
		}

		return randomSP(g, cfg, a, b, n)
	}
}

// randomSP emits n components between a and b by recursive splitting.
func randomSP(g *core.Graph, cfg builderConfig, a, b core.NodeID, n int) error {
	if n == 1 {
		return addElement(MethodRandomSeriesParallel, g, cfg, a, b)
	}

	k := 1 + cfg.rng.Intn(n-1)
	if cfg.rng.Intn(2) == 0 {
		x, err := addInternal(MethodRandomSeriesParallel, g, cfg)
		if err != nil {
			return err
		}
		if err = randomSP(g, cfg, a, x, k); err != nil {
			return err
		}
		return randomSP(g, cfg, x, b, n-k)
	}

	if err := randomSP(g, cfg, a, b, k); err != nil {
		return err
	}
	return randomSP(g, cfg, a, b, n-k)
}
