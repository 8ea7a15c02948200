// SPDX-License-Identifier: MIT
// Package: zreduce/builder
//
// impl_chain.go - Chain(n) and Bank(n) constructors.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewComponents).
//   - Chain adds n−1 internal nodes and emits a→x1, x1→x2, …, x(n−1)→b.
//   - Bank emits n components a→b.
//   - Kinds come from cfg.valueFn(cfg.rng), drawn in emission order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/zreduce/core"
)

// Chain returns a Constructor that builds n components in series between a and b.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig, a, b core.NodeID) error {
		if err := validateMin(MethodChain, "n", n, MinChainComponents); err != nil {
			return err
		}

		prev := a
		for i := 1; i < n; i++ {
			x, err := addInternal(MethodChain, g, cfg)
			if err != nil {
				return err
			}
			if err = addElement(MethodChain, g, cfg, prev, x); err != nil {
				return err
			}
			prev = x
		}

		return addElement(MethodChain, g, cfg, prev, b)
	}
}

// Bank returns a Constructor that builds n components in parallel between a and b.
func Bank(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig, a, b core.NodeID) error {
		if err := validateMin(MethodBank, "n", n, MinBankComponents); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addElement(MethodBank, g, cfg, a, b); err != nil {
				return err
			}
		}

		return nil
	}
}
