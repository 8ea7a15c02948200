// SPDX-License-Identifier: MIT
// Package: zreduce/builder
//
// impl_stub.go - Stub(n): a dead-end chain that carries no current.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewComponents).
//   - Adds n internal nodes and emits a→x1, x1→x2, …, x(n−1)→xn.
//   - b is ignored; the chain ends in a degree-1 node.

package builder

import (
	"github.com/katalvlaran/zreduce/core"
)

// Stub returns a Constructor that hangs a dead-end chain of n components off a.
func Stub(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig, a, _ core.NodeID) error {
		if err := validateMin(MethodStub, "n", n, MinStubComponents); err != nil {
			return err
		}

		prev := a
		for i := 0; i < n; i++ {
			x, err := addInternal(MethodStub, g, cfg)
			if err != nil {
				return err
			}
			if err = addElement(MethodStub, g, cfg, prev, x); err != nil {
				return err
			}
			prev = x
		}

		return nil
	}
}
