// SPDX-License-Identifier: MIT
// Package: zreduce/builder
//
// impl_ladder.go - Ladder(k) constructor.
//
//	a ─Z─ x1 ─Z─ x2 ─ … ─Z─ xk
//	      │      │          │
//	      Z      Z          Z
//	      │      │          │
//	b ────┴──────┴── … ─────┘
//
// Contract:
//   - k ≥ 1 (else ErrTooFewComponents).
//   - Per section i: add internal xi, emit the series arm x(i−1)→xi, then the
//     shunt xi→b. 2k components in total.
//
// The ladder is series/parallel reducible from the far end inwards.

package builder

import (
	"github.com/katalvlaran/zreduce/core"
)

// Ladder returns a Constructor that builds a k-section series/shunt ladder.
func Ladder(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig, a, b core.NodeID) error {
		if err := validateMin(MethodLadder, "k", k, MinLadderSections); err != nil {
			return err
		}

		prev := a
		for i := 0; i < k; i++ {
			x, err := addInternal(MethodLadder, g, cfg)
			if err != nil {
				return err
			}
			if err = addElement(MethodLadder, g, cfg, prev, x); err != nil {
				return err
			}
			if err = addElement(MethodLadder, g, cfg, x, b); err != nil {
				return err
			}
			prev = x
		}

		return nil
	}
}
