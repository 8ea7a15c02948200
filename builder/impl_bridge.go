// SPDX-License-Identifier: MIT
// Package: zreduce/builder
//
// impl_bridge.go - Bridge() and Delta(): networks that series/parallel
// reduction cannot collapse.
//
// Bridge (Wheatstone), internal nodes p, q; emission order:
//
//	a→p, a→q, p→b, q→b, p→q
//
// Delta, internal nodes c (third triangle corner) and h (Wye hub); emission order:
//
//	a→b, b→c, c→a, h→a, h→b, h→c
//
// Every internal node has degree 3 and no two components share a pair, so
// neither network has a series junction or a parallel group.

package builder

import (
	"github.com/katalvlaran/zreduce/core"
)

// Bridge returns a Constructor that builds a Wheatstone bridge between a and b.
func Bridge() Constructor {
	return func(g *core.Graph, cfg builderConfig, a, b core.NodeID) error {
		p, err := addInternal(MethodBridge, g, cfg)
		if err != nil {
			return err
		}
		q, err := addInternal(MethodBridge, g, cfg)
		if err != nil {
			return err
		}

		for _, e := range [][2]core.NodeID{{a, p}, {a, q}, {p, b}, {q, b}, {p, q}} {
			if err = addElement(MethodBridge, g, cfg, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Delta returns a Constructor that builds the triangle a, b, c with every
// corner also tied to a hub h (the complete graph on four nodes).
func Delta() Constructor {
	return func(g *core.Graph, cfg builderConfig, a, b core.NodeID) error {
		c, err := addInternal(MethodDelta, g, cfg)
		if err != nil {
			return err
		}
		h, err := addInternal(MethodDelta, g, cfg)
		if err != nil {
			return err
		}

		for _, e := range [][2]core.NodeID{{a, b}, {b, c}, {c, a}, {h, a}, {h, b}, {h, c}} {
			if err = addElement(MethodDelta, g, cfg, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
