// Package impedance implements the complex-valued quantity that every other
// zreduce package computes with.
//
// An Impedance is a closed tagged value with exactly three forms:
//
//	Finite(z)  - an ordinary complex impedance in ohms
//	Open       - infinite impedance (no current can flow)
//	Short      - zero impedance (an ideal wire)
//
// The sentinels are explicit variants, never IEEE infinities or NaN, so every
// combination rule below is a plain switch over the operand forms:
//
//	Series(a, b)    = a + b        Open absorbs, Short is neutral
//	Parallel(a, b)  = ab / (a + b) Short absorbs, Open is neutral
//
// When a + b cancels (an inductive and a capacitive reactance at resonance,
// |a + b| ≤ CancelEpsilon·max(|a|, |b|)) Parallel yields Open and Series
// yields Short. This degeneracy is physical and is resolved here; it never
// surfaces as an error.
//
// Normalization:
//
//	Finite(0)    → Short
//	Finite(±Inf) → Open
//
// so each physical state has exactly one representation and Equal is exact.
//
// Complexity: every operation is O(1) except the n-ary folds, which are O(n).
// Values are immutable and safe to share between goroutines.
package impedance
