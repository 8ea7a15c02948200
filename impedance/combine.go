// SPDX-License-Identifier: MIT
//
// File: combine.go
// Role: Series and parallel combination rules, binary and n-ary.
// Determinism:
//   - n-ary forms are left folds in argument order.

package impedance

import (
	"math"
	"math/cmplx"
)

// CancelEpsilon is the relative bound under which a + b counts as zero:
// |a + b| ≤ CancelEpsilon·max(|a|, |b|). Reactances evaluated at resonance
// differ by a few ULPs, far below this bound.
const CancelEpsilon = 1e-12

// cancels reports whether a + b vanishes to within CancelEpsilon.
func cancels(a, b, sum complex128) bool {
	return cmplx.Abs(sum) <= CancelEpsilon*math.Max(cmplx.Abs(a), cmplx.Abs(b))
}

// Series returns the impedance of a and b connected end to end.
//
//	Open  + x = Open
//	Short + x = x
//
// A sum that cancels (series resonance of the reactances) yields Short.
func Series(a, b Impedance) Impedance {
	switch {
	case a.form == FormOpen || b.form == FormOpen:
		return Open
	case a.form == FormShort:
		return b
	case b.form == FormShort:
		return a
	}

	sum := a.z + b.z
	if cancels(a.z, b.z, sum) {
		return Short
	}

	return Finite(sum)
}

// Parallel returns the impedance of a and b connected across the same pair of
// nodes.
//
//	Short ∥ x = Short
//	Open  ∥ x = x
//
// A sum that cancels (parallel resonance of the reactances) yields Open.
func Parallel(a, b Impedance) Impedance {
	switch {
	case a.form == FormShort || b.form == FormShort:
		return Short
	case a.form == FormOpen:
		return b
	case b.form == FormOpen:
		return a
	}

	sum := a.z + b.z
	if cancels(a.z, b.z, sum) {
		return Open
	}
	z := a.z * b.z / sum
	if cmplx.IsInf(z) || cmplx.IsNaN(z) {
		// a·b overflowed while the sum did not; the reciprocal form stays finite.
		z = 1 / (1/a.z + 1/b.z)
	}

	return Finite(z)
}

// SeriesMany folds Series over zs from left to right. An empty argument list
// is Short, the series identity.
func SeriesMany(zs ...Impedance) Impedance {
	acc := Short
	for _, z := range zs {
		acc = Series(acc, z)
	}

	return acc
}

// ParallelMany folds Parallel over zs from left to right. An empty argument
// list is Open, the parallel identity.
func ParallelMany(zs ...Impedance) Impedance {
	acc := Open
	for _, z := range zs {
		acc = Parallel(acc, z)
	}

	return acc
}
