// SPDX-License-Identifier: MIT
//
// File: impedance.go
// Role: Impedance value type, constructors, queries and comparisons.
// Determinism:
//   - Pure value semantics; no hidden state.

package impedance

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Form identifies which variant an Impedance holds.
type Form uint8

const (
	// FormShort is zero impedance. It is the zero value of Form, so the zero
	// Impedance is a short circuit.
	FormShort Form = iota

	// FormFinite is an ordinary, non-zero, finite complex impedance.
	FormFinite

	// FormOpen is infinite impedance.
	FormOpen
)

// String returns the lowercase name of the form.
func (f Form) String() string {
	switch f {
	case FormShort:
		return "short"
	case FormFinite:
		return "finite"
	case FormOpen:
		return "open"
	default:
		return fmt.Sprintf("form(%d)", uint8(f))
	}
}

// Impedance is a complex impedance or one of the Open/Short sentinels.
// The zero value is Short.
type Impedance struct {
	form Form
	z    complex128
}

// Open is infinite impedance.
var Open = Impedance{form: FormOpen}

// Short is zero impedance.
var Short = Impedance{form: FormShort}

// Finite wraps z as an Impedance. Zero normalizes to Short and any infinite
// component normalizes to Open.
func Finite(z complex128) Impedance {
	switch {
	case cmplx.IsInf(z):
		return Open
	case z == 0:
		return Short
	default:
		return Impedance{form: FormFinite, z: z}
	}
}

// Real returns a purely resistive Impedance of r ohms.
func Real(r float64) Impedance { return Finite(complex(r, 0)) }

// Reactive returns a purely reactive Impedance of x ohms (jx).
func Reactive(x float64) Impedance { return Finite(complex(0, x)) }

// Form reports which variant z holds.
func (z Impedance) Form() Form { return z.form }

// IsOpen reports whether z is the Open sentinel.
func (z Impedance) IsOpen() bool { return z.form == FormOpen }

// IsShort reports whether z is the Short sentinel.
func (z Impedance) IsShort() bool { return z.form == FormShort }

// IsFinite reports whether z holds a non-zero finite complex value.
func (z Impedance) IsFinite() bool { return z.form == FormFinite }

// Complex returns the complex value of z. Short reports (0, true); Open
// reports (0, false) because it has no finite value.
func (z Impedance) Complex() (complex128, bool) {
	switch z.form {
	case FormFinite:
		return z.z, true
	case FormShort:
		return 0, true
	default:
		return 0, false
	}
}

// Polar returns magnitude (ohms) and phase (radians) of z. ok is false for
// Open.
func (z Impedance) Polar() (magnitude, phase float64, ok bool) {
	c, ok := z.Complex()
	if !ok {
		return math.Inf(1), 0, false
	}

	return cmplx.Abs(c), cmplx.Phase(c), true
}

// Passive reports whether z cannot deliver energy: Re(z) >= 0. Both
// sentinels are passive.
func (z Impedance) Passive() bool {
	if z.form != FormFinite {
		return true
	}

	return real(z.z) >= 0
}

// Equal reports exact equality: same form and, for Finite, identical bits.
func (z Impedance) Equal(o Impedance) bool {
	if z.form != o.form {
		return false
	}

	return z.form != FormFinite || z.z == o.z
}

// ApproxEqual reports whether a and b have the same form and, when both are
// Finite, each of their parts agrees within eps absolutely or relatively to
// the larger magnitude.
func ApproxEqual(a, b Impedance, eps float64) bool {
	if a.form != b.form {
		return false
	}
	if a.form != FormFinite {
		return true
	}

	return closeTo(real(a.z), real(b.z), eps) && closeTo(imag(a.z), imag(b.z), eps)
}

// closeTo is the scalar half of ApproxEqual.
func closeTo(x, y, eps float64) bool {
	d := math.Abs(x - y)
	if d <= eps {
		return true
	}

	return d <= eps*math.Max(math.Abs(x), math.Abs(y))
}

// String formats z as "open", "short", "100Ω" or "100+50jΩ".
func (z Impedance) String() string {
	switch z.form {
	case FormOpen:
		return "open"
	case FormShort:
		return "short"
	}
	if imag(z.z) == 0 {
		return fmt.Sprintf("%gΩ", real(z.z))
	}
	if real(z.z) == 0 {
		return fmt.Sprintf("%gjΩ", imag(z.z))
	}

	return fmt.Sprintf("%g%+gjΩ", real(z.z), imag(z.z))
}

// AngularFrequency converts a frequency in hertz to ω = 2πf in rad/s.
func AngularFrequency(hz float64) float64 { return 2 * math.Pi * hz }
