// SPDX-License-Identifier: MIT
//
// Package component defines the closed set of passive circuit element kinds
// and evaluates them to an impedance at a given angular frequency.
//
// Kinds:
//
//	Resistor{R}         Z = R
//	Inductor{L}         Z = jωL        (Short at ω = 0)
//	Capacitor{C}        Z = 1/(jωC)    (Open at ω = 0 or C = 0)
//	GenericImpedance{Z} Z unchanged    (used for reduced equivalents)
//
// Kind is a sealed interface: only the four types above implement it, and
// Evaluate dispatches over them with a type switch whose default branch is an
// error. Adding a kind therefore requires touching Evaluate and Validate.
//
// Errors:
//
//	ErrInvalidComponent - negative or non-finite R, L, C or ω, a NaN generic
//	                      impedance, or a nil/unknown kind.
package component

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zreduce/impedance"
)

// ErrInvalidComponent indicates a non-physical component value or frequency.
var ErrInvalidComponent = errors.New("component: invalid component")

// Kind is one of Resistor, Inductor, Capacitor or GenericImpedance.
type Kind interface {
	// Prefix returns the conventional designator letter ("R", "L", "C", "Z").
	Prefix() string

	// String renders the kind with its value, e.g. "R=100".
	String() string

	sealed()
}

// Resistor is an ideal resistance of R ohms.
type Resistor struct{ R float64 }

// Inductor is an ideal inductance of L henries.
type Inductor struct{ L float64 }

// Capacitor is an ideal capacitance of C farads.
type Capacitor struct{ C float64 }

// GenericImpedance is a fixed, frequency-independent impedance. The reducer
// stores combined equivalents with this kind.
type GenericImpedance struct{ Z impedance.Impedance }

func (Resistor) sealed()         {}
func (Inductor) sealed()         {}
func (Capacitor) sealed()        {}
func (GenericImpedance) sealed() {}

func (Resistor) Prefix() string         { return "R" }
func (Inductor) Prefix() string         { return "L" }
func (Capacitor) Prefix() string        { return "C" }
func (GenericImpedance) Prefix() string { return "Z" }

func (k Resistor) String() string         { return fmt.Sprintf("R=%g", k.R) }
func (k Inductor) String() string         { return fmt.Sprintf("L=%g", k.L) }
func (k Capacitor) String() string        { return fmt.Sprintf("C=%g", k.C) }
func (k GenericImpedance) String() string { return "Z=" + k.Z.String() }

// Validate reports whether k describes a physical component.
func Validate(k Kind) error {
	switch k := k.(type) {
	case Resistor:
		return checkValue("resistance", k.R)
	case Inductor:
		return checkValue("inductance", k.L)
	case Capacitor:
		return checkValue("capacitance", k.C)
	case GenericImpedance:
		if c, ok := k.Z.Complex(); ok && cmplx.IsNaN(c) {
			return fmt.Errorf("%w: impedance is NaN", ErrInvalidComponent)
		}
		return nil
	case nil:
		return fmt.Errorf("%w: nil kind", ErrInvalidComponent)
	default:
		return fmt.Errorf("%w: unknown kind %T", ErrInvalidComponent, k)
	}
}

// Evaluate returns the impedance of k at angular frequency omega (rad/s).
func Evaluate(k Kind, omega float64) (impedance.Impedance, error) {
	if err := ValidateOmega(omega); err != nil {
		return impedance.Impedance{}, err
	}
	if err := Validate(k); err != nil {
		return impedance.Impedance{}, err
	}

	switch k := k.(type) {
	case Resistor:
		return impedance.Real(k.R), nil
	case Inductor:
		// ω = 0 or L = 0 gives jωL = 0, which Finite normalizes to Short.
		return impedance.Reactive(omega * k.L), nil
	case Capacitor:
		if omega == 0 || k.C == 0 {
			return impedance.Open, nil
		}
		return impedance.Reactive(-1 / (omega * k.C)), nil
	case GenericImpedance:
		return k.Z, nil
	default:
		return impedance.Impedance{}, fmt.Errorf("%w: unknown kind %T", ErrInvalidComponent, k)
	}
}

// ValidateOmega rejects a negative or non-finite angular frequency.
func ValidateOmega(omega float64) error {
	return checkValue("angular frequency", omega)
}

// checkValue rejects negative, NaN and infinite scalars.
func checkValue(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s %g is not finite", ErrInvalidComponent, what, v)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s %g is negative", ErrInvalidComponent, what, v)
	}

	return nil
}
