// Package builder provides internal helper functions and types
// for choosing component kinds and values in circuit constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/zreduce/component"
)

// ValueFn produces the kind of the next component given an optional *rand.Rand.
// It must be deterministic for a given RNG seed and return kinds that pass
// component.Validate.
type ValueFn func(rng *rand.Rand) component.Kind

// DefaultValueFn always returns Resistor{DefaultResistance}.
// Never panics.
func DefaultValueFn(_ *rand.Rand) component.Kind {
	return component.Resistor{R: DefaultResistance}
}

// ConstantResistorFn returns a ValueFn that always yields Resistor{R: r}.
// Panics if r < 0.
func ConstantResistorFn(r float64) ValueFn {
	if r < 0 {
		panic(fmt.Sprintf("ConstantResistorFn: r must be ≥ 0, got %g", r))
	}

	return func(_ *rand.Rand) component.Kind {
		return component.Resistor{R: r}
	}
}

// UniformResistorFn returns a ValueFn sampling resistances uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields Resistor{DefaultResistance} as a deterministic fallback.
func UniformResistorFn(min, max float64) ValueFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformResistorFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) component.Kind {
		if rng == nil {
			return component.Resistor{R: DefaultResistance}
		}
		if max == min {
			return component.Resistor{R: min}
		}

		return component.Resistor{R: min + rng.Float64()*(max-min)}
	}
}

// MixedKindFn returns a ValueFn that draws a resistor, inductor or capacitor
// with equal probability, with magnitudes uniform in [min, max).
// Panics if min <= 0 or max < min.
// If rng is nil, yields Resistor{DefaultResistance}.
func MixedKindFn(min, max float64) ValueFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("MixedKindFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}
	const kinds = 3

	return func(rng *rand.Rand) component.Kind {
		if rng == nil {
			return component.Resistor{R: DefaultResistance}
		}
		v := min + rng.Float64()*(max-min)
		switch rng.Intn(kinds) {
		case 0:
			return component.Resistor{R: v}
		case 1:
			return component.Inductor{L: v}
		default:
			return component.Capacitor{C: v}
		}
	}
}

// WithResistance sets a fixed resistance via ConstantResistorFn.
func WithResistance(r float64) BuilderOption {
	return WithValueFn(ConstantResistorFn(r))
}

// WithUniformResistance sets resistances ∼ U[min,max) via UniformResistorFn.
func WithUniformResistance(min, max float64) BuilderOption {
	return WithValueFn(UniformResistorFn(min, max))
}

// WithMixedKinds draws R, L or C components via MixedKindFn.
func WithMixedKinds(min, max float64) BuilderOption {
	return WithValueFn(MixedKindFn(min, max))
}
