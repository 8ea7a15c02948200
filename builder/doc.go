// Package builder provides reusable “functional‐options”‐style constructors for
// two-terminal circuit fixtures over core.Graph. It centralizes node naming,
// component value distributions and parameter validation so that tests,
// examples and benchmarks share one deterministic source of networks.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, value function, terminal names.
//   - Internal node naming (IDFn implementations):
//     – DefaultIDFn:       "n0","n1",…
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal index.
//   - Component value distributions (ValueFn implementations):
//     – DefaultValueFn:    Resistor{DefaultResistance}.
//     – ConstantResistorFn, UniformResistorFn, MixedKindFn.
//   - Topologies (Constructor implementations), each placed between two nodes:
//     – Element, Leaf:     one component.
//     – Chain, Bank:       n components in series / in parallel.
//     – SeriesOf, ParallelOf: composition of other constructors.
//     – Ladder:            k-section series/shunt ladder.
//     – Bridge, Delta:     non series/parallel (irreducible) networks.
//     – Stub:              a dead-end chain hanging off the first node.
//     – RandomSeriesParallel: seeded random series/parallel network.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs
//     (node handles, names and component handles).
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.
package builder
