// Package zreduce computes the equivalent impedance of a two-terminal circuit
// by series/parallel reduction, and keeps an ordered log of every step so a
// renderer can explain the answer.
//
// What is in the box:
//
//	impedance/ - Finite | Open | Short values, series and parallel rules
//	component/ - Resistor, Inductor, Capacitor, GenericImpedance and Evaluate(kind, ω)
//	core/      - arena multigraph with stable handles and contraction primitives
//	bfs/       - breadth-first traversal used for reachability and path checks
//	reduce/    - the fixed-point reducer, its step log and Replay
//	builder/   - deterministic circuit fixtures (chains, banks, ladders, bridges, random SP)
//
// Quick example:
//
//	    S ──R1── n2 ──R2── T
//	              └──R3────┘
//
//	c, _ := builder.BuildCircuit(nil, builder.SeriesOf(builder.Leaf(), builder.Bank(2)))
//	res, _ := reduce.Reduce(c.Graph, reduce.Query{Source: c.Source, Target: c.Target})
//	// res.State == reduce.Fixed, res.Impedance == 1500Ω, len(res.Steps) == 2
//
// Topologies that need a Delta-Wye transform or a linear solve (bridges,
// meshes) end in reduce.Unreducible rather than a guessed value.
//
//	go get github.com/katalvlaran/zreduce
package zreduce
