// Package reduce collapses a two-terminal circuit to one equivalent impedance
// by repeated series and parallel contraction, and records every contraction
// in an ordered step log.
//
// Algorithm (one iteration):
//
//  1. Prune (only with WithPruneDangling): remove components unreachable
//     from the source, then cascade away degree-1 nodes that are neither
//     terminals nor ground.
//  2. Parallel pass: group live components by unordered endpoint pair; fold
//     every group of two or more pairwise in ascending ComponentID order.
//  3. Series pass: visit live nodes in ascending NodeID order and contract
//     each one that is not ground, not a query terminal, has degree 2 and two
//     distinct far endpoints. Degrees are re-read at visit time.
//
// Iterations repeat until one applies nothing. Every applied contraction is
// one Step; a contraction never merges more than two components, so a pure
// series/parallel network of n components yields exactly n−1 steps.
//
// States:
//
//	Scanning → ParallelPass → SeriesPass → Scanning     (something changed)
//	                                     → Fixed        (one S–T component, no other path)
//	                                     → Unreducible  (bridge, delta, ground junction, gap)
//
// Unreducible is an ordinary outcome carried in Result.State, not an error.
// Result.Reason tells a disconnected query apart from a topology that needs
// a more general solver.
//
// Errors:
//
//	ErrGraphNil         - nil graph
//	ErrSameTerminal     - Source == Target
//	ErrIterationLimit   - WithMaxIterations bound hit before a fixed point
//	ErrReplayMismatch   - a step does not reproduce from the log
//	ErrNotFixed         - Replay on a result without a final impedance
//	core.ErrUnknownNode / component.ErrInvalidComponent (wrapped)
//
// Every component is evaluated before the first mutation, so an invalid
// frequency or component leaves the graph untouched. A successful run
// mutates the caller's graph in place; reduce a Clone to keep the original.
//
// Concurrency: a run needs exclusive ownership of its graph. Independent
// graphs may be reduced on separate goroutines.
package reduce
