// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Query, Step and Result declarations, the Op/State/Reason enums and
//       sentinel errors.

package reduce

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zreduce/core"
	"github.com/katalvlaran/zreduce/impedance"
)

// Sentinel errors for the reducer.
var (
	// ErrGraphNil indicates Reduce was called with a nil graph.
	ErrGraphNil = errors.New("reduce: graph is nil")

	// ErrSameTerminal indicates the query source and target are one node.
	ErrSameTerminal = errors.New("reduce: source and target are the same node")

	// ErrIterationLimit indicates the run hit WithMaxIterations before a fixed point.
	ErrIterationLimit = errors.New("reduce: iteration limit reached")

	// ErrReplayMismatch indicates a step log that does not reproduce its own impedances.
	ErrReplayMismatch = errors.New("reduce: replay mismatch")

	// ErrNotFixed indicates Replay was asked for the final impedance of a
	// result that has none.
	ErrNotFixed = errors.New("reduce: result is not fixed")
)

// Query names the two terminals and the angular frequency (rad/s) at which
// components are evaluated.
type Query struct {
	Source core.NodeID
	Target core.NodeID
	Omega  float64
}

// Op is the kind of one reduction step.
type Op uint8

const (
	// OpSeries merged the two components at an eliminated degree-2 node.
	OpSeries Op = iota + 1

	// OpParallel merged two components sharing both endpoints.
	OpParallel

	// OpPrune removed a component that cannot carry current between the terminals.
	OpPrune
)

// String returns the lowercase name of op.
func (op Op) String() string {
	switch op {
	case OpSeries:
		return "series"
	case OpParallel:
		return "parallel"
	case OpPrune:
		return "prune"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// State is a reducer state. Fixed and Unreducible are terminal.
type State uint8

const (
	Scanning State = iota
	ParallelPass
	SeriesPass
	Fixed
	Unreducible
)

// String returns the name of s.
func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case ParallelPass:
		return "parallel-pass"
	case SeriesPass:
		return "series-pass"
	case Fixed:
		return "fixed"
	case Unreducible:
		return "unreducible"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Reason qualifies an Unreducible result.
type Reason uint8

const (
	// ReasonNone is the reason of every non-Unreducible result.
	ReasonNone Reason = iota

	// ReasonIrreducible means the terminals are connected but the remaining
	// topology (a bridge, a delta, a ground junction) has no series or
	// parallel reduction left.
	ReasonIrreducible

	// ReasonDisconnected means no path joins the terminals.
	ReasonDisconnected
)

// String returns the name of r.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonIrreducible:
		return "irreducible"
	case ReasonDisconnected:
		return "disconnected"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// Step records one applied reduction.
type Step struct {
	// Index is the 0-based position of the step in the log.
	Index int

	// Iteration is the 1-based iteration that applied the step.
	Iteration int

	Op Op

	// Consumed lists the removed components in combination order.
	Consumed []core.ComponentID

	// Result is the synthetic equivalent, or core.NoComponent for OpPrune.
	Result core.ComponentID

	// Impedance is the value of Result (zero for OpPrune).
	Impedance impedance.Impedance

	// Eliminated is the removed node for OpSeries and dangling OpPrune
	// steps, core.NoNode otherwise.
	Eliminated core.NodeID

	// Ends are the endpoints of Result (of the removed component for OpPrune).
	Ends [2]core.NodeID
}

// Result is the outcome of one Reduce run.
type Result struct {
	State  State
	Reason Reason

	// Impedance is the equivalent impedance between the terminals. It is
	// meaningful only when State == Fixed.
	Impedance impedance.Impedance

	// Edge is the single remaining S–T component when State == Fixed,
	// core.NoComponent otherwise.
	Edge core.ComponentID

	// Steps is the ordered reduction log.
	Steps []Step

	// Leaves holds the evaluated impedance of every component present when
	// the run started.
	Leaves map[core.ComponentID]impedance.Impedance

	// Iterations counts executed iterations, including the final one that
	// applied nothing.
	Iterations int
}
