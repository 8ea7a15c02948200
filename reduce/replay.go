// SPDX-License-Identifier: MIT
//
// File: replay.go
// Role: Recompute a result's impedances from Leaves and Steps alone.

package reduce

import (
	"fmt"

	"github.com/katalvlaran/zreduce/core"
	"github.com/katalvlaran/zreduce/impedance"
)

// Replay re-applies every step of r to its Leaves with the n-ary combination
// rules and checks that each recorded impedance is reproduced exactly.
// For a Fixed result it returns the impedance of Edge, which equals
// r.Impedance. For any other result the log is still verified and
// ErrNotFixed is returned.
//
// Errors: ErrReplayMismatch (wrapped, with the step index), ErrNotFixed.
func (r *Result) Replay() (impedance.Impedance, error) {
	z := make(map[core.ComponentID]impedance.Impedance, len(r.Leaves))
	for id, v := range r.Leaves {
		z[id] = v
	}

	for _, s := range r.Steps {
		in := make([]impedance.Impedance, 0, len(s.Consumed))
		for _, id := range s.Consumed {
			v, ok := z[id]
			if !ok {
				return impedance.Impedance{}, fmt.Errorf("Replay: step %d: component %d not live: %w",
					s.Index, id, ErrReplayMismatch)
			}
			in = append(in, v)
			delete(z, id)
		}

		var got impedance.Impedance
		switch s.Op {
		case OpSeries:
			got = impedance.SeriesMany(in...)
		case OpParallel:
			got = impedance.ParallelMany(in...)
		case OpPrune:
			continue
		default:
			return impedance.Impedance{}, fmt.Errorf("Replay: step %d: %v: %w", s.Index, s.Op, ErrReplayMismatch)
		}
		if !got.Equal(s.Impedance) {
			return impedance.Impedance{}, fmt.Errorf("Replay: step %d: got %v, logged %v: %w",
				s.Index, got, s.Impedance, ErrReplayMismatch)
		}
		z[s.Result] = got
	}

	if r.State != Fixed {
		return impedance.Impedance{}, fmt.Errorf("Replay: state %v: %w", r.State, ErrNotFixed)
	}
	final, ok := z[r.Edge]
	if !ok || !final.Equal(r.Impedance) {
		return impedance.Impedance{}, fmt.Errorf("Replay: edge %d: got %v, want %v: %w",
			r.Edge, final, r.Impedance, ErrReplayMismatch)
	}

	return final, nil
}
