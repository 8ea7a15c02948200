// SPDX-License-Identifier: MIT
//
// File: reduce.go
// Role: Reduce entry point, the fixed-point loop and the terminal decision.
// Determinism:
//   - Parallel groups are visited in order of their lowest ComponentID and
//     folded in ascending ID order; series candidates in ascending NodeID
//     order. Equal inputs produce equal step logs.
// Contract:
//   - Validation and evaluation finish before the first mutation.

package reduce

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/zreduce/bfs"
	"github.com/katalvlaran/zreduce/component"
	"github.com/katalvlaran/zreduce/core"
	"github.com/katalvlaran/zreduce/impedance"
)

// reducer carries the state of one run.
type reducer struct {
	g    *core.Graph
	q    Query
	opts Options
	log  *slog.Logger

	z     map[core.ComponentID]impedance.Impedance // live component → impedance
	res   *Result
	state State
}

// Reduce contracts g between q.Source and q.Target until no series or
// parallel reduction applies, and reports the equivalent impedance.
//
// g is mutated in place. On ErrIterationLimit the partial result is returned
// together with the error.
//
// Errors: ErrGraphNil, ErrSameTerminal, ErrIterationLimit,
// core.ErrUnknownNode (terminal absent) and component.ErrInvalidComponent
// (bad Omega or component), all wrapped with context.
//
// Complexity: O(I·(N + C·log C)) for I iterations.
func Reduce(g *core.Graph, q Query, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := g.Node(q.Source); err != nil {
		return nil, fmt.Errorf("Reduce: source: %w", err)
	}
	if _, err := g.Node(q.Target); err != nil {
		return nil, fmt.Errorf("Reduce: target: %w", err)
	}
	if q.Source == q.Target {
		return nil, fmt.Errorf("Reduce: node %d: %w", q.Source, ErrSameTerminal)
	}
	if err := component.ValidateOmega(q.Omega); err != nil {
		return nil, fmt.Errorf("Reduce: %w", err)
	}

	comps := g.Components()
	leaves := make(map[core.ComponentID]impedance.Impedance, len(comps))
	for _, c := range comps {
		z, err := component.Evaluate(c.Kind, q.Omega)
		if err != nil {
			return nil, fmt.Errorf("Reduce: component %s: %w", c.Name, err)
		}
		leaves[c.ID] = z
	}

	r := &reducer{
		g:    g,
		q:    q,
		opts: cfg,
		log:  cfg.Logger,
		z:    make(map[core.ComponentID]impedance.Impedance, len(leaves)),
		res:  &Result{Edge: core.NoComponent, Leaves: leaves},
	}
	for id, z := range leaves {
		r.z[id] = z
	}

	return r.run()
}

// run executes the fixed-point loop.
func (r *reducer) run() (*Result, error) {
	r.log.Debug("reduce: start",
		"source", r.q.Source, "target", r.q.Target, "omega", r.q.Omega,
		"nodes", r.g.NodeCount(), "components", r.g.ComponentCount())

	for {
		if r.res.Iterations == r.opts.MaxIterations {
			r.res.State = Scanning
			r.log.Warn("reduce: iteration limit", "limit", r.opts.MaxIterations, "steps", len(r.res.Steps))
			return r.res, fmt.Errorf("Reduce: after %d iterations: %w", r.res.Iterations, ErrIterationLimit)
		}
		r.res.Iterations++
		r.enter(Scanning)

		changed := 0
		if r.opts.PruneDangling {
			n, err := r.prune()
			if err != nil {
				return r.res, err
			}
			changed += n
		}

		r.enter(ParallelPass)
		n, err := r.parallelPass()
		if err != nil {
			return r.res, err
		}
		changed += n

		r.enter(SeriesPass)
		if n, err = r.seriesPass(); err != nil {
			return r.res, err
		}
		changed += n

		if changed == 0 {
			break
		}
	}

	if err := r.finish(); err != nil {
		return r.res, err
	}
	r.log.Info("reduce: done",
		"state", r.res.State, "reason", r.res.Reason,
		"steps", len(r.res.Steps), "iterations", r.res.Iterations,
		"z", r.res.Impedance)

	return r.res, nil
}

// enter records a state transition.
func (r *reducer) enter(s State) {
	r.log.Debug("reduce: state", "from", r.state, "to", s, "iteration", r.res.Iterations)
	r.state = s
}

// parallelPass folds every parallel group pairwise.
func (r *reducer) parallelPass() (int, error) {
	groups := make(map[[2]core.NodeID][]core.ComponentID)
	var order [][2]core.NodeID
	for _, c := range r.g.Components() {
		p := c.Pair()
		if _, ok := groups[p]; !ok {
			order = append(order, p)
		}
		groups[p] = append(groups[p], c.ID)
	}

	applied := 0
	for _, p := range order {
		ids := groups[p]
		if len(ids) < 2 {
			continue
		}
		acc := ids[0]
		for _, next := range ids[1:] {
			z := impedance.Parallel(r.z[acc], r.z[next])
			rep, err := r.g.ReplaceParallelGroup([]core.ComponentID{acc, next}, component.GenericImpedance{Z: z})
			if err != nil {
				return applied, fmt.Errorf("Reduce: parallel %d∥%d: %w", acc, next, err)
			}
			delete(r.z, acc)
			delete(r.z, next)
			r.z[rep.Result] = z
			r.record(Step{
				Op:         OpParallel,
				Consumed:   rep.Consumed,
				Result:     rep.Result,
				Impedance:  z,
				Eliminated: core.NoNode,
				Ends:       rep.Ends,
			})
			acc = rep.Result
			applied++
		}
	}

	return applied, nil
}

// seriesPass contracts every eligible degree-2 node.
func (r *reducer) seriesPass() (int, error) {
	applied := 0
	for _, n := range r.g.Nodes() {
		if n.Ground || n.ID == r.q.Source || n.ID == r.q.Target {
			continue
		}
		inc, err := r.g.Incident(n.ID)
		if err != nil || len(inc) != 2 {
			continue
		}
		c1, err1 := r.g.Component(inc[0])
		c2, err2 := r.g.Component(inc[1])
		if err1 != nil || err2 != nil || c1.Other(n.ID) == c2.Other(n.ID) {
			continue
		}

		z := impedance.Series(r.z[inc[0]], r.z[inc[1]])
		con, err := r.g.ContractSeries(n.ID, component.GenericImpedance{Z: z})
		if err != nil {
			return applied, fmt.Errorf("Reduce: series at %s: %w", n.Name, err)
		}
		delete(r.z, con.Consumed[0])
		delete(r.z, con.Consumed[1])
		r.z[con.Result] = z
		r.record(Step{
			Op:         OpSeries,
			Consumed:   []core.ComponentID{con.Consumed[0], con.Consumed[1]},
			Result:     con.Result,
			Impedance:  z,
			Eliminated: con.Node,
			Ends:       con.Ends,
		})
		applied++
	}

	return applied, nil
}

// record appends s to the log, logs it and calls the OnStep hook.
func (r *reducer) record(s Step) {
	s.Index = len(r.res.Steps)
	s.Iteration = r.res.Iterations
	r.res.Steps = append(r.res.Steps, s)

	r.log.Debug("reduce: step",
		"index", s.Index, "op", s.Op, "consumed", s.Consumed,
		"result", s.Result, "eliminated", s.Eliminated, "z", s.Impedance)
	if r.opts.OnStep != nil {
		r.opts.OnStep(s)
	}
}

// finish decides between Fixed and Unreducible at the fixed point.
func (r *reducer) finish() error {
	between := r.g.Between(r.q.Source, r.q.Target)
	if len(between) == 1 {
		edge := between[0]
		other, err := bfs.Reachable(r.g, r.q.Source, r.q.Target, bfs.WithoutComponents(edge))
		if err != nil {
			return fmt.Errorf("Reduce: path check: %w", err)
		}
		if !other {
			r.res.Edge = edge
			r.res.Impedance = r.z[edge]
			r.conclude(Fixed, ReasonNone)
			return nil
		}
	}

	reachable, err := bfs.Reachable(r.g, r.q.Source, r.q.Target)
	if err != nil {
		return fmt.Errorf("Reduce: path check: %w", err)
	}
	if reachable {
		r.conclude(Unreducible, ReasonIrreducible)
	} else {
		r.conclude(Unreducible, ReasonDisconnected)
	}

	return nil
}

// conclude enters the terminal state s.
func (r *reducer) conclude(s State, why Reason) {
	r.enter(s)
	r.res.State = s
	r.res.Reason = why
}
