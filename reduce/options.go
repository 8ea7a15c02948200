// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for Reduce.
// Policy:
//   - Option constructors panic on meaningless input; Reduce never panics.

package reduce

import (
	"io"
	"log/slog"
)

// DefaultMaxIterations bounds a run when WithMaxIterations is not given.
// Every iteration but the last removes at least one component or node, so
// real circuits stop far earlier.
const DefaultMaxIterations = 1 << 20

// Option configures a Reduce run.
type Option func(*Options)

// Options holds the resolved configuration of a run.
type Options struct {
	// Logger receives debug records per step and state change and one info
	// record on completion.
	Logger *slog.Logger

	// MaxIterations bounds the fixed-point loop.
	MaxIterations int

	// OnStep, if non-nil, is called after each step is appended.
	OnStep func(Step)

	// PruneDangling enables the prune phase at the start of every iteration.
	PruneDangling bool
}

// DefaultOptions returns the configuration used when no option is given:
// a discarding logger, DefaultMaxIterations, no hook, no pruning.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxIterations: DefaultMaxIterations,
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("reduce: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithMaxIterations bounds the number of iterations. Panics if n < 1.
//
// The iteration that finds nothing left to reduce counts too: a circuit that
// needs k reducing iterations reaches Fixed or Unreducible only with n ≥ k+1,
// and returns ErrIterationLimit with n = k.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("reduce: WithMaxIterations requires n >= 1")
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithOnStep registers a hook called with every step as it is recorded.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) { o.OnStep = fn }
}

// WithPruneDangling removes components that cannot carry current between the
// terminals: islands unreachable from the source and dead-end chains.
func WithPruneDangling() Option {
	return func(o *Options) { o.PruneDangling = true }
}
