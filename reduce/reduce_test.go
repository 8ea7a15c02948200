// SPDX-License-Identifier: MIT
// Package reduce_test covers the reducer outcomes, the step log and the
// error contract.

package reduce_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zreduce/builder"
	"github.com/katalvlaran/zreduce/component"
	"github.com/katalvlaran/zreduce/core"
	"github.com/katalvlaran/zreduce/impedance"
	"github.com/katalvlaran/zreduce/reduce"
)

const (
	omega50Hz = 2 * math.Pi * 50
	eps       = 1e-9
	seeds     = 40
)

// build runs the builder with opts and fails the test on error.
func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *builder.Circuit {
	t.Helper()
	c, err := builder.BuildCircuit(opts, cons...)
	require.NoError(t, err)
	return c
}

// query is the S–T query of c at omega.
func query(c *builder.Circuit, omega float64) reduce.Query {
	return reduce.Query{Source: c.Source, Target: c.Target, Omega: omega}
}

// nodes adds the named nodes to g in order.
func nodes(t *testing.T, g *core.Graph, names ...string) []core.NodeID {
	t.Helper()
	ids := make([]core.NodeID, len(names))
	for i, n := range names {
		id, err := g.AddNode(n)
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

// link joins a and b with kind.
func link(t *testing.T, g *core.Graph, a, b core.NodeID, kind component.Kind) core.ComponentID {
	t.Helper()
	id, err := g.AddComponent(a, b, kind)
	require.NoError(t, err)
	return id
}

func TestReduce_EqualResistorsInParallel(t *testing.T) {
	c := build(t, []builder.BuilderOption{builder.WithResistance(100)}, builder.Bank(2))

	res, err := reduce.Reduce(c.Graph, query(c, 0))
	require.NoError(t, err)

	assert.Equal(t, reduce.Fixed, res.State)
	assert.Equal(t, reduce.ReasonNone, res.Reason)
	assert.True(t, res.Impedance.Equal(impedance.Real(50)), "got %v", res.Impedance)
	require.Len(t, res.Steps, 1)

	s := res.Steps[0]
	assert.Equal(t, reduce.OpParallel, s.Op)
	assert.Equal(t, []core.ComponentID{0, 1}, s.Consumed)
	assert.Equal(t, res.Edge, s.Result)
	assert.Equal(t, core.NoNode, s.Eliminated)
	assert.Equal(t, [2]core.NodeID{c.Source, c.Target}, s.Ends)
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, 1, s.Iteration)
	assert.Equal(t, 2, res.Iterations)
}

func TestReduce_EqualResistorsInSeries(t *testing.T) {
	c := build(t, []builder.BuilderOption{builder.WithResistance(100)}, builder.Chain(2))
	mid, ok := c.Graph.Lookup("n2")
	require.True(t, ok)

	res, err := reduce.Reduce(c.Graph, query(c, omega50Hz))
	require.NoError(t, err)

	assert.Equal(t, reduce.Fixed, res.State)
	assert.True(t, res.Impedance.Equal(impedance.Real(200)), "got %v", res.Impedance)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, reduce.OpSeries, res.Steps[0].Op)
	assert.Equal(t, mid, res.Steps[0].Eliminated)
	assert.False(t, c.Graph.HasNode(mid))
	assert.Equal(t, 1, c.Graph.ComponentCount())

	eq, err := c.Graph.Component(res.Edge)
	require.NoError(t, err)
	assert.True(t, eq.Synthetic)
}

func TestReduce_DegenerateValues(t *testing.T) {
	cases := []struct {
		name  string
		omega float64
		cons  builder.Constructor
		want  impedance.Impedance
	}{
		{
			name: "R+C at DC is open",
			cons: builder.SeriesOf(builder.Element(component.Resistor{R: 470}), builder.Element(component.Capacitor{C: 1e-6})),
			want: impedance.Open,
		},
		{
			name:  "L∥C at resonance is open",
			omega: 1 / math.Sqrt(1e-3*1e-6),
			cons:  builder.ParallelOf(builder.Element(component.Inductor{L: 1e-3}), builder.Element(component.Capacitor{C: 1e-6})),
			want:  impedance.Open,
		},
		{
			name:  "L+C at resonance is short",
			omega: 1 / math.Sqrt(10e-3*100e-9),
			cons:  builder.SeriesOf(builder.Element(component.Inductor{L: 10e-3}), builder.Element(component.Capacitor{C: 100e-9})),
			want:  impedance.Short,
		},
		{
			name: "R∥L at DC is short",
			cons: builder.ParallelOf(builder.Element(component.Resistor{R: 10}), builder.Element(component.Inductor{L: 1e-3})),
			want: impedance.Short,
		},
		{
			name:  "open branch in parallel is neutral",
			omega: omega50Hz,
			cons: builder.ParallelOf(
				builder.Element(component.Resistor{R: 10}),
				builder.SeriesOf(builder.Element(component.Resistor{R: 5}), builder.Element(component.Capacitor{C: 0})),
			),
			want: impedance.Real(10),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := build(t, nil, tc.cons)
			res, err := reduce.Reduce(c.Graph, query(c, tc.omega))
			require.NoError(t, err)
			assert.Equal(t, reduce.Fixed, res.State)
			assert.True(t, res.Impedance.Equal(tc.want), "got %v, want %v", res.Impedance, tc.want)

			z, err := res.Replay()
			require.NoError(t, err)
			assert.True(t, z.Equal(res.Impedance))
		})
	}
}

// TestReduce_TankResonance reduces R─(L∥C) at the tank's resonant frequency
// for random L and C; the tank is open, so the whole branch is open.
func TestReduce_TankResonance(t *testing.T) {
	r := rand.New(rand.NewSource(77))
	for i := 0; i < seeds; i++ {
		l := math.Pow(10, -7+6*r.Float64())   // 100 nH .. 100 mH
		cf := math.Pow(10, -11+6*r.Float64()) // 10 pF .. 10 µF
		c := build(t, nil, builder.SeriesOf(
			builder.Element(component.Resistor{R: 50}),
			builder.ParallelOf(builder.Element(component.Inductor{L: l}), builder.Element(component.Capacitor{C: cf})),
		))

		res, err := reduce.Reduce(c.Graph, query(c, 1/math.Sqrt(l*cf)))
		require.NoError(t, err)
		require.Equal(t, reduce.Fixed, res.State)
		assert.True(t, res.Impedance.IsOpen(), "L=%g C=%g: got %v", l, cf, res.Impedance)
		assert.Len(t, res.Steps, 2)

		z, err := res.Replay()
		require.NoError(t, err)
		assert.True(t, z.IsOpen())
	}
}

// TestReduce_SeriesParallelStepCount checks n−1 steps and exact replay on
// random series/parallel networks of mixed kinds.
func TestReduce_SeriesParallelStepCount(t *testing.T) {
	for seed := int64(1); seed <= seeds; seed++ {
		n := 1 + int(seed*7%60)
		for _, omega := range []float64{0, omega50Hz} {
			c := build(t, []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithMixedKinds(1e-6, 1e3),
			}, builder.RandomSeriesParallel(n))

			res, err := reduce.Reduce(c.Graph, query(c, omega))
			require.NoError(t, err, "seed %d", seed)
			require.Equal(t, reduce.Fixed, res.State, "seed %d n %d", seed, n)
			assert.Len(t, res.Steps, n-1, "seed %d", seed)
			assert.Len(t, res.Leaves, n)
			assert.Equal(t, 1, c.Graph.ComponentCount())

			for i, s := range res.Steps {
				assert.Equal(t, i, s.Index)
				assert.Len(t, s.Consumed, 2)
				assert.NotEqual(t, reduce.OpPrune, s.Op)
			}

			z, err := res.Replay()
			require.NoError(t, err, "seed %d", seed)
			assert.True(t, z.Equal(res.Impedance), "seed %d: replay %v != %v", seed, z, res.Impedance)
		}
	}
}

func TestReduce_IrreducibleTopologies(t *testing.T) {
	cases := []struct {
		name string
		cons []builder.Constructor
	}{
		{"bridge", []builder.Constructor{builder.Bridge()}},
		{"delta", []builder.Constructor{builder.Delta()}},
		{"bridge behind series", []builder.Constructor{builder.SeriesOf(builder.Chain(2), builder.Bridge())}},
		{"delta beside a bank", []builder.Constructor{builder.Delta(), builder.Bank(3)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := build(t, []builder.BuilderOption{builder.WithSeed(3), builder.WithUniformResistance(1, 10)}, tc.cons...)
			res, err := reduce.Reduce(c.Graph, query(c, omega50Hz))
			require.NoError(t, err)
			assert.Equal(t, reduce.Unreducible, res.State)
			assert.Equal(t, reduce.ReasonIrreducible, res.Reason)
			assert.Equal(t, core.NoComponent, res.Edge)

			_, err = res.Replay()
			assert.ErrorIs(t, err, reduce.ErrNotFixed)
		})
	}
}

func TestReduce_Disconnected(t *testing.T) {
	g := core.NewGraph()
	ids := nodes(t, g, "S", "T", "x")
	link(t, g, ids[0], ids[2], component.Resistor{R: 1})

	res, err := reduce.Reduce(g, reduce.Query{Source: ids[0], Target: ids[1]})
	require.NoError(t, err)
	assert.Equal(t, reduce.Unreducible, res.State)
	assert.Equal(t, reduce.ReasonDisconnected, res.Reason)
	assert.Empty(t, res.Steps)
}

// TestReduce_TerminalIsNotContracted queries A–B on the chain A─B─C; B has
// degree 2 but is a terminal, and the B─C branch carries no current.
func TestReduce_TerminalIsNotContracted(t *testing.T) {
	g := core.NewGraph()
	ids := nodes(t, g, "A", "B", "C")
	ab := link(t, g, ids[0], ids[1], component.Resistor{R: 10})
	link(t, g, ids[1], ids[2], component.Resistor{R: 20})

	res, err := reduce.Reduce(g, reduce.Query{Source: ids[0], Target: ids[1]})
	require.NoError(t, err)
	assert.Equal(t, reduce.Fixed, res.State)
	assert.Equal(t, ab, res.Edge)
	assert.True(t, res.Impedance.Equal(impedance.Real(10)))
	assert.Empty(t, res.Steps)
	assert.True(t, g.HasNode(ids[1]))
}

func TestReduce_GroundIsNotContracted(t *testing.T) {
	g := core.NewGraph()
	ids := nodes(t, g, "S", "T")
	gnd, err := g.AddNode("0", core.WithGround())
	require.NoError(t, err)
	link(t, g, ids[0], gnd, component.Resistor{R: 10})
	link(t, g, gnd, ids[1], component.Resistor{R: 10})

	res, err := reduce.Reduce(g, reduce.Query{Source: ids[0], Target: ids[1]})
	require.NoError(t, err)
	assert.Equal(t, reduce.Unreducible, res.State)
	assert.Equal(t, reduce.ReasonIrreducible, res.Reason)
	assert.Empty(t, res.Steps)
	assert.True(t, g.HasNode(gnd))
}

func TestReduce_Idempotent(t *testing.T) {
	c := build(t, []builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSeriesParallel(25))
	q := query(c, omega50Hz)

	first, err := reduce.Reduce(c.Graph, q)
	require.NoError(t, err)
	require.Equal(t, reduce.Fixed, first.State)

	second, err := reduce.Reduce(c.Graph, q)
	require.NoError(t, err)
	assert.Equal(t, reduce.Fixed, second.State)
	assert.Empty(t, second.Steps)
	assert.Equal(t, 1, second.Iterations)
	assert.Equal(t, first.Edge, second.Edge)
	assert.True(t, second.Impedance.Equal(first.Impedance))
}

func TestReduce_IterationLimit(t *testing.T) {
	c := build(t, nil, builder.Ladder(3))

	res, err := reduce.Reduce(c.Graph, query(c, 0), reduce.WithMaxIterations(1))
	require.ErrorIs(t, err, reduce.ErrIterationLimit)
	require.NotNil(t, res)
	assert.Equal(t, reduce.Scanning, res.State)
	assert.Equal(t, 1, res.Iterations)
	assert.NotEmpty(t, res.Steps)

	// The partial graph still reduces to completion.
	res, err = reduce.Reduce(c.Graph, query(c, 0))
	require.NoError(t, err)
	assert.Equal(t, reduce.Fixed, res.State)
}

// TestReduce_IterationLimitCountsConfirmingPass pins the bound: Chain(2)
// reduces in one iteration and confirms the fixed point in a second.
func TestReduce_IterationLimitCountsConfirmingPass(t *testing.T) {
	c := build(t, nil, builder.Chain(2))
	res, err := reduce.Reduce(c.Graph.Clone(), query(c, 0), reduce.WithMaxIterations(1))
	require.ErrorIs(t, err, reduce.ErrIterationLimit)
	assert.Len(t, res.Steps, 1)

	res, err = reduce.Reduce(c.Graph, query(c, 0), reduce.WithMaxIterations(2))
	require.NoError(t, err)
	assert.Equal(t, reduce.Fixed, res.State)
	assert.Equal(t, 2, res.Iterations)
}

func TestReduce_OnStep(t *testing.T) {
	c := build(t, []builder.BuilderOption{builder.WithSeed(4)}, builder.RandomSeriesParallel(12))

	var seen []reduce.Step
	res, err := reduce.Reduce(c.Graph, query(c, 0), reduce.WithOnStep(func(s reduce.Step) {
		seen = append(seen, s)
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Steps, seen)
}

func TestReduce_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := build(t, nil, builder.SeriesOf(builder.Leaf(), builder.Bank(2)))

	_, err := reduce.Reduce(c.Graph, query(c, 0), reduce.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="reduce: step"`)
	assert.Contains(t, out, "op=parallel")
	assert.Contains(t, out, "op=series")
	assert.Contains(t, out, "to=series-pass")
	assert.Contains(t, out, `msg="reduce: done"`)
	assert.Contains(t, out, "state=fixed")
}

func TestReduce_Errors(t *testing.T) {
	g := core.NewGraph()
	ids := nodes(t, g, "S", "T")
	link(t, g, ids[0], ids[1], component.Resistor{R: 1})
	link(t, g, ids[0], ids[1], component.Capacitor{C: 1})

	cases := []struct {
		name string
		g    *core.Graph
		q    reduce.Query
		want error
	}{
		{"nil graph", nil, reduce.Query{}, reduce.ErrGraphNil},
		{"same terminal", g, reduce.Query{Source: ids[0], Target: ids[0]}, reduce.ErrSameTerminal},
		{"unknown source", g, reduce.Query{Source: 42, Target: ids[1]}, core.ErrUnknownNode},
		{"unknown target", g, reduce.Query{Source: ids[0], Target: -3}, core.ErrUnknownNode},
		{"negative omega", g, reduce.Query{Source: ids[0], Target: ids[1], Omega: -1}, component.ErrInvalidComponent},
		{"NaN omega", g, reduce.Query{Source: ids[0], Target: ids[1], Omega: math.NaN()}, component.ErrInvalidComponent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := reduce.Reduce(tc.g, tc.q)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, res)
			assert.Equal(t, 2, g.ComponentCount(), "a rejected query must not touch the graph")
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { reduce.WithLogger(nil) })
	assert.Panics(t, func() { reduce.WithMaxIterations(0) })
	assert.NotPanics(t, func() { reduce.WithMaxIterations(1) })
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "series", reduce.OpSeries.String())
	assert.Equal(t, "parallel", reduce.OpParallel.String())
	assert.Equal(t, "prune", reduce.OpPrune.String())
	assert.Equal(t, "op(0)", reduce.Op(0).String())
	assert.Equal(t, "scanning", reduce.Scanning.String())
	assert.Equal(t, "parallel-pass", reduce.ParallelPass.String())
	assert.Equal(t, "unreducible", reduce.Unreducible.String())
	assert.Equal(t, "disconnected", reduce.ReasonDisconnected.String())
}

// TestReduce_IndependentGraphsConcurrently reduces separate graphs on
// separate goroutines, to surface races under -race.
func TestReduce_IndependentGraphsConcurrently(t *testing.T) {
	const workers = 8
	var wg sync.WaitGroup
	results := make([]*reduce.Result, workers)
	errs := make([]error, workers)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			c, err := builder.BuildCircuit([]builder.BuilderOption{builder.WithSeed(int64(i))}, builder.RandomSeriesParallel(30))
			if err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = reduce.Reduce(c.Graph, query(c, omega50Hz))
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, reduce.Fixed, results[i].State)
		assert.Len(t, results[i].Steps, 29)
	}
}
