// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// determinism and error reporting.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/zreduce/builder"
	"github.com/katalvlaran/zreduce/component"
	"github.com/katalvlaran/zreduce/core"
)

// degreeOf returns the degree of the node called name, failing the test if absent.
func degreeOf(t *testing.T, g *core.Graph, name string) int {
	t.Helper()
	id, ok := g.Lookup(name)
	if !ok {
		t.Fatalf("node %q not found", name)
	}
	d, err := g.Degree(id)
	if err != nil {
		t.Fatalf("Degree(%q): %v", name, err)
	}
	return d
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantN       int // expected number of nodes, terminals included
		wantC       int // expected number of components
		sampleCheck func(t *testing.T, c *builder.Circuit)
	}{
		{
			name:  "Element",
			ctor:  builder.Element(component.Capacitor{C: 1e-6}),
			wantN: 2, wantC: 1,
			sampleCheck: func(t *testing.T, c *builder.Circuit) {
				ids := c.Graph.Between(c.Source, c.Target)
				if len(ids) != 1 {
					t.Fatalf("Element: expected one S-T component, got %v", ids)
				}
				comp, _ := c.Graph.Component(ids[0])
				if comp.Name != "C1" {
					t.Errorf("Element: expected name C1, got %q", comp.Name)
				}
			},
		},
		{
			name:  "Chain(3)",
			ctor:  builder.Chain(3),
			wantN: 4, wantC: 3,
			sampleCheck: func(t *testing.T, c *builder.Circuit) {
				for _, n := range []string{"n2", "n3"} {
					if d := degreeOf(t, c.Graph, n); d != 2 {
						t.Errorf("Chain: degree(%s) = %d, want 2", n, d)
					}
				}
			},
		},
		{
			name:  "Bank(3)",
			ctor:  builder.Bank(3),
			wantN: 2, wantC: 3,
			sampleCheck: func(t *testing.T, c *builder.Circuit) {
				if got := len(c.Graph.Between(c.Source, c.Target)); got != 3 {
					t.Errorf("Bank: expected 3 parallel components, got %d", got)
				}
			},
		},
		{
			name:  "Ladder(2)",
			ctor:  builder.Ladder(2),
			wantN: 4, wantC: 4,
			sampleCheck: func(t *testing.T, c *builder.Circuit) {
				if d := degreeOf(t, c.Graph, "n2"); d != 3 {
					t.Errorf("Ladder: degree(n2) = %d, want 3", d)
				}
				if d := degreeOf(t, c.Graph, "n3"); d != 2 {
					t.Errorf("Ladder: degree(n3) = %d, want 2", d)
				}
				if d := degreeOf(t, c.Graph, "T"); d != 2 {
					t.Errorf("Ladder: degree(T) = %d, want 2", d)
				}
			},
		},
		{
			name:  "Bridge",
			ctor:  builder.Bridge(),
			wantN: 4, wantC: 5,
			sampleCheck: func(t *testing.T, c *builder.Circuit) {
				for _, n := range []string{"n2", "n3"} {
					if d := degreeOf(t, c.Graph, n); d != 3 {
						t.Errorf("Bridge: degree(%s) = %d, want 3", n, d)
					}
				}
			},
		},
		{
			name:  "Delta",
			ctor:  builder.Delta(),
			wantN: 4, wantC: 6,
			sampleCheck: func(t *testing.T, c *builder.Circuit) {
				for _, n := range []string{"S", "T", "n2", "n3"} {
					if d := degreeOf(t, c.Graph, n); d != 3 {
						t.Errorf("Delta: degree(%s) = %d, want 3", n, d)
					}
				}
			},
		},
		{
			name:  "Stub(2)",
			ctor:  builder.Stub(2),
			wantN: 4, wantC: 2,
			sampleCheck: func(t *testing.T, c *builder.Circuit) {
				if d := degreeOf(t, c.Graph, "T"); d != 0 {
					t.Errorf("Stub: degree(T) = %d, want 0", d)
				}
				if d := degreeOf(t, c.Graph, "n3"); d != 1 {
					t.Errorf("Stub: degree(n3) = %d, want 1", d)
				}
			},
		},
		{
			name:  "SeriesOf(Leaf,Bank(2))",
			ctor:  builder.SeriesOf(builder.Leaf(), builder.Bank(2)),
			wantN: 3, wantC: 3,
			sampleCheck: func(t *testing.T, c *builder.Circuit) {
				x, _ := c.Graph.Lookup("n2")
				if got := len(c.Graph.Between(x, c.Target)); got != 2 {
					t.Errorf("SeriesOf: expected bank of 2 between n2 and T, got %d", got)
				}
			},
		},
		{
			name:  "ParallelOf(Chain(2),Leaf)",
			ctor:  builder.ParallelOf(builder.Chain(2), builder.Leaf()),
			wantN: 3, wantC: 3,
			sampleCheck: func(t *testing.T, c *builder.Circuit) {
				if got := len(c.Graph.Between(c.Source, c.Target)); got != 1 {
					t.Errorf("ParallelOf: expected one direct S-T component, got %d", got)
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := builder.BuildCircuit(nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildCircuit(%s) returned error: %v", tc.name, err)
			}
			if got := c.Graph.NodeCount(); got != tc.wantN {
				t.Errorf("nodes: got %d, want %d", got, tc.wantN)
			}
			if got := c.Graph.ComponentCount(); got != tc.wantC {
				t.Errorf("components: got %d, want %d", got, tc.wantC)
			}
			tc.sampleCheck(t, c)

			// idempotence: rerun on a fresh circuit
			c2, err := builder.BuildCircuit(nil, tc.ctor)
			if err != nil {
				t.Fatalf("second BuildCircuit(%s) returned error: %v", tc.name, err)
			}
			if c2.Graph.NodeCount() != tc.wantN || c2.Graph.ComponentCount() != tc.wantC {
				t.Errorf("idempotence: counts changed after re-run of %s", tc.name)
			}
		})
	}
}

// TestRandomSeriesParallel checks the component count, determinism and the
// degree invariant of random series/parallel networks.
func TestRandomSeriesParallel(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 7, 40} {
		c, err := builder.BuildCircuit([]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSeriesParallel(n))
		if err != nil {
			t.Fatalf("RandomSeriesParallel(%d): %v", n, err)
		}
		if got := c.Graph.ComponentCount(); got != n {
			t.Errorf("RandomSeriesParallel(%d): components = %d", n, got)
		}
		for _, node := range c.Graph.Nodes() {
			if node.ID == c.Source || node.ID == c.Target {
				continue
			}
			if d, _ := c.Graph.Degree(node.ID); d < 2 {
				t.Errorf("RandomSeriesParallel(%d): internal %s has degree %d", n, node.Name, d)
			}
		}
	}

	opts := []builder.BuilderOption{builder.WithSeed(5), builder.WithMixedKinds(1e-3, 10)}
	c1, err1 := builder.BuildCircuit(opts, builder.RandomSeriesParallel(25))
	c2, err2 := builder.BuildCircuit(opts, builder.RandomSeriesParallel(25))
	if err1 != nil || err2 != nil {
		t.Fatalf("determinism builds: %v, %v", err1, err2)
	}
	a, b := c1.Graph.Components(), c2.Graph.Components()
	if len(a) != len(b) {
		t.Fatalf("determinism: %d vs %d components", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("determinism: component %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// TestBuilders_Errors verifies sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Chain(0)", nil, builder.Chain(0), builder.ErrTooFewComponents},
		{"Bank(0)", nil, builder.Bank(0), builder.ErrTooFewComponents},
		{"Ladder(0)", nil, builder.Ladder(0), builder.ErrTooFewComponents},
		{"Stub(0)", nil, builder.Stub(0), builder.ErrTooFewComponents},
		{"SeriesOf()", nil, builder.SeriesOf(), builder.ErrTooFewComponents},
		{"ParallelOf(nil)", nil, builder.ParallelOf(nil), builder.ErrConstructFailed},
		{"RandomSP(0)", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSeriesParallel(0), builder.ErrTooFewComponents},
		{"RandomSP no rng", nil, builder.RandomSeriesParallel(3), builder.ErrNeedRandSource},
		{"Element invalid", nil, builder.Element(component.Resistor{R: -1}), component.ErrInvalidComponent},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildCircuit(tc.opts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		})
	}
}

// TestBuildCircuit_Terminals covers renaming, grounding and Build on an existing graph.
func TestBuildCircuit_Terminals(t *testing.T) {
	t.Parallel()

	c, err := builder.BuildCircuit([]builder.BuilderOption{
		builder.WithTerminalNames("in", "gnd"),
		builder.WithGround(),
	}, builder.Leaf())
	if err != nil {
		t.Fatalf("BuildCircuit: %v", err)
	}
	src, _ := c.Graph.Node(c.Source)
	dst, _ := c.Graph.Node(c.Target)
	if src.Name != "in" || src.Ground {
		t.Errorf("source: got %+v", src)
	}
	if dst.Name != "gnd" || !dst.Ground {
		t.Errorf("target: got %+v", dst)
	}

	// Build attaches a bank next to the existing leaf.
	if err = builder.Build(c.Graph, c.Source, c.Target, nil, builder.Bank(2)); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := len(c.Graph.Between(c.Source, c.Target)); got != 3 {
		t.Errorf("Build: expected 3 parallel components, got %d", got)
	}

	if err = builder.Build(nil, 0, 1, nil, builder.Leaf()); !errors.Is(err, builder.ErrConstructFailed) {
		t.Errorf("Build(nil graph): expected ErrConstructFailed, got %v", err)
	}
}

// TestInternalNamesSkipTaken ensures internal node naming steps over names
// already present in the graph.
func TestInternalNamesSkipTaken(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	a, _ := g.AddNode("n0")
	b, _ := g.AddNode("n2")
	if err := builder.Build(g, a, b, nil, builder.Chain(3)); err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, name := range []string{"n3", "n4"} {
		if _, ok := g.Lookup(name); !ok {
			t.Errorf("expected internal node %q", name)
		}
	}
	if g.NodeCount() != 4 || g.ComponentCount() != 3 {
		t.Errorf("counts: nodes=%d components=%d", g.NodeCount(), g.ComponentCount())
	}
}
