package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakhac/graph-algorithms/adjacency"
	"github.com/jakhac/graph-algorithms/builder"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/dijkstra"
	"github.com/jakhac/graph-algorithms/trace"
)

// reachable reports whether the finish of g can be reached from its start.
func reachable(t *testing.T, g *core.Graph) bool {
	t.Helper()
	m, err := adjacency.Encode(g)
	require.NoError(t, err)
	res, err := dijkstra.Search(m)
	require.NoError(t, err)

	return res.Outcome == trace.Success
}

// edgeSignature renders the edge list for determinism checks.
func edgeSignature(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, string(e.From.Label)+">"+string(e.To.Label))
	}

	return out
}

func TestLattice_Sizes(t *testing.T) {
	for _, size := range []builder.Size{builder.Small, builder.Medium, builder.Large} {
		t.Run(size.String(), func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.Lattice(size))
				require.NoError(t, err)

				nodes := g.Nodes()
				require.GreaterOrEqual(t, len(nodes), 9)
				assert.Same(t, nodes[0], g.Start())
				assert.Same(t, nodes[len(nodes)-1], g.Finish())
				assert.True(t, reachable(t, g), "seed %d", seed)
				for _, e := range g.Edges() {
					assert.GreaterOrEqual(t, e.Cost, builder.DefaultMinCost)
					assert.LessOrEqual(t, e.Cost, builder.DefaultMaxCost)
					assert.False(t, e.From.X > e.To.X+2, "edges never run left")
				}
			}
		})
	}
}

func TestCircle_Topology(t *testing.T) {
	cases := []struct {
		size         builder.Size
		nodes, edges int
	}{
		{builder.Small, 14, 18},
		{builder.Medium, 26, 43},
		{builder.Large, 26, 43},
	}
	for _, tc := range cases {
		t.Run(tc.size.String(), func(t *testing.T) {
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.Circle(tc.size))
			require.NoError(t, err)

			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Equal(t, core.Label("A"), g.Start().Label)
			assert.Equal(t, 2, g.Start().X)
			assert.Same(t, g.Nodes()[tc.nodes-1], g.Finish())
			assert.True(t, reachable(t, g))
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for seed := int64(1); seed < 10; seed++ {
		a, err := builder.Generate(builder.Medium, builder.WithSeed(seed))
		require.NoError(t, err)
		b, err := builder.Generate(builder.Medium, builder.WithSeed(seed))
		require.NoError(t, err)

		assert.Equal(t, edgeSignature(a), edgeSignature(b))
		for i, e := range a.Edges() {
			assert.Equal(t, e.Cost, b.Edges()[i].Cost)
		}
	}
}

func TestBuild_CostOptions(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithCostFn(builder.ConstantCostFn(9))},
		builder.Circle(builder.Small))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, 9, e.Cost)
	}

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithDistanceCosts()},
		builder.Lattice(builder.Small))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, core.DistanceCost(e.From, e.To), e.Cost)
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Lattice(builder.Medium))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Generate(builder.Medium)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	seed := []builder.BuilderOption{builder.WithSeed(1)}
	_, err = builder.BuildGraph(nil, seed, builder.Circle(builder.Size(9)))
	assert.ErrorIs(t, err, builder.ErrUnknownSize)

	_, err = builder.BuildGraph(nil, append(seed, builder.WithCanvas(10, 5)), builder.Lattice(builder.Small))
	assert.ErrorIs(t, err, builder.ErrCanvasTooSmall)
	_, err = builder.BuildGraph(nil, append(seed, builder.WithCanvas(10, 5)), builder.Circle(builder.Small))
	assert.ErrorIs(t, err, builder.ErrCanvasTooSmall)

	_, err = builder.BuildGraph(nil, seed, builder.Circle(builder.Small), builder.Circle(builder.Small))
	assert.ErrorIs(t, err, builder.ErrGraphNotEmpty)

	_, err = builder.BuildGraph(nil, seed, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	// A huge canvas needs more labels than exist.
	_, err = builder.BuildGraph(nil, append(seed, builder.WithCanvas(2000, 40)), builder.Lattice(builder.Large))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrCapacity)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.WithCanvas(0, 10) })
	assert.Panics(t, func() { builder.ConstantCostFn(-1) })
	assert.Panics(t, func() { builder.UniformCostFn(5, 4) })
}

func TestCostFns(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		c := builder.DefaultCostFn(rng)
		require.GreaterOrEqual(t, c, 1)
		require.LessOrEqual(t, c, 20)
	}
	assert.Equal(t, builder.DefaultMinCost, builder.DefaultCostFn(nil))

	u := builder.UniformCostFn(3, 3)
	assert.Equal(t, 3, u(rng))
	assert.Equal(t, 4, builder.UniformCostFn(4, 9)(nil))
}

func TestParseSize(t *testing.T) {
	for in, want := range map[string]builder.Size{"s": builder.Small, "Medium": builder.Medium, "": builder.Medium, "l": builder.Large} {
		got, err := builder.ParseSize(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := builder.ParseSize("xl")
	assert.ErrorIs(t, err, builder.ErrUnknownSize)
}
