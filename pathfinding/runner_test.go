package pathfinding_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/logging"
	"github.com/jakhac/graph-algorithms/metrics"
	"github.com/jakhac/graph-algorithms/pathfinding"
	"github.com/jakhac/graph-algorithms/trace"
)

// detour builds A→B(1), B→C(1), A→C(5) with A as start and C as finish.
func detour(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		_, err := g.AddNode(i*100, 0)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 5)
	require.NoError(t, err)
	require.NoError(t, g.SetStart("A"))
	require.NoError(t, g.SetFinish("C"))

	return g
}

func steps(ss []trace.Step) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.String()
	}

	return out
}

func TestRunner_Solve(t *testing.T) {
	var buf bytes.Buffer
	reg := metrics.NewRegistry()
	r := pathfinding.NewRunner(
		pathfinding.WithLogger(logging.New("json", "info", &buf)),
		pathfinding.WithMetrics(reg),
	)

	replay, err := r.Solve(context.Background(), detour(t), pathfinding.Dijkstra)
	require.NoError(t, err)

	assert.Equal(t, trace.Success, replay.Outcome)
	assert.EqualValues(t, 2, replay.Cost)
	assert.Equal(t, []string{"A", "A→B", "B", "B→C", "C"}, steps(replay.Path))
	assert.Equal(t, 2, replay.EdgeSteps())

	_, err = uuid.Parse(replay.RunID)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"search finished"`)
	assert.Contains(t, buf.String(), replay.RunID)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.SearchesTotal.WithLabelValues("dijkstra", "success")))
}

func TestRunner_EveryAlgorithm(t *testing.T) {
	r := pathfinding.NewRunner()
	g := detour(t)
	for _, alg := range pathfinding.All() {
		replay, err := r.Solve(context.Background(), g, alg)
		require.NoError(t, err, alg.String())
		assert.Equal(t, trace.Success, replay.Outcome, alg.String())
		require.NotEmpty(t, replay.Steps, alg.String())
		assert.Equal(t, trace.StepSingle, replay.Steps[0].Kind, alg.String())
	}
}

func TestRunner_SnapshotIsolation(t *testing.T) {
	g := detour(t)
	replay, err := pathfinding.NewRunner().Solve(context.Background(), g, pathfinding.BreadthFirst)
	require.NoError(t, err)

	require.NoError(t, g.RemoveNode("B"))
	assert.Equal(t, []string{"A", "A→B", "B", "B→C", "C"}, steps(replay.Path))
}

func TestRunner_Errors(t *testing.T) {
	r := pathfinding.NewRunner()
	ctx := context.Background()

	_, err := r.Solve(ctx, nil, pathfinding.Dijkstra)
	assert.ErrorIs(t, err, pathfinding.ErrNilGraph)

	_, err = r.Solve(ctx, core.NewGraph(), pathfinding.Dijkstra)
	assert.ErrorIs(t, err, pathfinding.ErrNoStart)
	assert.ErrorIs(t, err, pathfinding.ErrNoFinish)

	g := detour(t)
	g.ClearFinish()
	_, err = r.Solve(ctx, g, pathfinding.Dijkstra)
	assert.ErrorIs(t, err, pathfinding.ErrNoFinish)
	assert.NotErrorIs(t, err, pathfinding.ErrNoStart)

	_, err = r.Solve(ctx, detour(t), pathfinding.Algorithm(7))
	assert.ErrorIs(t, err, pathfinding.ErrUnknownAlgorithm)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = r.Solve(canceled, detour(t), pathfinding.DepthFirst)
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { pathfinding.WithLogger(nil) })
	assert.Panics(t, func() { pathfinding.WithMetrics(nil) })
}
