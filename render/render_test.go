package render_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakhac/graph-algorithms/animate"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/pathfinding"
	"github.com/jakhac/graph-algorithms/render"
)

// shortcut builds A→B(1), B→C(1), A→C(5) with A as start and C as finish.
func shortcut(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		_, err := g.AddNode(i*10, i)
		require.NoError(t, err)
	}
	for _, e := range []struct {
		from, to core.Label
		cost     int
	}{{"A", "B", 1}, {"B", "C", 1}, {"A", "C", 5}} {
		_, err := g.AddEdge(e.from, e.to, e.cost)
		require.NoError(t, err)
	}
	require.NoError(t, g.SetStart("A"))
	require.NoError(t, g.SetFinish("C"))

	return g
}

func TestRecorder_Playback(t *testing.T) {
	g := shortcut(t)
	replay, err := pathfinding.NewRunner().Solve(context.Background(), g, pathfinding.DepthFirst)
	require.NoError(t, err)

	var out bytes.Buffer
	rec := render.NewRecorder(&out)
	sched := animate.NewManualScheduler()
	p := animate.NewPlayer(rec, animate.WithScheduler(sched))
	require.NoError(t, p.Start(replay))
	sched.Drain(1000)

	lines := rec.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "draw A", lines[0])
	assert.Equal(t, "highlight C success", lines[len(lines)-1])
	assert.Equal(t, animate.Terminated, rec.Status().State)
	assert.Equal(t, animate.StatusSuccess, rec.Status().Status)
	assert.Equal(t, len(lines), bytes.Count(out.Bytes(), []byte("\n")))
}

func TestHTML_Colors(t *testing.T) {
	g := shortcut(t)
	replay, err := pathfinding.NewRunner().Solve(context.Background(), g, pathfinding.Dijkstra)
	require.NoError(t, err)

	h := render.NewHTML(g, "dijkstra")
	assert.Equal(t, "#fb8c00", h.NodeColor("A"), "start before playback")

	p := animate.NewPlayer(h, animate.WithScheduler(animate.NewManualScheduler()))
	require.NoError(t, p.RevealInstant(replay))
	for _, l := range []core.Label{"A", "B", "C"} {
		assert.Equal(t, "#43a047", h.NodeColor(l), string(l))
	}

	var buf bytes.Buffer
	require.NoError(t, h.Render(&buf))
	page := buf.String()
	assert.Contains(t, page, "echarts")
	assert.Contains(t, page, "dijkstra")
	assert.Contains(t, page, "#43a047")

	h.RedrawAll()
	assert.Equal(t, "#9e9e9e", h.NodeColor("B"))
}

func TestHTML_RenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.html")
	require.NoError(t, render.NewHTML(shortcut(t), "graph").RenderToFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, render.NewHTML(shortcut(t), "graph").RenderToFile(filepath.Join(t.TempDir(), "missing", "x.html")))
}
