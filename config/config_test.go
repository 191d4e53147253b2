package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakhac/graph-algorithms/builder"
	"github.com/jakhac/graph-algorithms/config"
	"github.com/jakhac/graph-algorithms/pathfinding"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, pathfinding.Dijkstra, cfg.AlgorithmValue())
	assert.Equal(t, 1.0, cfg.SpeedFactor())
	assert.Equal(t, builder.Medium, cfg.SizeValue())
	assert.Equal(t, 500*time.Millisecond, cfg.BaseDelay)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
algorithm: sma
speed: fast
base_delay: 250ms
graph:
  kind: circle
  size: l
  seed: 42
  distance_costs: true
log:
  level: debug
  format: json
metrics:
  addr: localhost:9102
`))
	require.NoError(t, err)

	assert.Equal(t, pathfinding.SmartGreedy, cfg.AlgorithmValue())
	assert.Equal(t, 0.25, cfg.SpeedFactor())
	assert.Equal(t, 250*time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, builder.Large, cfg.SizeValue())
	assert.Equal(t, "circle", cfg.Graph.Kind)
	assert.EqualValues(t, 42, cfg.Graph.Seed)
	assert.True(t, cfg.Graph.DistanceCosts)
	assert.Equal(t, builder.DefaultCanvasWidth, cfg.Graph.Width, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "localhost:9102", cfg.Metrics.Addr)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown algorithm": "algorithm: prim",
		"unknown speed":     "speed: ludicrous",
		"zero delay":        "base_delay: 0s",
		"bad kind":          "graph: {kind: hexagon}",
		"bad size":          "graph: {size: xl}",
		"narrow canvas":     "graph: {width: 10}",
		"bad level":         "log: {level: trace}",
		"bad addr":          "metrics: {addr: nowhere}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("colour: blue"))
	assert.Error(t, err, "unknown keys are rejected")
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: bfs\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, pathfinding.BreadthFirst, cfg.AlgorithmValue())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
