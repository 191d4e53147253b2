package pathfinding_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/jakhac/graph-algorithms/adjacency"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/pathfinding"
	"github.com/jakhac/graph-algorithms/trace"
)

// randomMapping builds a mapping of n nodes, start first and finish last, with
// each ordered pair connected at the given density.
func randomMapping(seed int64, n int) *adjacency.Mapping {
	rng := rand.New(rand.NewSource(seed))
	m := adjacency.New(core.LabelAt(0), core.LabelAt(n-1))
	for i := 1; i < n-1; i++ {
		m.AddNode(core.LabelAt(i))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Intn(3) == 0 {
				m.AddArc(core.LabelAt(i), core.LabelAt(j), int64(rng.Intn(10)))
			}
		}
	}

	return m
}

func TestSearchProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// Property 1: the exhaustive searches and Dijkstra agree on reachability
	// and on the optimal cost.
	properties.Property("optimal searches agree", prop.ForAll(
		func(seed int64, n int) bool {
			m := randomMapping(seed, n)
			want, err := pathfinding.Run(pathfinding.Dijkstra, m, nil)
			if err != nil {
				return false
			}
			for _, alg := range []pathfinding.Algorithm{pathfinding.DepthFirst, pathfinding.BreadthFirst} {
				got, err := pathfinding.Run(alg, m, nil)
				if err != nil || got.Outcome != want.Outcome {
					return false
				}
				if got.HasCost() && got.Cost != want.Cost {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(2, 7),
	))

	// Property 2: a success path starts at start, ends at finish and its arc
	// costs add up to Cost.
	properties.Property("success paths are consistent", prop.ForAll(
		func(seed int64, n int) bool {
			m := randomMapping(seed, n)
			for _, alg := range pathfinding.All() {
				if alg == pathfinding.AStar {
					continue
				}
				res, err := pathfinding.Run(alg, m, nil)
				if err != nil {
					return false
				}
				if res.Outcome != trace.Success {
					continue
				}
				p := res.Path
				if p[0] != m.Start || p[len(p)-1] != m.Finish {
					return false
				}
				var sum int64
				for i := 1; i < len(p); i++ {
					c, ok := m.Cost(p[i-1], p[i])
					if !ok {
						return false
					}
					sum += c
				}
				if sum != res.Cost {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(2, 7),
	))

	// Property 3: the greedy walks stop within one step per node and never
	// report NoPath once the start has an arc.
	properties.Property("greedy walks terminate", prop.ForAll(
		func(seed int64, n int) bool {
			m := randomMapping(seed, n)
			for _, alg := range []pathfinding.Algorithm{pathfinding.Greedy, pathfinding.SmartGreedy} {
				res, err := pathfinding.Run(alg, m, nil)
				if err != nil || res.Iterations > m.Len() {
					return false
				}
				if m.OutDegree(m.Start) > 0 && res.Outcome == trace.NoPath {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(2, 7),
	))

	// Property 4: runs are deterministic.
	properties.Property("same input, same trace", prop.ForAll(
		func(seed int64, n int, pick int) bool {
			alg := pathfinding.All()[pick]
			if alg == pathfinding.AStar {
				return true
			}
			a, errA := pathfinding.Run(alg, randomMapping(seed, n), nil)
			b, errB := pathfinding.Run(alg, randomMapping(seed, n), nil)
			return errA == nil && errB == nil && a.Trace.String() == b.Trace.String()
		},
		gen.Int64(),
		gen.IntRange(2, 7),
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}
