package pathfinding

import (
	"context"
	"fmt"

	"github.com/jakhac/graph-algorithms/adjacency"
	"github.com/jakhac/graph-algorithms/astar"
	"github.com/jakhac/graph-algorithms/bfs"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/dfs"
	"github.com/jakhac/graph-algorithms/dijkstra"
	"github.com/jakhac/graph-algorithms/greedy"
	"github.com/jakhac/graph-algorithms/trace"
)

// Run executes alg over m. nodes supplies coordinates for AStar and is
// ignored by the other searches.
//
// A start without outgoing arcs short-circuits: no search runs and the result
// is NoPath with a trace holding only the start and zero iterations.
func Run(alg Algorithm, m *adjacency.Mapping, nodes []*core.Node) (*trace.Result, error) {
	return RunContext(context.Background(), alg, m, nodes)
}

// RunContext is Run with a context that bounds the exhaustive searches.
func RunContext(ctx context.Context, alg Algorithm, m *adjacency.Mapping, nodes []*core.Node) (*trace.Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.OutDegree(m.Start) == 0 {
		return trace.NoPathResult(trace.Trace{trace.Node(m.Start)}, 0), nil
	}

	switch alg {
	case Dijkstra:
		return dijkstra.Search(m)
	case Greedy:
		return greedy.Naive(m)
	case SmartGreedy:
		return greedy.AvoidRevisits(m)
	case DepthFirst:
		return dfs.Search(m, dfs.WithContext(ctx))
	case BreadthFirst:
		return bfs.Search(m, bfs.WithContext(ctx))
	case AStar:
		return astar.Search(m, nodes)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, alg)
	}
}
