// Package astar implements the heuristic best-first search: the dijkstra
// search ranked by known cost plus the straight-line estimate to the finish.
//
// The estimate for a node v is round(dist(v, finish) - 2), where dist is the
// Euclidean distance on the canvas and halves round up; the finish itself is
// estimated at 0. The search stops right after processing the finish.
package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakhac/graph-algorithms/adjacency"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/dijkstra"
	"github.com/jakhac/graph-algorithms/trace"
)

// ErrNoCoordinates indicates the finish node is missing from the node list
// the heuristic is computed from.
var ErrNoCoordinates = errors.New("astar: finish node has no coordinates")

// Search runs the heuristic search over m, reading node positions from nodes.
func Search(m *adjacency.Mapping, nodes []*core.Node) (*trace.Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var finish *core.Node
	for _, n := range nodes {
		if n.Label == m.Finish {
			finish = n
			break
		}
	}
	if finish == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoCoordinates, m.Finish)
	}

	return dijkstra.Search(m, dijkstra.WithHeuristic(Heuristic(nodes, finish)))
}

// Heuristic precomputes the estimate for every node in nodes. Labels not in
// nodes are estimated at 0.
func Heuristic(nodes []*core.Node, finish *core.Node) dijkstra.Heuristic {
	h := make(map[core.Label]int64, len(nodes))
	for _, n := range nodes {
		if n.Label == finish.Label {
			h[n.Label] = 0
			continue
		}
		h[n.Label] = Estimate(n, finish)
	}

	return func(l core.Label) int64 { return h[l] }
}

// Estimate returns round(dist(n, finish) - 2) with halves rounded up.
func Estimate(n, finish *core.Node) int64 {
	return int64(math.Floor(core.Distance(n, finish) - 2 + 0.5))
}
