package adjacency

import (
	"errors"

	"github.com/jakhac/graph-algorithms/core"
)

// Encode builds the adjacency mapping of g.
//
// Nodes appear in g's insertion order and every node gets an entry, even
// without outgoing edges. Neighbours follow edge insertion order. A start→start
// arc is never emitted.
//
// Errors:
//   - ErrNoStart, ErrNoFinish: the corresponding endpoint is unset. When both
//     are unset the returned error matches both.
//
// Encode reads g through its public accessors; pass a Clone when g may be
// edited concurrently.
//
// Complexity: O(V + E).
func Encode(g *core.Graph) (*Mapping, error) {
	start, finish := g.Start(), g.Finish()
	var errs []error
	if start == nil {
		errs = append(errs, ErrNoStart)
	}
	if finish == nil {
		errs = append(errs, ErrNoFinish)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	nodes := g.Nodes()
	m := &Mapping{
		Start:  start.Label,
		Finish: finish.Label,
		order:  make([]core.Label, 0, len(nodes)),
		arcs:   make(map[core.Label][]Arc, len(nodes)),
	}
	for _, n := range nodes {
		m.AddNode(n.Label)
	}
	for _, e := range g.Edges() {
		if e.From.Label == m.Start && e.To.Label == m.Start {
			continue
		}
		m.AddArc(e.From.Label, e.To.Label, int64(e.Cost))
	}

	return m, nil
}
