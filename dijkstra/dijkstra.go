package dijkstra

import (
	"github.com/jakhac/graph-algorithms/adjacency"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/trace"
)

// Search runs the label-correcting search over m.
//
// Returns a Success result with the cheapest start→finish path, or NoPath when
// the finish is never reached. Iterations counts processed nodes.
//
// Preconditions (validated in order):
//  1. m must be non-nil (adjacency.ErrNilMapping).
//  2. m must hold its start and finish (adjacency.ErrNoStart / ErrNoFinish).
//  3. every arc must target a node of m (adjacency.ErrUnknownLabel).
func Search(m *adjacency.Mapping, opts ...Option) (*trace.Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the mapping.
	if err := m.Validate(); err != nil {
		return nil, err
	}

	// 3) Seed the cost table and run.
	r := &runner{
		m:         m,
		options:   cfg,
		cost:      make(map[core.Label]int64, m.Len()),
		parent:    make(map[core.Label]core.Label, m.Len()),
		processed: make(map[core.Label]bool, m.Len()),
		tr:        trace.Trace{trace.Control(trace.KindSingleDraw)},
	}
	r.init()
	r.process()

	// 4) Assemble the result.
	if !r.processed[m.Finish] {
		return trace.NoPathResult(r.tr, r.iterations), nil
	}

	return &trace.Result{
		Outcome:    trace.Success,
		Path:       r.pathTo(m.Finish),
		Trace:      r.tr,
		Cost:       r.cost[m.Finish],
		Iterations: r.iterations,
	}, nil
}

// runner holds the mutable state of one search.
type runner struct {
	m       *adjacency.Mapping
	options Options

	order     []core.Label          // cost-table insertion order
	cost      map[core.Label]int64  // known costs; absent means unknown
	parent    map[core.Label]core.Label
	processed map[core.Label]bool

	tr         trace.Trace
	iterations int
}

// init places the finish first in the table, then the start's neighbours.
func (r *runner) init() {
	r.order = append(r.order, r.m.Finish)
	r.processed[r.m.Start] = true
	for _, a := range r.m.Arcs(r.m.Start) {
		r.relaxArc(r.m.Start, a)
	}
}

// process repeatedly expands the best candidate until the finish is
// processed or no candidate is left.
func (r *runner) process() {
	for {
		node, ok := r.lowest()
		if !ok {
			return
		}
		r.iterations++
		for _, a := range r.m.Arcs(node) {
			r.relaxArc(node, a)
		}
		r.processed[node] = true
		r.appendSegment(r.pathTo(node))

		if node == r.m.Finish {
			return
		}
	}
}

// relaxArc records from→a.To when it is the first or a strictly cheaper way in.
// The start and processed nodes are never updated.
func (r *runner) relaxArc(from core.Label, a adjacency.Arc) {
	if a.To == r.m.Start || r.processed[a.To] {
		return
	}
	c := r.cost[from] + a.Cost
	old, known := r.cost[a.To]
	if known && c >= old {
		return
	}
	if !known && a.To != r.m.Finish {
		r.order = append(r.order, a.To)
	}
	r.cost[a.To] = c
	r.parent[a.To] = from
}

// lowest returns the first unprocessed known label of minimal rank.
func (r *runner) lowest() (core.Label, bool) {
	var (
		best     core.Label
		bestRank int64
		found    bool
	)
	for _, l := range r.order {
		if r.processed[l] {
			continue
		}
		c, known := r.cost[l]
		if !known {
			continue
		}
		rank := c
		if r.options.Heuristic != nil {
			rank += r.options.Heuristic(l)
		}
		if !found || rank < bestRank {
			best, bestRank, found = l, rank, true
		}
	}

	return best, found
}

// pathTo follows parents back to the start.
func (r *runner) pathTo(l core.Label) []core.Label {
	path := []core.Label{l}
	for cur := l; cur != r.m.Start && len(path) <= len(r.order)+1; {
		cur = r.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// appendSegment records p[:k-1], singleDrawEdge, p[k-1], fullDraw.
func (r *runner) appendSegment(p []core.Label) {
	last := len(p) - 1
	r.tr = r.tr.AppendPath(p[:last])
	r.tr = append(r.tr, trace.Control(trace.KindSingleDrawEdge), trace.Node(p[last]), trace.Control(trace.KindFullDraw))
}
