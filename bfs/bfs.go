package bfs

import (
	"fmt"
	"slices"

	"github.com/jakhac/graph-algorithms/adjacency"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/trace"
)

// entry is one queued partial path.
type entry struct {
	path []core.Label
	cost int64
}

// Search enumerates the simple paths of m breadth-first.
//
// Iterations counts dequeued paths, including those that already hold the
// finish and are not extended.
//
// Errors:
//   - adjacency validation errors for a nil or incomplete mapping.
//   - ErrCanceled (wrapping the context error) when opts' context ends.
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

	// 3) Level-order expansion over a growing queue.
	queue := []entry{{path: []core.Label{m.Start}}}
	best := -1
	iterations := 0
	for i := 0; i < len(queue); i++ {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
		}
		cur := queue[i]
		iterations++
		cfg.OnDequeue(cur.path)

		if slices.Contains(cur.path, m.Finish) {
			continue
		}
		last := cur.path[len(cur.path)-1]
		for _, a := range m.Arcs(last) {
			if slices.Contains(cur.path, a.To) {
				continue
			}
			next := entry{path: extend(cur.path, a.To), cost: cur.cost + a.Cost}
			queue = append(queue, next)
			if a.To == m.Finish && (best < 0 || next.cost < queue[best].cost) {
				best = len(queue) - 1
			}
		}
	}

	// 4) Trace and result.
	tr := buildTrace(queue)
	if best < 0 {
		return trace.NoPathResult(tr, iterations), nil
	}

	return &trace.Result{
		Outcome:    trace.Success,
		Path:       queue[best].path,
		Trace:      tr,
		Cost:       queue[best].cost,
		Iterations: iterations,
	}, nil
}

func buildTrace(queue []entry) trace.Trace {
	tr := trace.Trace{trace.Control(trace.KindSingleDraw)}
	for i, e := range queue {
		if i == 0 {
			tr = tr.AppendPath(e.path)
			tr = append(tr, trace.Control(trace.KindFullDraw))
			continue
		}
		last := len(e.path) - 1
		tr = tr.AppendPath(e.path[:last])
		tr = append(tr, trace.Control(trace.KindSingleDrawEdge), trace.Node(e.path[last]), trace.Control(trace.KindFullDraw))
	}

	return tr
}

func extend(path []core.Label, l core.Label) []core.Label {
	out := make([]core.Label, len(path), len(path)+1)
	copy(out, path)

	return append(out, l)
}
