package dfs

import (
	"fmt"
	"slices"

	"github.com/jakhac/graph-algorithms/adjacency"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/trace"
)

// Search enumerates the simple paths of m depth-first.
//
// Iterations counts arcs followed into nodes not yet on the current path.
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

	// 3) Walk.
	w := &walker{m: m, options: cfg}
	if err := w.run(); err != nil {
		return nil, err
	}

	// 4) Assemble.
	tr := w.trace()
	if w.best < 0 {
		return trace.NoPathResult(tr, w.iterations), nil
	}
	best := w.tours[w.best]

	return &trace.Result{
		Outcome:    trace.Success,
		Path:       best.path,
		Trace:      tr,
		Cost:       best.cost,
		Iterations: w.iterations,
	}, nil
}

// tour is one completed branch.
type tour struct {
	path   []core.Label
	cost   int64
	cyclic bool // path ends with a node revisited from the current branch
}

func (t tour) tokens() trace.Trace {
	tr := make(trace.Trace, 0, len(t.path)+2).AppendPath(t.path)
	if t.cyclic {
		tr = append(tr, trace.Control(trace.KindRemoveLast))
	}

	return append(tr, trace.Control(trace.KindFullDraw))
}

// frame is one level of the explicit stack.
type frame struct {
	label core.Label
	path  []core.Label
	cost  int64
	next  int
}

type walker struct {
	m       *adjacency.Mapping
	options Options

	tours      []tour
	best       int
	iterations int
}

func (w *walker) run() error {
	w.best = -1
	stack := []frame{{label: w.m.Start, path: []core.Label{w.m.Start}}}

	for len(stack) > 0 {
		if err := w.options.Ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrCanceled, err)
		}

		top := len(stack) - 1
		arcs := w.m.Arcs(stack[top].label)
		if stack[top].next >= len(arcs) {
			stack = stack[:top]
			continue
		}
		a := arcs[stack[top].next]
		stack[top].next++
		f := stack[top]

		// Arc back into the branch: record and move on.
		if slices.Contains(f.path, a.To) {
			w.tours = append(w.tours, tour{path: extend(f.path, a.To), cost: f.cost, cyclic: true})
			continue
		}

		w.iterations++
		path := extend(f.path, a.To)
		cost := f.cost + a.Cost
		w.options.OnExpand(path)

		switch {
		case a.To == w.m.Finish:
			w.tours = append(w.tours, tour{path: path, cost: cost})
			if w.best < 0 || cost < w.tours[w.best].cost {
				w.best = len(w.tours) - 1
			}
		case w.m.OutDegree(a.To) == 0:
			w.tours = append(w.tours, tour{path: path, cost: cost})
		default:
			stack = append(stack, frame{label: a.To, path: path, cost: cost})
		}
	}

	return nil
}

// trace joins the tours, marking where each one leaves its predecessor.
func (w *walker) trace() trace.Trace {
	tr := trace.Trace{trace.Control(trace.KindSingleDraw)}
	var prev trace.Trace
	for _, t := range w.tours {
		cur := t.tokens()
		if prev != nil {
			if j := divergence(prev, cur); j >= 0 {
				tr = append(tr, cur[:j]...)
				tr = append(tr, trace.Control(trace.KindSingleDrawMid))
				tr = append(tr, cur[j:]...)
				prev = cur
				continue
			}
		}
		tr = append(tr, cur...)
		prev = cur
	}

	return tr
}

// divergence returns the first index where a and b differ, or -1.
func divergence(a, b trace.Trace) int {
	for j := range b {
		if j >= len(a) || a[j] != b[j] {
			return j
		}
	}

	return -1
}

func extend(path []core.Label, l core.Label) []core.Label {
	out := make([]core.Label, len(path), len(path)+1)
	copy(out, path)

	return append(out, l)
}
