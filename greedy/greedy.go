// Package greedy implements the two local-choice walks of the visualizer.
//
// Both walks start at the start node and repeatedly follow one outgoing arc:
// a direct arc into the finish always wins; otherwise the cheapest arc is
// taken, ties going to the earliest arc. They never backtrack.
//
//   - Naive follows the cheapest arc even into visited nodes and reports a
//     Cycle as soon as it re-enters one.
//   - AvoidRevisits only considers arcs into unvisited nodes and reports a
//     Cycle when every arc leads back into the walk.
//
// Both report a Deadlock at a node without outgoing arcs. Each walk visits a
// node at most once before stopping, so Iterations never exceeds the node
// count.
//
// Trace layout:
//
//	singleDraw p0 … pk [revisited cycle | deadlock]
//
// The result of a Cycle holds only the loop: the walk from the first visit of
// the re-entered node up to the node that closed it.
package greedy

import (
	"github.com/jakhac/graph-algorithms/adjacency"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/trace"
)

// Naive runs the plain cheapest-arc walk.
func Naive(m *adjacency.Mapping) (*trace.Result, error) {
	return walk(m, false)
}

// AvoidRevisits runs the walk that skips visited nodes.
func AvoidRevisits(m *adjacency.Mapping) (*trace.Result, error) {
	return walk(m, true)
}

// walker holds the state of one walk.
type walker struct {
	m       *adjacency.Mapping
	path    []core.Label
	visited map[core.Label]int // label → index in path
	cost    int64
	iter    int
}

func walk(m *adjacency.Mapping, avoid bool) (*trace.Result, error) {
	// 1) Validate input.
	if err := m.Validate(); err != nil {
		return nil, err
	}

	// 2) Start at the start node.
	w := &walker{
		m:       m,
		path:    []core.Label{m.Start},
		visited: map[core.Label]int{m.Start: 0},
	}

	// 3) Step until the finish is on the path or the walk gets stuck.
	for cur := m.Start; cur != m.Finish; {
		w.iter++
		arcs := m.Arcs(cur)
		if len(arcs) == 0 {
			return w.deadlock(), nil
		}

		candidates := arcs
		if avoid {
			candidates = w.unvisited(arcs)
			if len(candidates) == 0 {
				next, _ := w.pick(arcs)
				return w.cycle(next), nil
			}
		}

		next, c := w.pick(candidates)
		if _, seen := w.visited[next]; seen {
			return w.cycle(next), nil
		}
		w.visited[next] = len(w.path)
		w.path = append(w.path, next)
		w.cost += c
		cur = next
	}

	// 4) Reached the finish.
	return &trace.Result{
		Outcome:    trace.Success,
		Path:       w.path,
		Trace:      w.trace(),
		Cost:       w.cost,
		Iterations: w.iter,
	}, nil
}

// pick returns the arc into the finish if present, otherwise the first
// cheapest arc.
func (w *walker) pick(arcs []adjacency.Arc) (core.Label, int64) {
	best := 0
	for i, a := range arcs {
		if a.To == w.m.Finish {
			return a.To, a.Cost
		}
		if a.Cost < arcs[best].Cost {
			best = i
		}
	}

	return arcs[best].To, arcs[best].Cost
}

func (w *walker) unvisited(arcs []adjacency.Arc) []adjacency.Arc {
	out := make([]adjacency.Arc, 0, len(arcs))
	for _, a := range arcs {
		if _, seen := w.visited[a.To]; !seen {
			out = append(out, a)
		}
	}

	return out
}

func (w *walker) trace() trace.Trace {
	tr := make(trace.Trace, 0, len(w.path)+2)
	tr = append(tr, trace.Control(trace.KindSingleDraw))

	return tr.AppendPath(w.path)
}

func (w *walker) deadlock() *trace.Result {
	tr := append(w.trace(), trace.Control(trace.KindDeadlock))

	return &trace.Result{
		Outcome:    trace.Deadlock,
		Path:       w.path,
		Trace:      tr,
		Iterations: w.iter,
	}
}

// cycle closes the walk at next, which is already on the path.
func (w *walker) cycle(next core.Label) *trace.Result {
	tr := append(w.trace(), trace.Node(next), trace.Control(trace.KindCycle))
	loop := append([]core.Label(nil), w.path[w.visited[next]:]...)

	return &trace.Result{
		Outcome:    trace.Cycle,
		Path:       loop,
		Trace:      tr,
		Iterations: w.iter,
	}
}
