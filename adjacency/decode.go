package adjacency

import (
	"fmt"

	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/trace"
)

type edgeKey struct{ from, to core.Label }

// decoder resolves labels against one graph snapshot.
type decoder struct {
	nodes map[core.Label]*core.Node
	edges map[edgeKey]*core.Edge
	out   []trace.Step
}

func newDecoder(g *core.Graph) *decoder {
	nodes := g.Nodes()
	edges := g.Edges()
	d := &decoder{
		nodes: make(map[core.Label]*core.Node, len(nodes)),
		edges: make(map[edgeKey]*core.Edge, len(edges)),
	}
	for _, n := range nodes {
		d.nodes[n.Label] = n
	}
	for _, e := range edges {
		d.edges[edgeKey{e.From.Label, e.To.Label}] = e
	}

	return d
}

func (d *decoder) node(l core.Label) error {
	n, ok := d.nodes[l]
	if !ok {
		return fmt.Errorf("%w: %w %s", ErrMalformedTrace, ErrUnknownLabel, l)
	}
	d.out = append(d.out, trace.NodeStep(n))

	return nil
}

func (d *decoder) edge(from, to core.Label) error {
	e, ok := d.edges[edgeKey{from, to}]
	if !ok {
		return fmt.Errorf("%w: no edge %s→%s", ErrMalformedTrace, from, to)
	}
	d.out = append(d.out, trace.EdgeStep(e))

	return nil
}

// hop appends the edge prev→next followed by node next.
func (d *decoder) hop(prev, next core.Label) error {
	if err := d.edge(prev, next); err != nil {
		return err
	}

	return d.node(next)
}

func (d *decoder) dropLast() {
	if len(d.out) > 0 {
		d.out = d.out[:len(d.out)-1]
	}
}

// Decode resolves a search result against g.
func Decode(res *trace.Result, g *core.Graph) (*trace.Replay, error) {
	steps, err := DecodeTrace(res.Trace, g)
	if err != nil {
		return nil, err
	}
	path, err := DecodePath(res.Outcome, res.Path, g)
	if err != nil {
		return nil, err
	}

	return &trace.Replay{
		Outcome:    res.Outcome,
		Path:       path,
		Steps:      steps,
		Cost:       res.Cost,
		Iterations: res.Iterations,
	}, nil
}

// DecodeTrace turns a label-level trace into drawable steps.
//
// Rules, applied left to right:
//   - a leading control token is kept and the first label becomes a node;
//   - two consecutive labels become edge(prev→next), node(next);
//   - SingleDrawEdge and SingleDrawMid become singleDraw, edge(prev→next),
//     node(next), where prev and next are the labels around the marker;
//   - FullDraw is kept and the following label becomes a node;
//   - RemoveLast erases the most recent decoded element;
//   - a trailing CycleMark erases the closing node, which is already drawn,
//     and is kept as a marker; a trailing DeadlockMark is kept;
//   - a trailing FullDraw or RemoveLast carries nothing to draw and is dropped
//     after its effect.
//
// Errors:
//   - ErrMalformedTrace: unknown label, missing edge, or a marker without the
//     labels it needs.
func DecodeTrace(tr trace.Trace, g *core.Graph) ([]trace.Step, error) {
	if len(tr) == 0 {
		return nil, nil
	}
	d := newDecoder(g)

	// 1) Leading instruction and first node.
	i := 0
	if !tr[0].IsLabel() {
		if k, ok := instructionOf(tr[0].Kind); ok {
			d.out = append(d.out, trace.Instruction(k))
		}
		i = 1
	}
	if i < len(tr) && tr[i].IsLabel() {
		if err := d.node(tr[i].Label); err != nil {
			return nil, err
		}
	}

	// 2) Pairwise walk; the final token is only ever the right-hand side.
	for ; i < len(tr)-1; i++ {
		cur, next := tr[i], tr[i+1]
		switch cur.Kind {
		case trace.KindLabel:
			if next.IsLabel() {
				if err := d.hop(cur.Label, next.Label); err != nil {
					return nil, err
				}
			}

		case trace.KindSingleDrawEdge, trace.KindSingleDrawMid:
			if i == 0 || !tr[i-1].IsLabel() || !next.IsLabel() {
				return nil, fmt.Errorf("%w: %s at %d lacks surrounding labels", ErrMalformedTrace, cur.Kind, i)
			}
			d.out = append(d.out, trace.Instruction(trace.StepSingle))
			if err := d.hop(tr[i-1].Label, next.Label); err != nil {
				return nil, err
			}

		case trace.KindFullDraw, trace.KindSingleDraw:
			k, _ := instructionOf(cur.Kind)
			d.out = append(d.out, trace.Instruction(k))
			if next.IsLabel() {
				if err := d.node(next.Label); err != nil {
					return nil, err
				}
			}

		case trace.KindRemoveLast:
			d.dropLast()

		case trace.KindCycle:
			d.dropLast()
			d.out = append(d.out, trace.Instruction(trace.StepCycle))

		case trace.KindDeadlock:
			d.out = append(d.out, trace.Instruction(trace.StepDeadlock))
		}
	}

	// 3) Trailing token effects.
	if len(tr) > 1 {
		switch tr[len(tr)-1].Kind {
		case trace.KindRemoveLast:
			d.dropLast()
		case trace.KindCycle:
			d.dropLast()
			d.out = append(d.out, trace.Instruction(trace.StepCycle))
		case trace.KindDeadlock:
			d.out = append(d.out, trace.Instruction(trace.StepDeadlock))
		}
	}

	return d.out, nil
}

// DecodePath turns a result path into alternating nodes and edges. A Cycle
// path is closed with the edge from its last node back to its first.
func DecodePath(outcome trace.Outcome, path []core.Label, g *core.Graph) ([]trace.Step, error) {
	if len(path) == 0 {
		return nil, nil
	}
	d := newDecoder(g)
	if err := d.node(path[0]); err != nil {
		return nil, err
	}
	for i := 1; i < len(path); i++ {
		if err := d.hop(path[i-1], path[i]); err != nil {
			return nil, err
		}
	}
	if outcome == trace.Cycle {
		if err := d.edge(path[len(path)-1], path[0]); err != nil {
			return nil, err
		}
	}

	return d.out, nil
}

func instructionOf(k trace.Kind) (trace.StepKind, bool) {
	switch k {
	case trace.KindSingleDraw:
		return trace.StepSingle, true
	case trace.KindFullDraw:
		return trace.StepFull, true
	case trace.KindCycle:
		return trace.StepCycle, true
	case trace.KindDeadlock:
		return trace.StepDeadlock, true
	}

	return 0, false
}
