package builder

import (
	"errors"

	"github.com/jakhac/graph-algorithms/core"
)

// layout accumulates one constructor's nodes so edges can be added by index.
type layout struct {
	method string
	g      *core.Graph
	cfg    builderConfig
	nodes  []*core.Node
}

func newLayout(method string, g *core.Graph, cfg builderConfig, size Size) (*layout, error) {
	if !size.valid() {
		return nil, builderErrorf(method, "%w: %d", ErrUnknownSize, size)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(method, "%w", ErrNeedRandSource)
	}
	if g.NodeCount() > 0 {
		return nil, builderErrorf(method, "%w: %d nodes", ErrGraphNotEmpty, g.NodeCount())
	}

	return &layout{method: method, g: g, cfg: cfg}, nil
}

// add places a node and returns its index in l.nodes.
func (l *layout) add(x, y int) (int, error) {
	n, err := l.g.AddNode(x, y)
	if err != nil {
		return 0, builderErrorf(l.method, "%w: %w", ErrConstructFailed, err)
	}
	l.nodes = append(l.nodes, n)

	return len(l.nodes) - 1, nil
}

// connect adds an edge between two node indices. A pair that is already
// connected in either direction is skipped.
func (l *layout) connect(from, to int) error {
	a, b := l.nodes[from], l.nodes[to]
	if l.g.AreConnected(a.Label, b.Label) {
		return nil
	}
	_, err := l.g.AddEdge(a.Label, b.Label, l.cfg.cost(a, b))
	if err != nil && !errors.Is(err, core.ErrAlreadyConnected) {
		return builderErrorf(l.method, "%w: %w", ErrConstructFailed, err)
	}

	return nil
}

// endpoints marks the nodes at indices start and finish.
func (l *layout) endpoints(start, finish int) error {
	if err := l.g.SetStart(l.nodes[start].Label); err != nil {
		return builderErrorf(l.method, "%w: %w", ErrConstructFailed, err)
	}
	if err := l.g.SetFinish(l.nodes[finish].Label); err != nil {
		return builderErrorf(l.method, "%w: %w", ErrConstructFailed, err)
	}

	return nil
}
