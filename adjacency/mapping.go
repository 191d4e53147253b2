// Package adjacency translates between the object graph in package core and
// the label-keyed adjacency mapping the searches run on, and decodes search
// traces back into graph objects for playback.
//
// A Mapping lists, for every node, its outgoing neighbours and their costs.
// Both node order and neighbour order follow insertion order of the source
// graph, and the searches depend on that order for tie-breaking. The start and
// finish labels travel as separate fields rather than as aliased keys.
package adjacency

import (
	"errors"
	"fmt"

	"github.com/jakhac/graph-algorithms/core"
)

// Sentinel errors.
var (
	// ErrNilMapping indicates a nil *Mapping.
	ErrNilMapping = errors.New("adjacency: mapping is nil")

	// ErrNoStart indicates the graph or mapping has no start node.
	ErrNoStart = errors.New("adjacency: start node missing")

	// ErrNoFinish indicates the graph or mapping has no finish node.
	ErrNoFinish = errors.New("adjacency: finish node missing")

	// ErrUnknownLabel indicates a reference to a label the mapping does not hold.
	ErrUnknownLabel = errors.New("adjacency: unknown label")

	// ErrMalformedTrace indicates a trace that cannot be decoded against the graph.
	ErrMalformedTrace = errors.New("adjacency: malformed trace")
)

// Arc is one outgoing edge in a Mapping.
type Arc struct {
	To   core.Label
	Cost int64
}

// Mapping is an insertion-ordered adjacency table.
type Mapping struct {
	Start  core.Label
	Finish core.Label

	order []core.Label
	arcs  map[core.Label][]Arc
}

// New returns an empty mapping with the given endpoints. The endpoints are
// added as nodes.
func New(start, finish core.Label) *Mapping {
	m := &Mapping{Start: start, Finish: finish, arcs: make(map[core.Label][]Arc)}
	m.AddNode(start)
	m.AddNode(finish)

	return m
}

// AddNode appends l if it is not present yet.
func (m *Mapping) AddNode(l core.Label) {
	if _, ok := m.arcs[l]; ok {
		return
	}
	m.order = append(m.order, l)
	m.arcs[l] = nil
}

// AddArc appends from→to with cost, adding both nodes when missing. A second
// arc for the same ordered pair replaces the cost in place.
func (m *Mapping) AddArc(from, to core.Label, cost int64) {
	m.AddNode(from)
	m.AddNode(to)
	arcs := m.arcs[from]
	for i := range arcs {
		if arcs[i].To == to {
			arcs[i].Cost = cost
			return
		}
	}
	m.arcs[from] = append(arcs, Arc{To: to, Cost: cost})
}

// Labels returns the node labels in insertion order.
func (m *Mapping) Labels() []core.Label {
	out := make([]core.Label, len(m.order))
	copy(out, m.order)

	return out
}

// Arcs returns the outgoing arcs of l in insertion order. The slice must not
// be modified.
func (m *Mapping) Arcs(l core.Label) []Arc { return m.arcs[l] }

// Cost returns the cost of from→to.
func (m *Mapping) Cost(from, to core.Label) (int64, bool) {
	for _, a := range m.arcs[from] {
		if a.To == to {
			return a.Cost, true
		}
	}

	return 0, false
}

// OutDegree returns the number of outgoing arcs of l.
func (m *Mapping) OutDegree(l core.Label) int { return len(m.arcs[l]) }

// Has reports whether l is a node of m.
func (m *Mapping) Has(l core.Label) bool {
	_, ok := m.arcs[l]
	return ok
}

// Len returns the number of nodes.
func (m *Mapping) Len() int { return len(m.order) }

// Validate checks the preconditions every search relies on.
func (m *Mapping) Validate() error {
	if m == nil {
		return ErrNilMapping
	}
	if m.Start == "" || !m.Has(m.Start) {
		return ErrNoStart
	}
	if m.Finish == "" || !m.Has(m.Finish) {
		return ErrNoFinish
	}
	for _, l := range m.order {
		for _, a := range m.arcs[l] {
			if !m.Has(a.To) {
				return fmt.Errorf("%w: %s→%s", ErrUnknownLabel, l, a.To)
			}
		}
	}

	return nil
}
