// File: methods_edges.go
// Role: Edge lifecycle, lookups and cost maintenance.
//
// Determinism:
//   - Edges() returns edges in insertion order; searches inherit that order
//     as their neighbour order.
package core

import (
	"fmt"
	"math"
)

// AddEdge appends a directed edge from→to.
//
// Errors:
//   - ErrNodeNotFound: either endpoint is missing.
//   - ErrLoopNotAllowed: from == to.
//   - ErrAlreadyConnected: an edge already joins the pair, in either direction.
//   - ErrBadCost: cost outside [MinCost, MaxCost].
//
// Complexity: O(E) for the pair check.
func (g *Graph) AddEdge(from, to Label, cost int) (*Edge, error) {
	if cost < MinCost || cost > MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrBadCost, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.index[from]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, from)
	}
	v, ok := g.index[to]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, to)
	}
	if u == v {
		return nil, fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}
	if g.connected(u, v) {
		return nil, fmt.Errorf("%w: %s-%s", ErrAlreadyConnected, from, to)
	}

	e := &Edge{From: u, To: v, Cost: cost}
	g.edges = append(g.edges, e)

	return e, nil
}

// RemoveEdge deletes the directed edge from→to.
func (g *Graph) RemoveEdge(from, to Label) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, e := range g.edges {
		if e.From.Label == from && e.To.Label == to {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
}

// AreConnected reports whether an edge joins a and b in either direction.
func (g *Graph) AreConnected(a, b Label) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.index[a]
	if !ok {
		return false
	}
	v, ok := g.index[b]
	if !ok {
		return false
	}

	return g.connected(u, v)
}

// connected is the lock-free body of AreConnected. Caller holds mu.
func (g *Graph) connected(u, v *Node) bool {
	for _, e := range g.edges {
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			return true
		}
	}

	return false
}

// EdgeBetween returns the directed edge from→to, if any.
func (g *Graph) EdgeBetween(from, to Label) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.From.Label == from && e.To.Label == to {
			return e, true
		}
	}

	return nil, false
}

// Edges returns the edges in insertion order. The slice is a copy; the edges are shared.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// SetCost changes the cost of the directed edge from→to.
func (g *Graph) SetCost(from, to Label, cost int) error {
	if cost < MinCost || cost > MaxCost {
		return fmt.Errorf("%w: %d", ErrBadCost, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.edges {
		if e.From.Label == from && e.To.Label == to {
			e.Cost = cost
			return nil
		}
	}

	return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
}

// ApplyDistanceCosts sets every edge cost to DistanceCost of its endpoints.
func (g *Graph) ApplyDistanceCosts() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.edges {
		e.Cost = DistanceCost(e.From, e.To)
	}
}

// Distance returns the Euclidean distance between two nodes on the canvas.
func Distance(a, b *Node) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceCost is the cost an edge gets in distance mode:
// floor(Distance(a, b)) - 2, clamped to [MinCost, MaxCost].
func DistanceCost(a, b *Node) int {
	c := int(math.Floor(Distance(a, b))) - 2
	if c < MinCost {
		return MinCost
	}
	if c > MaxCost {
		return MaxCost
	}

	return c
}
