// File: methods_nodes.go
// Role: Node lifecycle, endpoints and queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
package core

import "fmt"

// AddNode creates a node at (x, y) under the lowest free label.
//
// Errors:
//   - ErrCapacity: all labels are issued; the graph is left untouched.
//
// Complexity: O(Capacity) for the label scan.
func (g *Graph) AddNode(x, y int) (*Node, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	l, ok := g.labels.Next()
	if !ok {
		return nil, ErrCapacity
	}

	return g.insertNode(l, x, y), nil
}

// AddNodeLabeled creates a node under a caller-chosen label.
//
// Errors:
//   - ErrBadLabel: l is not part of the label table.
//   - ErrLabelInUse: l is already issued.
func (g *Graph) AddNodeLabeled(l Label, x, y int) (*Node, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !l.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrBadLabel, l)
	}
	if !g.labels.Reserve(l) {
		return nil, fmt.Errorf("%w: %s", ErrLabelInUse, l)
	}

	return g.insertNode(l, x, y), nil
}

// insertNode registers a node whose label is already reserved. Caller holds mu.
func (g *Graph) insertNode(l Label, x, y int) *Node {
	n := &Node{Label: l, X: x, Y: y}
	g.nodes = append(g.nodes, n)
	g.index[l] = n

	return n
}

// RemoveNode deletes the node, every incident edge and its endpoint role,
// then returns the label to the allocator.
//
// Complexity: O(V + E).
func (g *Graph) RemoveNode(l Label) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.index[l]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, l)
	}

	// 1) Cascade incident edges, keeping the survivors in order.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From != n && e.To != n {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept

	// 2) Drop the node itself.
	for i, cur := range g.nodes {
		if cur == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	delete(g.index, l)

	// 3) Clear endpoint roles and free the label.
	if g.start == n {
		g.start = nil
	}
	if g.finish == n {
		g.finish = nil
	}
	g.labels.Release(l)

	return nil
}

// Rename moves a node to a new label, releasing the old one.
//
// Errors:
//   - ErrNodeNotFound: no node carries old.
//   - ErrBadLabel, ErrLabelInUse: next cannot be reserved.
func (g *Graph) Rename(old, next Label) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.index[old]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, old)
	}
	if old == next {
		return nil
	}
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrBadLabel, next)
	}
	if !g.labels.Reserve(next) {
		return fmt.Errorf("%w: %s", ErrLabelInUse, next)
	}
	g.labels.Release(old)
	delete(g.index, old)
	n.Label = next
	g.index[next] = n

	return nil
}

// Node returns the node labelled l.
func (g *Graph) Node(l Label) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.index[l]

	return n, ok
}

// Nodes returns the nodes in insertion order. The slice is a copy; the nodes are shared.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// SetStart marks l as the start node. A previous start loses the role, and l
// loses the finish role if it had it.
func (g *Graph) SetStart(l Label) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.index[l]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, l)
	}
	if g.start != nil {
		g.start.IsStart = false
	}
	if g.finish == n {
		n.IsFinish = false
		g.finish = nil
	}
	n.IsStart = true
	g.start = n

	return nil
}

// SetFinish marks l as the finish node. A previous finish loses the role, and
// l loses the start role if it had it.
func (g *Graph) SetFinish(l Label) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.index[l]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, l)
	}
	if g.finish != nil {
		g.finish.IsFinish = false
	}
	if g.start == n {
		n.IsStart = false
		g.start = nil
	}
	n.IsFinish = true
	g.finish = n

	return nil
}

// ClearStart removes the start role from whichever node holds it.
func (g *Graph) ClearStart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.start != nil {
		g.start.IsStart = false
		g.start = nil
	}
}

// ClearFinish removes the finish role from whichever node holds it.
func (g *Graph) ClearFinish() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.finish != nil {
		g.finish.IsFinish = false
		g.finish = nil
	}
}

// Start returns the start node or nil.
func (g *Graph) Start() *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start
}

// Finish returns the finish node or nil.
func (g *Graph) Finish() *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.finish
}

// LabelsInUse returns the number of issued labels.
func (g *Graph) LabelsInUse() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.labels.Len()
}
