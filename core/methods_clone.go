// File: methods_clone.go
// Role: Snapshots and reset.
package core

// Clone returns a deep copy of the graph: nodes, edges, endpoints and label
// allocation. The copy shares nothing with g, so a search can read it while
// the original keeps being edited.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithNodeHint(len(g.nodes)))
	*c.labels = *g.labels

	remap := make(map[*Node]*Node, len(g.nodes))
	for _, n := range g.nodes {
		cp := *n
		remap[n] = &cp
		c.nodes = append(c.nodes, &cp)
		c.index[cp.Label] = &cp
	}
	for _, e := range g.edges {
		c.edges = append(c.edges, &Edge{From: remap[e.From], To: remap[e.To], Cost: e.Cost})
	}
	if g.start != nil {
		c.start = remap[g.start]
	}
	if g.finish != nil {
		c.finish = remap[g.finish]
	}

	return c
}

// Reset removes every node and edge and frees all labels.
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.edges = nil
	g.index = make(map[Label]*Node)
	g.start, g.finish = nil, nil
	g.labels.Reset()
}
