package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrCapacity indicates that all 156 labels are issued.
	ErrCapacity = errors.New("core: label capacity exhausted")

	// ErrBadLabel indicates a label outside the allocator's table.
	ErrBadLabel = errors.New("core: label is not part of the label table")

	// ErrLabelInUse indicates a label that is already assigned to a node.
	ErrLabelInUse = errors.New("core: label already in use")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAlreadyConnected indicates a second edge between the same pair of nodes,
	// in either direction.
	ErrAlreadyConnected = errors.New("core: nodes already connected")

	// ErrBadCost indicates an edge cost outside [MinCost, MaxCost].
	ErrBadCost = errors.New("core: edge cost out of range")
)

// Edge cost bounds.
const (
	MinCost = 0
	MaxCost = 999
)

// Label identifies a node. Valid labels come from the allocator's table.
type Label string

// Node is a labelled point on the canvas.
type Node struct {
	// Label is unique within the owning Graph.
	Label Label

	// X and Y are canvas coordinates. They only matter to the A* heuristic,
	// distance-based costs and renderers.
	X, Y int

	// IsStart and IsFinish mark the search endpoints; they are maintained by
	// the owning Graph and never both true.
	IsStart  bool
	IsFinish bool
}

// Edge is a directed connection with a traversal cost.
type Edge struct {
	From *Node
	To   *Node
	Cost int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithNodeHint pre-sizes the node and edge catalogs.
func WithNodeHint(n int) GraphOption {
	if n < 0 {
		panic("core: WithNodeHint(n<0)")
	}
	return func(g *Graph) {
		g.nodes = make([]*Node, 0, n)
		g.index = make(map[Label]*Node, n)
		g.edges = make([]*Edge, 0, n*2)
	}
}

// Graph owns the nodes and edges a search runs over.
//
// nodes and edges are kept in insertion order; index maps labels to nodes.
// start and finish point into nodes or are nil.
type Graph struct {
	mu sync.RWMutex

	labels *Allocator
	nodes  []*Node
	index  map[Label]*Node
	edges  []*Edge

	start  *Node
	finish *Node
}

// NewGraph creates an empty Graph with a fresh label allocator.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		labels: NewAllocator(),
		index:  make(map[Label]*Node),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
