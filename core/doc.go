// Package core provides the in-memory graph model the pathfinding engine
// searches: labelled nodes placed on a canvas, directed edges carrying an
// integer cost, and the allocator that hands out the 156 node labels.
//
// The Graph owns its nodes and edges and keeps both in insertion order, which
// every search relies on for deterministic tie-breaking. All methods are safe
// for concurrent use; a single sync.RWMutex guards the whole catalog.
//
// Invariants enforced by Graph:
//
//   - every node label is unique and was issued by the graph's Allocator;
//   - at most one node is the start and at most one is the finish, and no
//     node is both;
//   - edges never loop, and any unordered pair of nodes is joined by at
//     most one edge (an A→B edge forbids a later B→A edge);
//   - edge cost lies in [MinCost, MaxCost].
//
// Label allocation:
//
//	A..Z, A'..Z', A''..Z'', a..z, a'..z', a''..z''   (Capacity = 156)
//
// The allocator always returns the lowest free slot in that order, so a
// released label is reused before any fresh one.
//
// Core methods:
//
//	// Nodes
//	AddNode(x, y int) (*Node, error)                 // ErrCapacity when 156 labels are issued
//	AddNodeLabeled(l Label, x, y int) (*Node, error)
//	RemoveNode(l Label) error                        // cascades incident edges, frees the label
//	Rename(old, new Label) error
//	SetStart(l) / SetFinish(l) / ClearStart() / ClearFinish()
//
//	// Edges
//	AddEdge(from, to Label, cost int) (*Edge, error)
//	RemoveEdge(from, to Label) error
//	AreConnected(a, b Label) bool                    // direction-agnostic
//	EdgeBetween(from, to Label) (*Edge, bool)        // directed lookup
//	SetCost(from, to Label, cost int) error
//	ApplyDistanceCosts()
//
//	// Snapshots
//	Nodes(), Edges(), Clone(), Reset()
package core
