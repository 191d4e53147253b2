// Package builder generates random playground graphs on a core.Graph.
//
// Two layouts are provided:
//
//   - Lattice: columns of jittered nodes joined by vertical edges, random
//     horizontal and diagonal edges, and top and bottom rails. The first node
//     is the start and the last node the finish, and the rails guarantee a
//     path between them.
//   - Circle: a start node on the left, one or two rings of twelve nodes whose
//     halves flow left to right, spokes between the rings and the finish in the
//     centre.
//
// Both are sized by Size (Small, Medium, Large) and placed on a canvas of
// terminal cells (WithCanvas). Randomness comes only from the configured RNG:
// the same seed, options and constructor order yield the same graph. Costs are
// drawn by a CostFn (1..20 by default) or derived from node distance
// (WithDistanceCosts).
//
// Constructors never panic; option constructors panic on meaningless input.
package builder
