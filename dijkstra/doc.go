// Package dijkstra implements the label-correcting shortest-path search the
// visualizer animates, and its heuristic variant used by package astar.
//
// Overview:
//
//   - The search keeps an ordered cost table seeded with the finish (cost
//     unknown) followed by the start's direct neighbours.
//   - Each round selects the cheapest unprocessed known node (the start is never
//     selected; the finish only once its cost is known), relaxes its outgoing
//     arcs, marks it processed and records the best known path to it.
//   - The search stops after processing the finish, or when nothing is left.
//   - Ties go to the node that entered the cost table first.
//
// Trace layout:
//
//	singleDraw
//	  (p0 … pk-1 singleDrawEdge pk fullDraw)   per processed node, p = best path to it
//
// Each segment replays the known path instantly and then animates the newest
// edge and node.
//
// Heuristic mode:
//
//	WithHeuristic(h) ranks candidates by cost + h(label) instead of cost.
//
// Complexity:
//
//   - Time:  O(V·(V + deg)) with a linear selection scan; V ≤ 156 in practice.
//   - Space: O(V) for the cost table plus O(V²) for the trace in the worst case.
//
// Errors:
//
//   - adjacency.ErrNilMapping, adjacency.ErrNoStart, adjacency.ErrNoFinish and
//     adjacency.ErrUnknownLabel from mapping validation.
package dijkstra
