// Package graphalgorithms is a pathfinding visualizer engine: six searches
// over small directed graphs, each producing a trace that an animation
// interpreter replays step by step.
//
// The module is organized as one package per concern:
//
//	core/         Graph, Node, Edge and the 156-label allocator
//	adjacency/    graph ⇄ label-keyed mapping, trace decoding
//	trace/        trace tokens, results and decoded replays
//	dijkstra/     label-correcting shortest path (optionally heuristic)
//	astar/        Dijkstra ranked by straight-line distance to the finish
//	greedy/       naive and revisit-avoiding greedy walks
//	dfs/, bfs/    exhaustive tour and path-queue searches
//	pathfinding/  algorithm selection, Run and the logging Runner
//	animate/      the timer-driven Player and speed presets
//	builder/      seeded Lattice and Circle playground graphs
//	render/       text recorder and HTML chart renderers
//	config/, logging/, metrics/  YAML config, slog loggers, Prometheus
//	cmd/pathviz   terminal UI, headless and HTML front ends
//
// Quick example:
//
//	g, _ := builder.Generate(builder.Small, builder.WithSeed(1))
//	replay, _ := pathfinding.NewRunner().Solve(ctx, g, pathfinding.Dijkstra)
//	_ = animate.NewPlayer(render.NewRecorder(os.Stdout)).RevealInstant(replay)
package graphalgorithms
