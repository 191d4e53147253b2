package dijkstra

import "github.com/jakhac/graph-algorithms/core"

// Heuristic estimates the remaining cost from a label to the finish.
type Heuristic func(core.Label) int64

// Options configures a search.
//
// Heuristic – added to the known cost when ranking candidates; nil ranks by
// known cost alone.
type Options struct {
	Heuristic Heuristic
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic ranks candidates by cost + h(label).
// Panics on nil to surface programmer error early.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("dijkstra: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// DefaultOptions returns plain Dijkstra ranking.
func DefaultOptions() Options {
	return Options{}
}
