// Package dfs implements the exhaustive depth-first search of the visualizer.
//
// What:
//
//   - Enumerates every simple path from the start in pre-order, following
//     arcs in insertion order.
//   - A branch ends when it reaches the finish (finish tour), a node without
//     outgoing arcs (deadlock tour), or an arc back into the current path
//     (cycle tour, drawn with the offending arc and then erased).
//   - The cheapest finish tour is the result; ties keep the earliest tour.
//
// Trace layout:
//
//	singleDraw
//	  tour0 fullDraw
//	  tour1[:j] singleDrawMid tour1[j:] fullDraw   j = first index where tour1 differs from tour0
//	  …
//
// so each tour replays its shared prefix instantly and animates only the
// part that diverges from the previous tour.
//
// The traversal uses an explicit frame stack, so path length is bounded only
// by memory. The number of simple paths is exponential in the worst case;
// WithContext lets callers bound a run.
//
// Complexity:
//
//   - Time:  O(P·V) for P simple paths from the start.
//   - Space: O(P·V) for the recorded tours.
package dfs

import (
	"context"
	"errors"

	"github.com/jakhac/graph-algorithms/core"
)

// ErrCanceled is returned when the context ends before the search completes.
var ErrCanceled = errors.New("dfs: search canceled")

// Options configures a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExpand is called for every path the search extends by one node.
	OnExpand func(path []core.Label)
}

// Option configures Search via functional arguments.
type Option func(*Options)

// WithContext sets the context checked between expansions. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("dfs: WithContext(nil)")
	}
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithOnExpand registers a hook called with each newly extended path.
// The slice must not be retained. Panics on nil.
func WithOnExpand(fn func(path []core.Label)) Option {
	if fn == nil {
		panic("dfs: WithOnExpand(nil)")
	}
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns a background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func([]core.Label) {},
	}
}
