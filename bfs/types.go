// Package bfs implements the exhaustive breadth-first search of the visualizer.
//
// The search keeps a queue of partial paths, starting with [start]. Each
// dequeued path is extended by every outgoing arc of its last node into a node
// not yet on the path; branches that already hold the finish are not extended.
// Every extension is enqueued, so the queue ends up holding all simple paths in
// level order. The cheapest path reaching the finish is the result; ties keep
// the path enqueued first.
//
// Trace layout:
//
//	singleDraw
//	  start fullDraw
//	  p0 … pk-1 singleDrawEdge pk fullDraw   per enqueued path, in queue order
//
// Complexity:
//
//   - Time:  O(P·V) for P simple paths from the start.
//   - Space: O(P·V) for the queue.
package bfs

import (
	"context"
	"errors"

	"github.com/jakhac/graph-algorithms/core"
)

// ErrCanceled is returned when the context ends before the search completes.
var ErrCanceled = errors.New("bfs: search canceled")

// Options configures a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnDequeue is called immediately before a path is expanded.
	OnDequeue func(path []core.Label)
}

// Option configures Search via functional arguments.
type Option func(*Options)

// WithContext sets the context checked between dequeues. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("bfs: WithContext(nil)")
	}
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithOnDequeue registers a hook called with each dequeued path.
// The slice must not be retained. Panics on nil.
func WithOnDequeue(fn func(path []core.Label)) Option {
	if fn == nil {
		panic("bfs: WithOnDequeue(nil)")
	}
	return func(o *Options) {
		o.OnDequeue = fn
	}
}

// DefaultOptions returns a background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnDequeue: func([]core.Label) {},
	}
}
