package pathfinding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jakhac/graph-algorithms/adjacency"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/logging"
	"github.com/jakhac/graph-algorithms/metrics"
	"github.com/jakhac/graph-algorithms/trace"
)

// Sentinel errors surfaced by Solve. ErrNoStart and ErrNoFinish are the
// translator's sentinels, so errors.Is matches either spelling.
var (
	ErrNilGraph = errors.New("pathfinding: graph is nil")
	ErrNoStart  = adjacency.ErrNoStart
	ErrNoFinish = adjacency.ErrNoFinish
)

// Runner turns graphs into decoded replays, logging and instrumenting each run.
type Runner struct {
	logger  *slog.Logger
	metrics *metrics.Registry
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) RunnerOption {
	if l == nil {
		panic("pathfinding: WithLogger(nil)")
	}
	return func(r *Runner) { r.logger = l }
}

// WithMetrics records every solve into reg. Panics on nil.
func WithMetrics(reg *metrics.Registry) RunnerOption {
	if reg == nil {
		panic("pathfinding: WithMetrics(nil)")
	}
	return func(r *Runner) { r.metrics = reg }
}

// NewRunner creates a Runner; without options it logs nowhere and records nothing.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: logging.Discard()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Solve snapshots g, runs alg on the snapshot and decodes the result.
//
// The replay references the snapshot's nodes and edges; renderers identify
// elements by label, so the replay stays valid while g is edited.
//
// Errors:
//   - ErrNilGraph for a nil graph.
//   - ErrNoStart and/or ErrNoFinish when an endpoint is unset.
//   - adjacency.ErrMalformedTrace when decoding fails, which is a bug in a search.
//   - dfs.ErrCanceled / bfs.ErrCanceled when ctx ends during an exhaustive search.
func (r *Runner) Solve(ctx context.Context, g *core.Graph, alg Algorithm) (*trace.Replay, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, alg)
	}

	// 2) Snapshot and translate.
	snap := g.Clone()
	m, err := adjacency.Encode(snap)
	if err != nil {
		return nil, err
	}

	// 3) Run.
	runID := uuid.NewString()
	log := r.logger.With("run_id", runID, "algorithm", alg.String())
	log.Debug("search started", "nodes", snap.NodeCount(), "edges", snap.EdgeCount())

	began := time.Now()
	res, err := RunContext(ctx, alg, m, snap.Nodes())
	elapsed := time.Since(began)
	if err != nil {
		log.Warn("search failed", "err", err)
		return nil, err
	}

	// 4) Decode against the same snapshot.
	replay, err := adjacency.Decode(res, snap)
	if err != nil {
		log.Error("trace decode failed", "err", err, "trace", res.Trace.String())
		return nil, err
	}
	replay.RunID = runID

	// 5) Report.
	attrs := []any{"outcome", res.Outcome.String(), "iterations", res.Iterations, "tokens", len(res.Trace), "elapsed", elapsed}
	if res.HasCost() {
		attrs = append(attrs, "cost", res.Cost)
	}
	log.Info("search finished", attrs...)
	if r.metrics != nil {
		r.metrics.RecordSearch(alg.String(), res.Outcome.String(), res.Iterations, len(res.Trace), elapsed)
	}

	return replay, nil
}
