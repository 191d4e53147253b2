package trace

import "github.com/jakhac/graph-algorithms/core"

// Outcome classifies how a search ended.
type Outcome uint8

const (
	// Success means Path runs from start to finish and Cost is its total.
	Success Outcome = iota
	// Cycle means a greedy walk closed a loop; Path holds the loop's nodes.
	Cycle
	// Deadlock means a greedy walk reached a node without outgoing edges;
	// Path holds the walk.
	Deadlock
	// NoPath means the finish is unreachable; Path is empty.
	NoPath
)

var outcomeNames = [...]string{
	Success:  "success",
	Cycle:    "cycle",
	Deadlock: "deadlock",
	NoPath:   "noPathToFinish",
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}

	return "unknown"
}

// Result is what every search returns.
//
// Cost is meaningful only when Outcome is Success; use HasCost.
// For Cycle, Path lists the nodes of the loop in walk order without
// repeating the first node; the closing edge runs from the last to the first.
type Result struct {
	Outcome    Outcome
	Path       []core.Label
	Trace      Trace
	Cost       int64
	Iterations int
}

// HasCost reports whether Cost is defined.
func (r *Result) HasCost() bool { return r.Outcome == Success }

// NoPathResult returns a NoPath result carrying tr.
func NoPathResult(tr Trace, iterations int) *Result {
	return &Result{Outcome: NoPath, Trace: tr, Iterations: iterations}
}
