package trace

import "github.com/jakhac/graph-algorithms/core"

// StepKind tags a decoded Step.
type StepKind uint8

const (
	StepNode StepKind = iota
	StepEdge
	StepSingle
	StepFull
	StepCycle
	StepDeadlock
)

var stepNames = [...]string{
	StepNode:     "node",
	StepEdge:     "edge",
	StepSingle:   "singleDraw",
	StepFull:     "fullDraw",
	StepCycle:    "cycle",
	StepDeadlock: "deadlock",
}

// String implements fmt.Stringer.
func (k StepKind) String() string {
	if int(k) < len(stepNames) {
		return stepNames[k]
	}

	return "unknown"
}

// Step is one decoded element: a graph object to draw or an instruction.
// Node is set for StepNode, Edge for StepEdge.
type Step struct {
	Kind StepKind
	Node *core.Node
	Edge *core.Edge
}

// IsElement reports whether s refers to a graph object.
func (s Step) IsElement() bool { return s.Kind == StepNode || s.Kind == StepEdge }

// String renders elements by label and instructions by name.
func (s Step) String() string {
	switch s.Kind {
	case StepNode:
		return string(s.Node.Label)
	case StepEdge:
		return string(s.Edge.From.Label) + "→" + string(s.Edge.To.Label)
	default:
		return s.Kind.String()
	}
}

// NodeStep wraps n.
func NodeStep(n *core.Node) Step { return Step{Kind: StepNode, Node: n} }

// EdgeStep wraps e.
func EdgeStep(e *core.Edge) Step { return Step{Kind: StepEdge, Edge: e} }

// Instruction returns an instruction step of kind k.
func Instruction(k StepKind) Step { return Step{Kind: k} }

// Replay is a Result decoded against a concrete graph, ready for playback.
//
// Path holds the result path as alternating nodes and edges. Steps is the
// decoded animation sequence.
type Replay struct {
	RunID      string
	Outcome    Outcome
	Path       []Step
	Steps      []Step
	Cost       int64
	Iterations int
}

// HasCost reports whether Cost is defined.
func (r *Replay) HasCost() bool { return r.Outcome == Success }

// EdgeSteps counts the edges a full playback draws in single mode: every
// edge that is not buffered behind a FullDraw.
func (r *Replay) EdgeSteps() int {
	n := 0
	single := true
	for _, s := range r.Steps {
		switch s.Kind {
		case StepSingle:
			single = true
		case StepFull:
			single = false
		case StepEdge:
			if single {
				n++
			}
		}
	}

	return n
}
