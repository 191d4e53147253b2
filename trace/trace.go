// Package trace defines the contract between the path searches and the
// animation interpreter: the label-level token stream a search emits, the
// Result it returns, and the object-level Replay the translator decodes for
// playback.
//
// A Trace is a flat sequence of tokens. Label tokens name nodes; an edge is
// implied between two consecutive labels whenever the graph has one. Control
// tokens steer the interpreter:
//
//	SingleDraw      draw each following element on its own tick
//	FullDraw        redraw the canvas and buffer following elements
//	SingleDrawEdge  the next label is reached by an edge from the previous one
//	SingleDrawMid   a branch diverges here from the previously drawn branch
//	RemoveLast      erase the most recent decoded element
//	CycleMark       walk closed a cycle
//	DeadlockMark    walk stopped at a node without exits
//
// Kind.String returns the historical token names so traces can be logged in
// the vocabulary renderers expect.
package trace

import (
	"strings"

	"github.com/jakhac/graph-algorithms/core"
)

// Kind tags a Token.
type Kind uint8

const (
	// KindLabel is a node reference.
	KindLabel Kind = iota
	KindSingleDraw
	KindFullDraw
	KindSingleDrawEdge
	KindSingleDrawMid
	KindRemoveLast
	KindCycle
	KindDeadlock
)

var kindNames = [...]string{
	KindLabel:          "label",
	KindSingleDraw:     "singleDraw",
	KindFullDraw:       "fullDraw",
	KindSingleDrawEdge: "singleDrawEdge",
	KindSingleDrawMid:  "singleDrawMid",
	KindRemoveLast:     "removeLastNode",
	KindCycle:          "cycle",
	KindDeadlock:       "deadlock",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Token is one element of a Trace. Label is set only for KindLabel.
type Token struct {
	Kind  Kind
	Label core.Label
}

// Node returns a label token.
func Node(l core.Label) Token { return Token{Kind: KindLabel, Label: l} }

// Control returns a control token of kind k.
func Control(k Kind) Token { return Token{Kind: k} }

// IsLabel reports whether t names a node.
func (t Token) IsLabel() bool { return t.Kind == KindLabel }

// String renders a label as itself and a control token by its name.
func (t Token) String() string {
	if t.Kind == KindLabel {
		return string(t.Label)
	}

	return t.Kind.String()
}

// Trace is the ordered token stream of one search.
type Trace []Token

// AppendPath appends one label token per element of path.
func (tr Trace) AppendPath(path []core.Label) Trace {
	for _, l := range path {
		tr = append(tr, Node(l))
	}

	return tr
}

// Contains reports whether tr holds a control token of kind k.
func (tr Trace) Contains(k Kind) bool {
	for _, t := range tr {
		if t.Kind == k {
			return true
		}
	}

	return false
}

// Strings renders tr as the flat list used by renderers, aliasing the start
// and finish labels to START and FINISH.
func (tr Trace) Strings(start, finish core.Label) []string {
	out := make([]string, len(tr))
	for i, t := range tr {
		switch {
		case t.IsLabel() && t.Label == start:
			out[i] = "START"
		case t.IsLabel() && t.Label == finish:
			out[i] = "FINISH"
		default:
			out[i] = t.String()
		}
	}

	return out
}

// String joins the tokens with spaces.
func (tr Trace) String() string {
	parts := make([]string, len(tr))
	for i, t := range tr {
		parts[i] = t.String()
	}

	return strings.Join(parts, " ")
}
