package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/trace"
)

func TestTrace_Strings(t *testing.T) {
	tr := trace.Trace{trace.Control(trace.KindSingleDraw)}
	tr = tr.AppendPath([]core.Label{"A", "B", "C"})
	tr = append(tr, trace.Control(trace.KindDeadlock))

	assert.Equal(t, "singleDraw A B C deadlock", tr.String())
	assert.Equal(t, []string{"singleDraw", "START", "B", "FINISH", "deadlock"}, tr.Strings("A", "C"))
	assert.True(t, tr.Contains(trace.KindDeadlock))
	assert.False(t, tr.Contains(trace.KindCycle))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "removeLastNode", trace.KindRemoveLast.String())
	assert.Equal(t, "singleDrawMid", trace.KindSingleDrawMid.String())
	assert.Equal(t, "unknown", trace.Kind(200).String())
	assert.Equal(t, "noPathToFinish", trace.NoPath.String())
	assert.Equal(t, "fullDraw", trace.StepFull.String())
}

func TestReplay_EdgeSteps(t *testing.T) {
	a := &core.Node{Label: "A"}
	b := &core.Node{Label: "B"}
	ab := &core.Edge{From: a, To: b, Cost: 1}

	r := &trace.Replay{Steps: []trace.Step{
		trace.Instruction(trace.StepSingle),
		trace.NodeStep(a),
		trace.EdgeStep(ab),
		trace.NodeStep(b),
		trace.Instruction(trace.StepFull),
		trace.NodeStep(a),
		trace.EdgeStep(ab),
		trace.Instruction(trace.StepSingle),
		trace.EdgeStep(ab),
	}}

	assert.Equal(t, 2, r.EdgeSteps())
	assert.Equal(t, "A→B", r.Steps[2].String())
	assert.True(t, r.Steps[1].IsElement())
	assert.False(t, r.Steps[0].IsElement())
}

func TestResult_HasCost(t *testing.T) {
	assert.True(t, (&trace.Result{Outcome: trace.Success}).HasCost())
	res := trace.NoPathResult(trace.Trace{trace.Node("S")}, 0)
	assert.False(t, res.HasCost())
	assert.Empty(t, res.Path)
}
