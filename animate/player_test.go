package animate_test

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakhac/graph-algorithms/animate"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/logging"
	"github.com/jakhac/graph-algorithms/metrics"
	"github.com/jakhac/graph-algorithms/trace"
)

const tick = 100 * time.Millisecond

// recorder logs every renderer call.
type recorder struct {
	calls  []string
	last   animate.Snapshot
	resets int
}

func (r *recorder) Draw(s trace.Step) { r.calls = append(r.calls, "draw "+s.String()) }
func (r *recorder) Highlight(s trace.Step, c animate.Color) {
	r.calls = append(r.calls, "highlight "+s.String()+" "+c.String())
}
func (r *recorder) RedrawAll() { r.calls = append(r.calls, "redraw") }
func (r *recorder) ReportStatus(s animate.Snapshot) { r.last = s }
func (r *recorder) Reset() { r.resets++ }

// detour is the replay of a shortest-path search over A→B(1), B→C(1), A→C(5).
func detour() *trace.Replay {
	a, b, c := &core.Node{Label: "A"}, &core.Node{Label: "B"}, &core.Node{Label: "C"}
	ab := &core.Edge{From: a, To: b, Cost: 1}
	bc := &core.Edge{From: b, To: c, Cost: 1}
	single, full := trace.Instruction(trace.StepSingle), trace.Instruction(trace.StepFull)
	n, e := trace.NodeStep, trace.EdgeStep

	return &trace.Replay{
		RunID:   "run-1",
		Outcome: trace.Success,
		Cost:    2,
		Path:    []trace.Step{n(a), e(ab), n(b), e(bc), n(c)},
		Steps: []trace.Step{
			single, n(a), single, e(ab), n(b),
			full, n(a), e(ab), n(b),
			single, e(bc), n(c),
		},
	}
}

func newPlayer(r animate.Renderer, s animate.Scheduler, opts ...animate.Option) *animate.Player {
	opts = append([]animate.Option{animate.WithScheduler(s), animate.WithBaseDelay(tick)}, opts...)
	return animate.NewPlayer(r, opts...)
}

func TestPlayer_FullPlayback(t *testing.T) {
	rec := &recorder{}
	sched := animate.NewManualScheduler()
	var finished []animate.Snapshot
	p := newPlayer(rec, sched, animate.WithOnFinish(func(s animate.Snapshot) { finished = append(finished, s) }))

	require.NoError(t, p.Start(detour()))
	assert.Empty(t, rec.calls, "first step waits one tick")
	d, ok := sched.NextDelay()
	require.True(t, ok)
	assert.Equal(t, tick, d)

	assert.Equal(t, 1, sched.Advance(tick))
	assert.Equal(t, []string{"draw A"}, rec.calls)
	assert.Equal(t, animate.Running, p.Snapshot().State)

	sched.Advance(time.Minute)
	assert.Equal(t, []string{
		"draw A", "draw A→B", "draw B",
		"redraw", "draw A", "draw A→B", "draw B",
		"draw B→C", "draw C",
		"redraw",
		"highlight A success", "highlight A→B success", "highlight B success",
		"highlight B→C success", "highlight C success",
	}, rec.calls)

	snap := p.Snapshot()
	assert.Equal(t, animate.Terminated, snap.State)
	assert.Equal(t, animate.StatusSuccess, snap.Status)
	assert.Equal(t, 2, snap.Steps)
	assert.Equal(t, 2, snap.Total)
	assert.True(t, snap.HasCost)
	assert.EqualValues(t, 2, snap.Cost)
	assert.Equal(t, snap, rec.last)
	require.Len(t, finished, 1)
	assert.Equal(t, "run-1", finished[0].RunID)
	assert.Zero(t, sched.Pending())
}

func TestPlayer_TurnsEndOnVisibleChange(t *testing.T) {
	rec := &recorder{}
	sched := animate.NewManualScheduler()
	p := newPlayer(rec, sched)
	require.NoError(t, p.Start(detour()))

	// A, A→B, B, flush, B→C, C, then the terminating turn.
	turns := sched.Drain(100)
	assert.Equal(t, 7, turns)
	assert.Equal(t, animate.Terminated, p.Snapshot().State)
}

func TestPlayer_PauseStepResume(t *testing.T) {
	rec := &recorder{}
	sched := animate.NewManualScheduler()
	p := newPlayer(rec, sched)
	require.NoError(t, p.Start(detour()))
	sched.Advance(tick)

	require.NoError(t, p.Pause())
	assert.Zero(t, sched.Pending())
	sched.Advance(time.Minute)
	assert.Equal(t, []string{"draw A"}, rec.calls)
	assert.ErrorIs(t, p.Pause(), animate.ErrInvalidState)

	more, err := p.Step()
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, []string{"draw A", "draw A→B"}, rec.calls)
	assert.Equal(t, 1, p.Snapshot().Steps)
	assert.Zero(t, sched.Pending(), "single-stepping does not schedule")

	require.NoError(t, p.Resume())
	assert.Equal(t, 1, sched.Pending())
	sched.Drain(100)
	assert.Equal(t, animate.Terminated, p.Snapshot().State)
	assert.ErrorIs(t, p.Resume(), animate.ErrInvalidState)
}

func TestPlayer_StepWhileRunningReschedules(t *testing.T) {
	sched := animate.NewManualScheduler()
	p := newPlayer(&recorder{}, sched)
	require.NoError(t, p.Start(detour()))

	_, err := p.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, sched.Pending())
}

// leaky hands out timers whose Stop never cancels, as when a timer has
// already fired but its callback has not yet run.
type leaky struct{ *animate.ManualScheduler }

type noStop struct{}

func (noStop) Stop() bool { return false }

func (l leaky) AfterFunc(d time.Duration, fn func()) animate.Timer {
	l.ManualScheduler.AfterFunc(d, fn)
	return noStop{}
}

func TestPlayer_StaleTimersDropped(t *testing.T) {
	rec := &recorder{}
	sched := leaky{animate.NewManualScheduler()}
	p := newPlayer(rec, sched)
	require.NoError(t, p.Start(detour()))
	require.NoError(t, p.Pause())
	require.NoError(t, p.Resume())

	// Two callbacks pending, only the second is current.
	require.Equal(t, 2, sched.Pending())
	require.True(t, sched.Fire())
	assert.Empty(t, rec.calls)
	require.True(t, sched.Fire())
	assert.Equal(t, []string{"draw A"}, rec.calls)
}

func TestPlayer_Abort(t *testing.T) {
	rec := &recorder{}
	sched := animate.NewManualScheduler()
	reg := metrics.NewRegistry()
	var finished []animate.Snapshot
	p := newPlayer(rec, sched,
		animate.WithMetrics(reg),
		animate.WithOnFinish(func(s animate.Snapshot) { finished = append(finished, s) }),
	)
	assert.ErrorIs(t, p.Abort(), animate.ErrInvalidState)

	require.NoError(t, p.Start(detour()))
	sched.Advance(2 * tick)
	require.NoError(t, p.Abort())

	assert.Zero(t, sched.Pending())
	assert.Equal(t, 1, rec.resets)
	require.Len(t, finished, 1)
	assert.Equal(t, animate.Aborted, finished[0].State)
	assert.Equal(t, 4, finished[0].Position)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.AnimationsTotal.WithLabelValues("aborted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.AnimationSteps))

	_, err := p.Step()
	assert.ErrorIs(t, err, animate.ErrInvalidState)
}

func TestPlayer_RestartDiscardsOldRun(t *testing.T) {
	rec := &recorder{}
	sched := animate.NewManualScheduler()
	p := newPlayer(rec, sched)
	require.NoError(t, p.Start(detour()))
	sched.Advance(3 * tick)

	require.NoError(t, p.Start(detour()))
	assert.Equal(t, 1, sched.Pending())
	snap := p.Snapshot()
	assert.Zero(t, snap.Steps)
	assert.Zero(t, snap.Position)
	assert.Equal(t, animate.Single, snap.Mode)
}

func TestPlayer_SetSpeed(t *testing.T) {
	sched := animate.NewManualScheduler()
	p := newPlayer(&recorder{}, sched)
	require.NoError(t, p.Start(detour()))

	require.NoError(t, p.SetSpeed(0.5))
	d, _ := sched.NextDelay()
	assert.Equal(t, tick, d, "pending turn keeps its delay")

	sched.Advance(tick)
	d, _ = sched.NextDelay()
	assert.Equal(t, tick/2, d)

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, p.SetSpeed(bad), animate.ErrBadSpeed)
	}
	assert.Equal(t, 0.5, p.Speed())
}

func TestPlayer_RevealInstant(t *testing.T) {
	rec := &recorder{}
	var buf bytes.Buffer
	p := newPlayer(rec, animate.NewManualScheduler(), animate.WithLogger(logging.New("text", "info", &buf)))

	require.NoError(t, p.RevealInstant(detour()))
	snap := p.Snapshot()
	assert.Equal(t, animate.Terminated, snap.State)
	assert.Equal(t, 2, snap.Steps)
	assert.Equal(t, "redraw", rec.calls[0])
	assert.Len(t, rec.calls, 6)
	assert.Contains(t, buf.String(), "playback finished")
	assert.Contains(t, buf.String(), "status=success")
}

func TestPlayer_FailureHighlight(t *testing.T) {
	a, b := &core.Node{Label: "A"}, &core.Node{Label: "B"}
	ab := &core.Edge{From: a, To: b}
	ba := &core.Edge{From: b, To: a}
	replay := &trace.Replay{
		Outcome: trace.Cycle,
		Path:    []trace.Step{trace.NodeStep(a), trace.EdgeStep(ab), trace.NodeStep(b), trace.EdgeStep(ba)},
		Steps: []trace.Step{
			trace.Instruction(trace.StepSingle), trace.NodeStep(a), trace.EdgeStep(ab), trace.NodeStep(b),
			trace.Instruction(trace.StepCycle),
		},
	}

	rec := &recorder{}
	sched := animate.NewManualScheduler()
	p := newPlayer(rec, sched)
	require.NoError(t, p.Start(replay))
	sched.Drain(100)

	snap := p.Snapshot()
	assert.Equal(t, animate.StatusCycle, snap.Status)
	assert.False(t, snap.HasCost)
	assert.Contains(t, rec.calls, "highlight B→A failure")
	assert.NotContains(t, rec.calls, "highlight A success")
}

func TestPlayer_Validation(t *testing.T) {
	p := newPlayer(&recorder{}, animate.NewManualScheduler())
	assert.ErrorIs(t, p.Start(nil), animate.ErrNilReplay)
	assert.ErrorIs(t, p.RevealInstant(nil), animate.ErrNilReplay)
	assert.Equal(t, animate.Idle, p.Snapshot().State)

	assert.Panics(t, func() { animate.NewPlayer(nil) })
	assert.Panics(t, func() { animate.WithScheduler(nil) })
	assert.Panics(t, func() { animate.WithBaseDelay(0) })
	assert.Panics(t, func() { animate.WithSpeed(-2) })
	assert.Panics(t, func() { animate.WithOnFinish(nil) })
}

func TestSpeedPresets(t *testing.T) {
	f, err := animate.SpeedPreset("Fast")
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)

	_, err = animate.SpeedPreset("ludicrous")
	assert.ErrorIs(t, err, animate.ErrUnknownSpeed)

	assert.Equal(t, []string{"slower", "slow", "steady", "medium", "moderate", "fast", "insane"}, animate.SpeedPresets())

	name, f := animate.NextPreset(1.0, 1)
	assert.Equal(t, "moderate", name)
	assert.Equal(t, 0.5, f)
	name, _ = animate.NextPreset(0.05, 1)
	assert.Equal(t, "insane", name)
	name, _ = animate.NextPreset(1.75, -1)
	assert.Equal(t, "slower", name)
}
