package animate

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/jakhac/graph-algorithms/trace"
)

// Player drives a Renderer through one Replay at a time.
type Player struct {
	mu      sync.Mutex
	r       Renderer
	options Options

	state  State
	mode   Mode
	status Status
	speed  float64

	replay *trace.Replay
	steps  []trace.Step
	pos    int
	buffer []trace.Step
	count  int
	total  int

	gen   uint64
	timer Timer
}

// NewPlayer creates an Idle Player. Panics if r is nil.
func NewPlayer(r Renderer, opts ...Option) *Player {
	if r == nil {
		panic("animate: NewPlayer(nil renderer)")
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Player{r: r, options: cfg, speed: cfg.Speed}
}

// Start begins playback of replay from its first step, replacing any playback
// in progress. The first turn runs after one tick.
func (p *Player) Start(replay *trace.Replay) error {
	if replay == nil {
		return ErrNilReplay
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.load(replay)
	p.state = Running
	p.report()
	p.schedule()
	p.options.Logger.Debug("playback started", "run_id", replay.RunID, "steps", len(p.steps), "speed", p.speed)

	return nil
}

// RevealInstant skips playback: the step counter jumps to what a full
// playback would reach and the final path is rendered at once.
func (p *Player) RevealInstant(replay *trace.Replay) error {
	if replay == nil {
		return ErrNilReplay
	}

	p.mu.Lock()
	p.load(replay)
	p.pos = len(p.steps)
	p.count = p.total
	p.finish()
	snap := p.snapshot()
	p.mu.Unlock()

	p.done(snap)

	return nil
}

// Step applies one turn: steps up to and including the next visible change.
// While Running the following turn is rescheduled; while Paused this
// single-steps. It reports whether steps remain.
func (p *Player) Step() (bool, error) {
	p.mu.Lock()
	if p.state != Running && p.state != Paused {
		err := fmt.Errorf("%w: step while %s", ErrInvalidState, p.state)
		p.mu.Unlock()
		return false, err
	}
	running := p.state == Running
	if running {
		p.cancel()
	}
	more := p.turn()
	if more && running {
		p.schedule()
	}
	snap := p.snapshot()
	p.mu.Unlock()

	if !more {
		p.done(snap)
	}

	return more, nil
}

// Pause stops scheduling; the position is kept.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Running {
		return fmt.Errorf("%w: pause while %s", ErrInvalidState, p.state)
	}
	p.cancel()
	p.state = Paused
	p.report()

	return nil
}

// Resume continues a paused playback after one tick.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused {
		return fmt.Errorf("%w: resume while %s", ErrInvalidState, p.state)
	}
	p.state = Running
	p.report()
	p.schedule()

	return nil
}

// Abort stops the playback for good and lets the renderer reset itself.
func (p *Player) Abort() error {
	p.mu.Lock()
	if p.state != Running && p.state != Paused {
		err := fmt.Errorf("%w: abort while %s", ErrInvalidState, p.state)
		p.mu.Unlock()
		return err
	}
	p.cancel()
	p.state = Aborted
	if rs, ok := p.r.(Resetter); ok {
		rs.Reset()
	}
	p.report()
	snap := p.snapshot()
	p.mu.Unlock()

	p.done(snap)

	return nil
}

// SetSpeed scales the delay of the next scheduled turn; a pending turn keeps
// its delay.
func (p *Player) SetSpeed(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return fmt.Errorf("%w: %v", ErrBadSpeed, factor)
	}
	p.mu.Lock()
	p.speed = factor
	p.mu.Unlock()

	return nil
}

// Speed returns the current speed factor.
func (p *Player) Speed() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.speed
}

// Snapshot returns the current progress.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snapshot()
}

// load resets all per-run state for replay. Caller holds mu.
func (p *Player) load(replay *trace.Replay) {
	p.cancel()
	p.replay = replay
	p.steps = append([]trace.Step(nil), replay.Steps...)
	p.pos = 0
	p.buffer = nil
	p.count = 0
	p.total = replay.EdgeSteps()
	p.mode = Single
	p.status = StatusNone
}

// delay is the wait before the next turn. Caller holds mu.
func (p *Player) delay() time.Duration {
	return time.Duration(float64(p.options.BaseDelay) * p.speed)
}

// schedule arms the next turn under the current generation. Caller holds mu.
func (p *Player) schedule() {
	gen := p.gen
	p.timer = p.options.Scheduler.AfterFunc(p.delay(), func() { p.tick(gen) })
}

// cancel invalidates any armed turn. Caller holds mu.
func (p *Player) cancel() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// tick is the timer callback; turns from an older generation are dropped.
func (p *Player) tick(gen uint64) {
	p.mu.Lock()
	if gen != p.gen || p.state != Running {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	more := p.turn()
	if more {
		p.schedule()
	}
	snap := p.snapshot()
	p.mu.Unlock()

	if !more {
		p.done(snap)
	}
}

// turn consumes steps until one becomes visible or the replay is exhausted,
// in which case the playback terminates. It reports whether steps remain.
// Caller holds mu.
func (p *Player) turn() bool {
	for p.pos < len(p.steps) {
		s := p.steps[p.pos]
		p.pos++

		switch s.Kind {
		case trace.StepFull:
			p.mode = Full
			p.r.RedrawAll()

		case trace.StepSingle:
			p.mode = Single
			if len(p.buffer) > 0 {
				for _, b := range p.buffer {
					p.r.Draw(b)
				}
				p.buffer = p.buffer[:0]
				p.report()
				return true
			}

		case trace.StepNode, trace.StepEdge:
			if p.mode == Full {
				p.buffer = append(p.buffer, s)
				continue
			}
			p.r.Draw(s)
			if s.Kind == trace.StepEdge {
				p.count++
			}
			p.report()
			return true

		case trace.StepCycle, trace.StepDeadlock:
			// Markers only; the outcome is rendered on termination.
		}
	}

	p.finish()

	return false
}

// finish renders the result path and terminates. Caller holds mu.
func (p *Player) finish() {
	p.cancel()
	p.buffer = nil
	p.r.RedrawAll()
	color := ColorFailure
	if p.replay.Outcome == trace.Success {
		color = ColorSuccess
	}
	for _, s := range p.replay.Path {
		p.r.Highlight(s, color)
	}
	p.status = statusOf(p.replay.Outcome)
	p.state = Terminated
	p.report()
}

// report forwards the current snapshot to a StatusReporter. Caller holds mu.
func (p *Player) report() {
	if sr, ok := p.r.(StatusReporter); ok {
		sr.ReportStatus(p.snapshot())
	}
}

// snapshot builds a Snapshot. Caller holds mu.
func (p *Player) snapshot() Snapshot {
	s := Snapshot{
		State:    p.state,
		Mode:     p.mode,
		Status:   p.status,
		Steps:    p.count,
		Total:    p.total,
		Position: p.pos,
		Length:   len(p.steps),
		Speed:    p.speed,
	}
	if p.replay != nil {
		s.RunID = p.replay.RunID
		s.Cost = p.replay.Cost
		s.HasCost = p.replay.HasCost()
	}

	return s
}

// done runs the end-of-playback side effects outside mu.
func (p *Player) done(s Snapshot) {
	log := p.options.Logger.With("run_id", s.RunID, "steps", s.Steps)
	if s.State == Aborted {
		log.Info("playback aborted", "position", s.Position, "length", s.Length)
	} else {
		attrs := []any{"status", s.Status.String()}
		if s.HasCost {
			attrs = append(attrs, "cost", s.Cost)
		}
		log.Info("playback finished", attrs...)
	}
	if p.options.Metrics != nil {
		p.options.Metrics.RecordAnimation(s.State.String(), s.Steps)
	}
	if p.options.OnFinish != nil {
		p.options.OnFinish(s)
	}
}
