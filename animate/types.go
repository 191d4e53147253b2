// Package animate plays a decoded search Replay on a Renderer.
//
// A Player is a cooperative, timer-driven state machine:
//
//	Idle → Running ⇄ Paused
//	Running | Paused → Aborted
//	Running → Terminated(success | cycle | deadlock | noPathToFinish)
//
// Each scheduling turn applies steps until something becomes visible, then
// waits baseDelay × speed before the next turn. Instructions and elements
// buffered behind a fullDraw never cost a tick. Steps are applied in replay
// order; only the timing between them varies.
//
// Timers come from a Scheduler. The default uses time.AfterFunc; tests and
// event-loop UIs supply their own. Stale timers, left over after a pause,
// abort or restart, are discarded by a generation counter.
package animate

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jakhac/graph-algorithms/logging"
	"github.com/jakhac/graph-algorithms/metrics"
	"github.com/jakhac/graph-algorithms/trace"
)

// Sentinel errors.
var (
	ErrNilReplay    = errors.New("animate: replay is nil")
	ErrInvalidState = errors.New("animate: operation not allowed in current state")
	ErrBadSpeed     = errors.New("animate: speed factor must be positive")
	ErrUnknownSpeed = errors.New("animate: unknown speed preset")
)

// DefaultBaseDelay is the tick length at speed 1.0.
const DefaultBaseDelay = 500 * time.Millisecond

// State is the lifecycle state of a Player.
type State uint8

const (
	Idle State = iota
	Running
	Paused
	Aborted
	Terminated
)

var stateNames = [...]string{
	Idle:       "idle",
	Running:    "running",
	Paused:     "paused",
	Aborted:    "aborted",
	Terminated: "terminated",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "unknown"
}

// Mode is the drawing mode while Running.
type Mode uint8

const (
	// Single draws every element as it arrives.
	Single Mode = iota
	// Full buffers elements until the next single-draw instruction.
	Full
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Full {
		return "fullDraw"
	}

	return "singleDraw"
}

// Status classifies a terminated playback. StatusNone is reported until then.
type Status uint8

const (
	StatusNone Status = iota
	StatusSuccess
	StatusCycle
	StatusDeadlock
	StatusNoPath
)

var statusNames = [...]string{
	StatusNone:     "",
	StatusSuccess:  "success",
	StatusCycle:    "cycle",
	StatusDeadlock: "deadlock",
	StatusNoPath:   "noPathToFinish",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return "unknown"
}

func statusOf(o trace.Outcome) Status {
	switch o {
	case trace.Success:
		return StatusSuccess
	case trace.Cycle:
		return StatusCycle
	case trace.Deadlock:
		return StatusDeadlock
	default:
		return StatusNoPath
	}
}

// Color is a highlight color.
type Color uint8

const (
	ColorNeutral Color = iota
	ColorSuccess
	ColorFailure
)

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case ColorSuccess:
		return "success"
	case ColorFailure:
		return "failure"
	default:
		return "neutral"
	}
}

// Renderer draws replay elements. The Player calls it while holding its own
// lock, so a Renderer must not call back into the Player.
type Renderer interface {
	// Draw shows a node or edge as visited.
	Draw(s trace.Step)
	// Highlight shows a node or edge of the final path in c.
	Highlight(s trace.Step, c Color)
	// RedrawAll resets the canvas to the plain graph.
	RedrawAll()
}

// StatusReporter is implemented by renderers that display progress.
type StatusReporter interface {
	ReportStatus(s Snapshot)
}

// Resetter is implemented by renderers that own affordances to restore on abort.
type Resetter interface {
	Reset()
}

// Snapshot is a point-in-time view of a Player.
type Snapshot struct {
	RunID    string
	State    State
	Mode     Mode
	Status   Status
	Steps    int // edges drawn in single mode so far
	Total    int // edges a complete playback draws in single mode
	Position int // replay steps consumed
	Length   int // replay steps in total
	Cost     int64
	HasCost  bool
	Speed    float64
}

// Options configures a Player.
type Options struct {
	Scheduler Scheduler
	BaseDelay time.Duration
	Speed     float64
	Logger    *slog.Logger
	Metrics   *metrics.Registry
	OnFinish  func(Snapshot)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns wall-clock timers, a 500ms base delay, speed 1.0 and
// a discard logger.
func DefaultOptions() Options {
	return Options{
		Scheduler: RealScheduler(),
		BaseDelay: DefaultBaseDelay,
		Speed:     1.0,
		Logger:    logging.Discard(),
	}
}

// WithScheduler sets the timer source. Panics on nil.
func WithScheduler(s Scheduler) Option {
	if s == nil {
		panic("animate: WithScheduler(nil)")
	}
	return func(o *Options) { o.Scheduler = s }
}

// WithBaseDelay sets the tick length at speed 1.0. Panics if d <= 0.
func WithBaseDelay(d time.Duration) Option {
	if d <= 0 {
		panic("animate: WithBaseDelay requires a positive duration")
	}
	return func(o *Options) { o.BaseDelay = d }
}

// WithSpeed sets the initial speed factor. Panics if f is not positive.
func WithSpeed(f float64) Option {
	if !(f > 0) {
		panic("animate: WithSpeed requires a positive factor")
	}
	return func(o *Options) { o.Speed = f }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("animate: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records finished and aborted playbacks into reg. Panics on nil.
func WithMetrics(reg *metrics.Registry) Option {
	if reg == nil {
		panic("animate: WithMetrics(nil)")
	}
	return func(o *Options) { o.Metrics = reg }
}

// WithOnFinish registers fn to run, outside the Player's lock, whenever a
// playback terminates or is aborted. Panics on nil.
func WithOnFinish(fn func(Snapshot)) Option {
	if fn == nil {
		panic("animate: WithOnFinish(nil)")
	}
	return func(o *Options) { o.OnFinish = fn }
}
