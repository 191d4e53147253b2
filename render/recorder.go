package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/jakhac/graph-algorithms/animate"
	"github.com/jakhac/graph-algorithms/trace"
)

// Recorder logs every renderer call as a line of text.
type Recorder struct {
	mu     sync.Mutex
	w      io.Writer
	lines  []string
	status animate.Snapshot
}

var (
	_ animate.Renderer       = (*Recorder)(nil)
	_ animate.StatusReporter = (*Recorder)(nil)
)

// NewRecorder returns a Recorder that also writes each line to w when w is
// not nil.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

func (r *Recorder) emit(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	if r.w != nil {
		fmt.Fprintln(r.w, line)
	}
}

// Draw implements animate.Renderer.
func (r *Recorder) Draw(s trace.Step) { r.emit("draw " + s.String()) }

// Highlight implements animate.Renderer.
func (r *Recorder) Highlight(s trace.Step, c animate.Color) {
	r.emit("highlight " + s.String() + " " + c.String())
}

// RedrawAll implements animate.Renderer.
func (r *Recorder) RedrawAll() { r.emit("redraw") }

// ReportStatus implements animate.StatusReporter.
func (r *Recorder) ReportStatus(s animate.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = s
}

// Lines returns a copy of everything recorded.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.lines...)
}

// Status returns the last reported snapshot.
func (r *Recorder) Status() animate.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.status
}
