package main

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/jakhac/graph-algorithms/animate"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/trace"
)

// paint is the drawing state of one element.
type paint uint8

const (
	paintPlain paint = iota
	paintVisited
	paintSuccess
	paintFailure
	paintStart
	paintFinish
	paintCost
)

var paintStyles = [...]lipgloss.Style{
	paintPlain:   lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	paintVisited: lipgloss.NewStyle().Foreground(lipgloss.Color("#42A5F5")).Bold(true),
	paintSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true),
	paintFailure: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
	paintStart:   lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#FFA500")).Bold(true),
	paintFinish:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#FF00FF")).Bold(true),
	paintCost:    lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
}

type edgeKey struct{ from, to core.Label }

// canvas is the terminal renderer: it keeps the paint of every touched
// element and draws the graph onto a grid of cells.
type canvas struct {
	mu     sync.Mutex
	g      *core.Graph
	nodes  map[core.Label]paint
	edges  map[edgeKey]paint
	status animate.Snapshot
}

var (
	_ animate.Renderer       = (*canvas)(nil)
	_ animate.StatusReporter = (*canvas)(nil)
	_ animate.Resetter       = (*canvas)(nil)
)

func newCanvas(g *core.Graph) *canvas {
	c := &canvas{g: g}
	c.clear()

	return c
}

func (c *canvas) clear() {
	c.nodes = make(map[core.Label]paint)
	c.edges = make(map[edgeKey]paint)
}

func (c *canvas) set(s trace.Step, p paint) {
	switch s.Kind {
	case trace.StepNode:
		c.nodes[s.Node.Label] = p
	case trace.StepEdge:
		c.edges[edgeKey{s.Edge.From.Label, s.Edge.To.Label}] = p
	}
}

// Draw implements animate.Renderer.
func (c *canvas) Draw(s trace.Step) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(s, paintVisited)
}

// Highlight implements animate.Renderer.
func (c *canvas) Highlight(s trace.Step, col animate.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch col {
	case animate.ColorSuccess:
		c.set(s, paintSuccess)
	case animate.ColorFailure:
		c.set(s, paintFailure)
	default:
		c.set(s, paintPlain)
	}
}

// RedrawAll implements animate.Renderer.
func (c *canvas) RedrawAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear()
}

// Reset implements animate.Resetter.
func (c *canvas) Reset() { c.RedrawAll() }

// ReportStatus implements animate.StatusReporter.
func (c *canvas) ReportStatus(s animate.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = s
}

// Status returns the last reported snapshot.
func (c *canvas) Status() animate.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

// setGraph swaps the graph and clears all paint.
func (c *canvas) setGraph(g *core.Graph) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.g = g
	c.clear()
	c.status = animate.Snapshot{}
}

// cell is one grid position.
type cell struct {
	r rune
	p paint
}

// render draws the graph into a width × height block of text.
func (c *canvas) render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}
	put := func(x, y int, r rune, p paint) {
		if y >= 0 && y < height && x >= 0 && x < width {
			grid[y][x] = cell{r: r, p: p}
		}
	}

	// 1) Edges, plain first so painted edges win shared cells.
	edges := c.g.Edges()
	for pass := 0; pass < 2; pass++ {
		for _, e := range edges {
			p := c.edges[edgeKey{e.From.Label, e.To.Label}]
			if (p == paintPlain) != (pass == 0) {
				continue
			}
			pts := line(e.From.X, e.From.Y, e.To.X, e.To.Y)
			if len(pts) < 3 {
				continue
			}
			for _, pt := range pts[1 : len(pts)-1] {
				put(pt[0], pt[1], '·', p)
			}
			tip := pts[len(pts)-2]
			put(tip[0], tip[1], arrow(e.To.X-e.From.X, e.To.Y-e.From.Y), p)
			mid := pts[len(pts)/2]
			for i, r := range strconv.Itoa(e.Cost) {
				put(mid[0]+i, mid[1], r, paintCost)
			}
		}
	}

	// 2) Nodes on top.
	for _, n := range c.g.Nodes() {
		p, ok := c.nodes[n.Label]
		switch {
		case ok:
		case n.IsStart:
			p = paintStart
		case n.IsFinish:
			p = paintFinish
		}
		for i, r := range string(n.Label) {
			put(n.X+i, n.Y, r, p)
		}
	}

	// 3) Rows as styled runs.
	var b strings.Builder
	for y, row := range grid {
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].p == row[start].p {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(cl.r)
			}
			b.WriteString(paintStyles[row[start].p].Render(run.String()))
			start = x
		}
		if y < len(grid)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// line returns the cells from (x0,y0) to (x1,y1) inclusive (Bresenham).
func line(x0, y0, x1, y1 int) [][2]int {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	var pts [][2]int
	for {
		pts = append(pts, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// arrow picks a glyph pointing along (dx, dy).
func arrow(dx, dy int) rune {
	switch {
	case abs(dx) >= 2*abs(dy):
		if dx > 0 {
			return '→'
		}
		return '←'
	case abs(dy) >= 2*abs(dx):
		if dy > 0 {
			return '↓'
		}
		return '↑'
	case dx > 0 && dy > 0:
		return '↘'
	case dx > 0:
		return '↗'
	case dy > 0:
		return '↙'
	default:
		return '↖'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
