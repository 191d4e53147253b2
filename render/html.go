package render

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jakhac/graph-algorithms/animate"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/trace"
)

// Palette used by HTML.
const (
	colorPlain   = "#9e9e9e"
	colorVisited = "#42a5f5"
	colorSuccess = "#43a047"
	colorFailure = "#e53935"
	colorStart   = "#fb8c00"
	colorFinish  = "#8e24aa"
)

type edgeKey struct{ from, to core.Label }

// HTML renders a graph and the colors applied by a playback as a go-echarts
// page. Node positions are the canvas coordinates, scaled by Scale.
type HTML struct {
	mu    sync.Mutex
	g     *core.Graph
	title string
	scale float32
	nodes map[core.Label]string
	edges map[edgeKey]string
}

var _ animate.Renderer = (*HTML)(nil)

// NewHTML creates an HTML renderer for g.
func NewHTML(g *core.Graph, title string) *HTML {
	h := &HTML{g: g, title: title, scale: 10}
	h.RedrawAll()

	return h
}

// Draw implements animate.Renderer.
func (h *HTML) Draw(s trace.Step) { h.paint(s, colorVisited) }

// Highlight implements animate.Renderer.
func (h *HTML) Highlight(s trace.Step, c animate.Color) {
	switch c {
	case animate.ColorSuccess:
		h.paint(s, colorSuccess)
	case animate.ColorFailure:
		h.paint(s, colorFailure)
	default:
		h.paint(s, colorPlain)
	}
}

// RedrawAll implements animate.Renderer.
func (h *HTML) RedrawAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nodes = make(map[core.Label]string)
	h.edges = make(map[edgeKey]string)
}

func (h *HTML) paint(s trace.Step, color string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	switch s.Kind {
	case trace.StepNode:
		h.nodes[s.Node.Label] = color
	case trace.StepEdge:
		h.edges[edgeKey{s.Edge.From.Label, s.Edge.To.Label}] = color
	}
}

// NodeColor returns the color currently assigned to l.
func (h *HTML) NodeColor(l core.Label) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.nodeColor(l)
}

func (h *HTML) nodeColor(l core.Label) string {
	if c, ok := h.nodes[l]; ok {
		return c
	}
	if n := h.g.Start(); n != nil && n.Label == l {
		return colorStart
	}
	if n := h.g.Finish(); n != nil && n.Label == l {
		return colorFinish
	}

	return colorPlain
}

// Render writes the page to w.
func (h *HTML) Render(w io.Writer) error {
	h.mu.Lock()
	nodes, links := h.series()
	h.mu.Unlock()

	page := components.NewPage()
	page.AddCharts(h.chart(nodes, links))

	return page.Render(w)
}

// RenderToFile writes the page to filename.
func (h *HTML) RenderToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", filename, err)
	}
	if err := h.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("render: write %s: %w", filename, err)
	}

	return f.Close()
}

// series builds the chart data. Caller holds mu.
func (h *HTML) series() ([]opts.GraphNode, []opts.GraphLink) {
	ns := h.g.Nodes()
	nodes := make([]opts.GraphNode, 0, len(ns))
	for _, n := range ns {
		nodes = append(nodes, opts.GraphNode{
			Name:       string(n.Label),
			X:          float32(n.X) * h.scale,
			Y:          float32(n.Y) * h.scale * 2,
			SymbolSize: 22,
			ItemStyle:  &opts.ItemStyle{Color: h.nodeColor(n.Label)},
		})
	}

	es := h.g.Edges()
	links := make([]opts.GraphLink, 0, len(es))
	for _, e := range es {
		color, ok := h.edges[edgeKey{e.From.Label, e.To.Label}]
		width := float32(3)
		if !ok {
			color, width = colorPlain, 1
		}
		links = append(links, opts.GraphLink{
			Source:    string(e.From.Label),
			Target:    string(e.To.Label),
			Value:     float32(e.Cost),
			LineStyle: &opts.LineStyle{Color: color, Width: width},
		})
	}

	return nodes, links
}

func (h *HTML) chart(nodes []opts.GraphNode, links []opts.GraphLink) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: h.title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithTitleOpts(opts.Title{Title: h.title}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"graph",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout:     "none",
				Roam:       opts.Bool(true),
				EdgeSymbol: []string{"none", "arrow"},
				EdgeLabel: &opts.EdgeLabel{
					Show:      opts.Bool(true),
					Formatter: "{c}",
				},
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "inside",
		}),
	)

	return graph
}
