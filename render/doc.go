// Package render provides animate.Renderer implementations that do not need
// a terminal: Recorder writes one line per call, HTML accumulates colors and
// writes a go-echarts graph page.
//
// Renderers identify nodes and edges by label, so a replay decoded against a
// snapshot of a graph renders onto the live graph.
package render
