package builder

import (
	"github.com/jakhac/graph-algorithms/core"
)

// Layout origin and column spacing of Lattice.
const (
	latticeOrigin = 5
)

// latticeParams holds the size-dependent knobs of Lattice.
type latticeParams struct {
	marginX   int     // right margin subtracted from the canvas width
	marginY   int     // bottom margin subtracted from the canvas height
	rows      int     // vertical slots per column
	colStep   int     // horizontal distance between columns
	minNodes  int     // keep adding columns until at least this many nodes exist
	skipNode  float64 // probability a slot stays empty
	extraDiag float64 // lowers the chance of diagonal edges
}

var latticeSizes = [...]latticeParams{
	Small:  {marginX: 30, marginY: 15, rows: 4, colStep: 16, minNodes: 9, skipNode: 0.2, extraDiag: 0.2},
	Medium: {marginX: 21, marginY: 5, rows: 5, colStep: 14, minNodes: 12, skipNode: 0.3, extraDiag: 0.1},
	Large:  {marginX: 5, marginY: 2, rows: 6, colStep: 12, minNodes: 20, skipNode: 0.1, extraDiag: 0},
}

// Lattice builds columns of jittered nodes, left to right.
//
// Edges, all directed rightwards or downwards:
//   - vertical: each node to the next one in its column;
//   - horizontal (60%): slot j to slot j of the next column;
//   - diagonal (60% minus a size-dependent amount): slot j to slot j+1 of the
//     next column;
//   - rails: the top and the bottom node of each column to those of the next.
//
// The first node is the start and the last node the finish; the top rail
// followed by the last column's vertical edges always connects them.
//
// Errors: ErrUnknownSize, ErrNeedRandSource, ErrGraphNotEmpty,
// ErrCanvasTooSmall, ErrConstructFailed (label capacity exhausted).
func Lattice(size Size) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate.
		l, err := newLayout(MethodLattice, g, cfg, size)
		if err != nil {
			return err
		}
		p := latticeSizes[size]
		maxX := cfg.width - p.marginX
		maxY := cfg.height - p.marginY
		rowStep := (maxY - latticeOrigin) / p.rows
		if maxX <= latticeOrigin || rowStep < 2 {
			return builderErrorf(MethodLattice, "%w: %dx%d", ErrCanvasTooSmall, cfg.width, cfg.height)
		}

		// 2) Place columns until the canvas is covered and enough nodes exist.
		var cols [][]int
		for x := latticeOrigin; x < maxX || len(l.nodes) < p.minNodes; x += p.colStep {
			var col []int
			y := latticeOrigin
			for ; y < maxY; y += rowStep {
				y += cfg.jitter()
				if !cfg.chance(p.skipNode) {
					continue
				}
				i, err := l.add(x+cfg.jitter(), y)
				if err != nil {
					return err
				}
				col = append(col, i)
			}
			if len(col) == 0 {
				i, err := l.add(x+cfg.jitter(), y-rowStep)
				if err != nil {
					return err
				}
				col = append(col, i)
			}
			cols = append(cols, col)
		}

		// 3) Edges.
		for c, col := range cols {
			var next []int
			if c < len(cols)-1 {
				next = cols[c+1]
			}
			for j := 0; j < len(col)-1; j++ {
				if err := l.connect(col[j], col[j+1]); err != nil {
					return err
				}
				if next == nil {
					continue
				}
				if cfg.chance(0.4) && j < len(next) {
					if err := l.connect(col[j], next[j]); err != nil {
						return err
					}
				}
				if cfg.chance(0.4+p.extraDiag) && j+1 < len(next) {
					if err := l.connect(col[j], next[j+1]); err != nil {
						return err
					}
				}
			}
			if next == nil {
				continue
			}
			if err := l.connect(col[0], next[0]); err != nil {
				return err
			}
			if err := l.connect(col[len(col)-1], next[len(next)-1]); err != nil {
				return err
			}
		}

		// 4) Endpoints.
		return l.endpoints(0, len(l.nodes)-1)
	}
}
