package builder

import (
	"math"

	"github.com/jakhac/graph-algorithms/core"
)

// ringSize is the number of nodes per Circle ring, one every 30°.
const ringSize = 12

// circleParams holds the size-dependent knobs of Circle.
type circleParams struct {
	rings  int // 1 or 2
	margin int // vertical distance from the outer ring to the canvas edge
}

var circleSizes = [...]circleParams{
	Small:  {rings: 1, margin: 4},
	Medium: {rings: 2, margin: 4},
	Large:  {rings: 2, margin: 2},
}

// Circle builds a start node at the left edge, concentric rings of twelve
// nodes and the finish at the centre.
//
// Ring node k sits at 180° - 30°·k, so node 0 is the leftmost and node 6 the
// rightmost. Both halves of a ring flow from node 0 towards node 6; one chord
// per ring runs backwards (5 → 2) so greedy walks can loop. Outer ring nodes
// feed their inner counterparts, and the innermost ring feeds the finish from
// nodes 0, 3, 6 and 9. The start feeds node 0 of the outer ring.
//
// The x axis is stretched by two to compensate for terminal cell aspect.
//
// Errors: ErrUnknownSize, ErrNeedRandSource, ErrGraphNotEmpty,
// ErrCanvasTooSmall, ErrConstructFailed.
func Circle(size Size) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate.
		l, err := newLayout(MethodCircle, g, cfg, size)
		if err != nil {
			return err
		}
		p := circleSizes[size]
		cx := cfg.width/2 - cfg.width/15
		cy := cfg.height / 2
		radius := cy - p.margin
		if radius < 3 || cx <= 2*radius {
			return builderErrorf(MethodCircle, "%w: %dx%d", ErrCanvasTooSmall, cfg.width, cfg.height)
		}

		// 2) Nodes: start, rings outermost first, finish.
		start, err := l.add(2, cy)
		if err != nil {
			return err
		}
		rings := make([][]int, p.rings)
		r := float64(radius)
		for i := range rings {
			rings[i] = make([]int, ringSize)
			for k := 0; k < ringSize; k++ {
				rad := (180 - 30*float64(k)) * math.Pi / 180
				x := cx + int(math.Round(2*r*math.Cos(rad)))
				y := cy - int(math.Round(r*math.Sin(rad)))
				if rings[i][k], err = l.add(x, y); err != nil {
					return err
				}
			}
			r /= 1.5
		}
		finish, err := l.add(cx, cy)
		if err != nil {
			return err
		}

		// 3) Edges.
		if err := l.connect(start, rings[0][0]); err != nil {
			return err
		}
		for i, ring := range rings {
			for k := 0; k < ringSize/2; k++ {
				// Upper half 0→1→…→6, lower half 0→11→…→6.
				if err := l.connect(ring[k], ring[k+1]); err != nil {
					return err
				}
				if err := l.connect(ring[(ringSize-k)%ringSize], ring[ringSize-k-1]); err != nil {
					return err
				}
			}
			if err := l.connect(ring[5], ring[2]); err != nil {
				return err
			}
			if i+1 < len(rings) {
				for k := 0; k < ringSize; k++ {
					if err := l.connect(ring[k], rings[i+1][k]); err != nil {
						return err
					}
				}
				continue
			}
			for k := 0; k < ringSize; k += 3 {
				if err := l.connect(ring[k], finish); err != nil {
					return err
				}
			}
		}

		// 4) Endpoints.
		return l.endpoints(start, finish)
	}
}
