// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • rng           = nil          (stochastic constructors fail with ErrNeedRandSource)
//   • costFn        = DefaultCostFn (uniform 1..20)
//   • distanceCosts = false
//   • canvas        = 120 × 40 cells

package builder

import (
	"math/rand"

	"github.com/jakhac/graph-algorithms/core"
)

// Default canvas in terminal cells.
const (
	DefaultCanvasWidth  = 120
	DefaultCanvasHeight = 40
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng           *rand.Rand
	costFn        CostFn
	distanceCosts bool
	width         int
	height        int
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		costFn: DefaultCostFn,
		width:  DefaultCanvasWidth,
		height: DefaultCanvasHeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cost returns the cost of a new edge from a to b, clamped to the core range.
func (c builderConfig) cost(a, b *core.Node) int {
	if c.distanceCosts {
		return core.DistanceCost(a, b)
	}

	return min(max(c.costFn(c.rng), core.MinCost), core.MaxCost)
}

// jitter returns -1 or +1.
func (c builderConfig) jitter() int {
	return c.rng.Intn(2)*2 - 1
}

// chance reports true with probability 1-p, mirroring "draw ≥ p".
func (c builderConfig) chance(p float64) bool {
	return c.rng.Float64() >= p
}
