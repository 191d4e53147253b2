// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless input; constructors
// themselves never panic. Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostFn overrides the per-edge cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithDistanceCosts derives every cost from the distance between the
// endpoints (core.DistanceCost) instead of drawing it.
func WithDistanceCosts() BuilderOption {
	return func(c *builderConfig) {
		c.distanceCosts = true
	}
}

// WithCanvas sets the canvas size in cells. Panics unless both are positive.
func WithCanvas(width, height int) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("builder: WithCanvas requires positive dimensions")
	}
	return func(c *builderConfig) {
		c.width, c.height = width, height
	}
}
