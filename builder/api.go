// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry points of the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same seed, options and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/jakhac/graph-algorithms/core"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors validate early, return sentinel errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves the builder configuration
// from bopts and applies every constructor in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Generate builds a Lattice or Circle of the given size on a fresh graph,
// choosing the layout with a coin flip from the configured RNG.
func Generate(size Size, bopts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(nil, bopts, Random(size))
}

// Random picks Lattice or Circle with equal probability. Requires an RNG.
func Random(size Size) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandom, ErrNeedRandSource)
		}
		if cfg.rng.Intn(2) == 0 {
			return Lattice(size)(g, cfg)
		}

		return Circle(size)(g, cfg)
	}
}
