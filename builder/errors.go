// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownSize indicates a Size outside Small, Medium, Large.
var ErrUnknownSize = errors.New("builder: unknown graph size")

// ErrCanvasTooSmall indicates the canvas cannot hold the requested layout.
var ErrCanvasTooSmall = errors.New("builder: canvas too small")

// ErrGraphNotEmpty indicates a layout constructor applied to a graph that
// already has nodes; layouts own the endpoints.
var ErrGraphNotEmpty = errors.New("builder: graph is not empty")

// ErrConstructFailed indicates the graph refused a mutation the layout needs,
// typically because the label capacity ran out.
var ErrConstructFailed = errors.New("builder: construction failed")

// Method names used as error prefixes.
const (
	MethodLattice = "Lattice"
	MethodCircle  = "Circle"
	MethodRandom  = "Random"
)

// builderErrorf prefixes a wrapped error with the method name.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
