package builder

import (
	"fmt"
	"math/rand"
)

// Default cost range of generated edges.
const (
	DefaultMinCost = 1
	DefaultMaxCost = 20
)

// CostFn produces an edge cost from an optional RNG. It must be deterministic
// for a given RNG state.
type CostFn func(rng *rand.Rand) int

// DefaultCostFn draws uniformly from [DefaultMinCost, DefaultMaxCost], or
// returns DefaultMinCost without an RNG.
func DefaultCostFn(rng *rand.Rand) int {
	if rng == nil {
		return DefaultMinCost
	}

	return DefaultMinCost + rng.Intn(DefaultMaxCost-DefaultMinCost+1)
}

// ConstantCostFn always yields value. Panics if value < 0.
func ConstantCostFn(value int) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %d", value))
	}
	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformCostFn draws uniformly from [lo, hi]; without an RNG it yields lo.
// Panics unless 0 ≤ lo ≤ hi.
func UniformCostFn(lo, hi int) CostFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Intn(hi-lo+1)
	}
}
