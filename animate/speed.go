package animate

import (
	"fmt"
	"strings"
)

type preset struct {
	name   string
	factor float64
}

// Slowest first.
var presets = []preset{
	{"slower", 1.75},
	{"slow", 1.5},
	{"steady", 1.25},
	{"medium", 1.0},
	{"moderate", 0.5},
	{"fast", 0.25},
	{"insane", 0.05},
}

// SpeedPreset returns the factor of a named preset.
func SpeedPreset(name string) (float64, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if p.name == name {
			return p.factor, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSpeed, name)
}

// SpeedPresets lists the preset names, slowest first.
func SpeedPresets() []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.name
	}

	return out
}

// NextPreset returns the preset after (faster, delta > 0) or before
// (slower, delta < 0) the one closest to factor, clamped to the table.
func NextPreset(factor float64, delta int) (string, float64) {
	cur := 0
	for i, p := range presets {
		if abs(p.factor-factor) < abs(presets[cur].factor-factor) {
			cur = i
		}
	}
	i := min(max(cur+delta, 0), len(presets)-1)

	return presets[i].name, presets[i].factor
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}

	return f
}
