// Package pathfinding is the engine's entry point: it selects one of the six
// searches, runs it over an adjacency mapping, and, through Runner, turns a
// graph into a decoded Replay ready for playback.
package pathfinding

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm indicates a name or value that selects no search.
var ErrUnknownAlgorithm = errors.New("pathfinding: unknown algorithm")

// Algorithm selects a search.
type Algorithm uint8

const (
	Dijkstra Algorithm = iota
	Greedy
	SmartGreedy
	DepthFirst
	BreadthFirst
	AStar
)

type algorithmInfo struct {
	key   string
	name  string
	title string
}

var algorithms = [...]algorithmInfo{
	Dijkstra:     {"dij", "dijkstra", "Dijkstra"},
	Greedy:       {"gre", "greedy", "Greedy"},
	SmartGreedy:  {"sma", "smart-greedy", "Greedy (no revisits)"},
	DepthFirst:   {"dfs", "dfs", "Depth-first search"},
	BreadthFirst: {"bfs", "bfs", "Breadth-first search"},
	AStar:        {"ast", "astar", "A*"},
}

// All returns every algorithm in menu order.
func All() []Algorithm {
	return []Algorithm{Dijkstra, Greedy, SmartGreedy, DepthFirst, BreadthFirst, AStar}
}

// Valid reports whether a names a search.
func (a Algorithm) Valid() bool { return int(a) < len(algorithms) }

// String returns the long name, e.g. "smart-greedy".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", a)
	}

	return algorithms[a].name
}

// Key returns the three-letter menu key, e.g. "sma".
func (a Algorithm) Key() string {
	if !a.Valid() {
		return ""
	}

	return algorithms[a].key
}

// Title returns a human-readable name.
func (a Algorithm) Title() string {
	if !a.Valid() {
		return a.String()
	}

	return algorithms[a].title
}

// ParseAlgorithm accepts a menu key or long name, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, info := range algorithms {
		if s == info.key || s == info.name {
			return Algorithm(i), nil
		}
	}
	if s == "a*" {
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, a)
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}
